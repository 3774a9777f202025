package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"tinkerlab/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamUpRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTeamUpRepository(db)
	ctx := context.Background()

	listing := &models.TeamUpListing{
		Title:          "Solar car for the regional race",
		Description:    "Need two more people for the drivetrain",
		Difficulty:     models.DifficultyIntermediate,
		Duration:       "3 months",
		TeamSize:       5,
		OpenPositions:  2,
		SkillsRequired: models.StringList{"CAD", "welding"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "team_up_listings"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, listing)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamUpRepository_Delete_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTeamUpRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "team_up_listings" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 123)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
