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

func TestCommunityRepository_ListPosts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT community_posts.*, (SELECT COUNT(*) FROM "community_comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author", "category", "comments_count"}).
			AddRow(2, "My rover build log", "Week one of the chassis", "maya", "builds", 3).
			AddRow(1, "Which soldering iron?", "Looking for a starter iron", "dev", "questions", 0))

	posts, err := repo.ListPosts(ctx)
	assert.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, 3, posts[0].CommentsCount)
	assert.Equal(t, 0, posts[1].CommentsCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_CreateComment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	comment := &models.CommunityComment{PostID: 1, Author: "sam", Content: "Great writeup"}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "community_posts"`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "community_comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.CreateComment(ctx, comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_CreateComment_MissingPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "community_posts"`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.CreateComment(ctx, &models.CommunityComment{PostID: 99, Author: "sam", Content: "hello"})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
