// Package repository contains the data access layer. Each repository is an
// interface backed by a GORM implementation so services can be tested with
// lightweight stubs.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tinkerlab/internal/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver level errors onto AppErrors so handlers can
// answer with a sensible status instead of a 500 for every constraint hit.
func translateError(err error, entity string, id interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(entity, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return models.NewValidationError(fmt.Sprintf("%s already exists", entity))
		case pgForeignKeyViolation:
			return models.NewValidationError(fmt.Sprintf("%s references a missing record", entity))
		}
	}
	return err
}
