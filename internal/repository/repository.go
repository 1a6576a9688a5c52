// Package repository is the persistence layer: thin structs over a pgx
// pool with explicit SQL. Store errors are translated to the application
// error taxonomy here so services and handlers never see driver errors.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sukomal07/videohub/internal/apperr"
)

const uniqueViolation = "23505"

// errNoRows lets Exec-based mutations report a missing row the same way
// QueryRow does.
func errNoRows() error {
	return pgx.ErrNoRows
}

// translate maps pgx errors onto the apperr taxonomy. what names the
// entity for the error message.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, apperr.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", what, apperr.ErrConflict)
	}
	return fmt.Errorf("%s: %w", what, err)
}
