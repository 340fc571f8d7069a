package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// inTx runs fn inside a database transaction, committing when it returns nil
// and rolling back on error or panic.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// Rollback after a successful Commit is a no-op returning ErrTxClosed.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// pgErrorCode returns the SQLSTATE of err and the violated constraint, if err is a PostgreSQL error.
func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// translateWriteError maps constraint violations to client errors and wraps anything else as a 500.
func translateWriteError(err error, duplicateMsg, referenceMsg, failureMsg string) error {
	switch code, _ := pgErrorCode(err); code {
	case pgUniqueViolation:
		return apperrors.NewConflictError(duplicateMsg)
	case pgForeignKeyViolation:
		return apperrors.NewValidationFailedError(referenceMsg)
	case pgCheckViolation, pgInvalidText:
		return apperrors.NewValidationFailedError("invalid field value")
	}
	return apperrors.NewAppError(500, failureMsg, err)
}

// collect runs a query and collects its rows into T by column name.
func collect[T any](ctx context.Context, q querier, failureMsg string, query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, failureMsg, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(500, failureMsg, err)
	}
	return out, nil
}

// collectOne is collect for queries expected to return exactly one row.
func collectOne[T any](ctx context.Context, q querier, notFoundMsg, failureMsg string, query string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, failureMsg, err)
	}
	out, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(notFoundMsg)
		}
		return nil, apperrors.NewAppError(500, failureMsg, err)
	}
	return &out, nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	_ querier = (*pgxpool.Pool)(nil)
	_ querier = (pgx.Tx)(nil)
)
