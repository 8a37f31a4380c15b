package sqlite

import (
	"context"
	"database/sql"

	"task-manager/internal/errors"
)

// handleDatabaseError converts database errors to structured app errors
func handleDatabaseError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// querySingle executes a query expected to return at most one row and scans
// it with scanFunc. A missing row is reported through the bool, not an error.
func querySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(scanner) (T, error), args ...interface{}) (T, bool, error) {
	var zero T

	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return zero, false, nil
		}
		return zero, false, handleDatabaseError("scan row", err)
	}

	return result, true, nil
}

// executeWithRowsAffected executes a statement and returns how many rows it
// touched.
func executeWithRowsAffected(ctx context.Context, db *sql.DB, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, handleDatabaseError("execute statement", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, handleDatabaseError("get rows affected", err)
	}

	return rows, nil
}
