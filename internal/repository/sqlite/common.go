package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"say-to-plan/internal/errors"
)

// HandleStorageError converts driver errors to structured app errors.
// Context deadline errors become timeout errors.
func HandleStorageError(operation string, timeout time.Duration, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(operation, timeout.String())
	}
	return errors.NewStorageError(operation, err)
}

// withTimeout bounds ctx by d when d is positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// QueryOptional runs a single-row query. A missing row yields (nil, nil).
func QueryOptional[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), args ...interface{}) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFunc(rows)
}
