package db

import (
	"context"
	"database/sql"
	"fmt"

	"busbooking/internal/domain"
)

// WithinTransaction runs fn inside one transaction. It commits when fn returns
// nil and rolls back otherwise, including on panic. Exactly one of the two happens.
func WithinTransaction(ctx context.Context, conn *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		if IsConnError(err) {
			return domain.UnavailableError{Err: err}
		}
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("commit transaction: %w", cErr)
		}
	}()

	return fn(tx)
}
