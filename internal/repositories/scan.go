package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryList runs query and collects every row through scan. The result is
// never nil so handlers always emit a JSON array.
func queryList[T any](ctx context.Context, q intdb.DBTX, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, intdb.ClassifyQueryError(err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, intdb.ClassifyQueryError(err)
	}
	return out, nil
}

// queryOne scans a single row, mapping sql.ErrNoRows to NotFoundError{resource}.
func queryOne[T any](ctx context.Context, q intdb.DBTX, resource string, scan func(rowScanner) (T, error), query string, args ...any) (T, error) {
	item, err := scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.NotFoundError{Resource: resource, Err: err}
		}
		return zero, intdb.ClassifyQueryError(err)
	}
	return item, nil
}

func validID(resource string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: resource + " id", Msg: "No " + resource + " ID provided"}
	}
	return nil
}
