package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"busbooking/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so repositories work inside
// and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NullIfEmpty stores optional strings as NULL.
func NullIfEmpty(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

// MySQL error numbers we translate.
const (
	errDuplicateEntry  = 1062
	errRowIsReferenced = 1451
	errNoReferencedRow = 1452
)

// IsConnError reports whether err means the server could not be reached or the
// connection was lost, as opposed to a failing statement.
func IsConnError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// ClassifyQueryError maps a read failure: lost connections become
// UnavailableError, everything else InternalError.
func ClassifyQueryError(err error) error {
	if err == nil {
		return nil
	}
	if IsConnError(err) {
		return domain.UnavailableError{Err: err}
	}
	return domain.InternalError{Err: err}
}

// ClassifyExecError turns a driver error into a domain error. The driver message
// is kept as the outward text.
func ClassifyExecError(resource string, err error) error {
	if err == nil {
		return nil
	}
	if IsConnError(err) {
		return domain.UnavailableError{Err: err}
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errDuplicateEntry, errRowIsReferenced, errNoReferencedRow:
			return domain.ConflictError{Resource: resource, Msg: me.Message, Err: err}
		}
	}
	return domain.InternalError{Err: err}
}

// PrepareExec prepares query, executes it once, and closes the statement.
// Preparation failures come back as domain.PrepareError tagged with op.
func PrepareExec(ctx context.Context, q DBTX, op, resource, query string, args ...any) (sql.Result, error) {
	stmt, err := q.PrepareContext(ctx, query)
	if err != nil {
		if IsConnError(err) {
			return nil, domain.UnavailableError{Err: err}
		}
		return nil, domain.PrepareError{Op: op, Err: err}
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return nil, ClassifyExecError(resource, err)
	}
	return res, nil
}

// ExecAffecting is PrepareExec for updates/deletes: zero affected rows is a NoChangeError.
func ExecAffecting(ctx context.Context, q DBTX, op, resource, query string, args ...any) error {
	res, err := PrepareExec(ctx, q, op, resource, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n == 0 {
		return domain.NoChangeError{}
	}
	return nil
}

// ExecInsert is PrepareExec for inserts and returns the new primary key.
func ExecInsert(ctx context.Context, q DBTX, op, resource, query string, args ...any) (int64, error) {
	res, err := PrepareExec(ctx, q, op, resource, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}
