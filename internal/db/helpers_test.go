package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"busbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestClassifyExecError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		conflict bool
	}{
		{"duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'B-1'"}, true},
		{"fk child", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, true},
		{"fk parent", &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}, true},
		{"other mysql", &mysql.MySQLError{Number: 1054, Message: "Unknown column"}, false},
		{"plain", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyExecError("bus", tc.err)
			if domain.IsConflict(got) != tc.conflict {
				t.Fatalf("conflict=%v, got %T %v", tc.conflict, got, got)
			}
			if !tc.conflict && !domain.IsInternal(got) {
				t.Fatalf("expected internal error, got %T", got)
			}
		})
	}
	if ClassifyExecError("bus", nil) != nil {
		t.Fatalf("nil error should stay nil")
	}
}

func TestConnectionErrorsAreUnavailable(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused")}
	for _, err := range []error{
		driver.ErrBadConn,
		mysql.ErrInvalidConn,
		refused,
		fmt.Errorf("query buses: %w", refused),
	} {
		if !IsConnError(err) {
			t.Fatalf("IsConnError(%v) = false", err)
		}
		if got := ClassifyExecError("bus", err); !domain.IsUnavailable(got) {
			t.Fatalf("ClassifyExecError(%v) = %T, want UnavailableError", err, got)
		}
		if got := ClassifyQueryError(err); !domain.IsUnavailable(got) {
			t.Fatalf("ClassifyQueryError(%v) = %T, want UnavailableError", err, got)
		}
	}
	if IsConnError(&mysql.MySQLError{Number: 1062}) {
		t.Fatalf("a statement error is not a connection error")
	}
	if got := ClassifyQueryError(errors.New("bad column")); !domain.IsInternal(got) {
		t.Fatalf("expected internal error, got %T", got)
	}
}

func TestPrepareExecLostConnection(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectPrepare("DELETE FROM bus").
		WillReturnError(&net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset by peer")})

	_, err = PrepareExec(context.Background(), conn, "bus delete", "bus", `DELETE FROM bus WHERE BusID = ?`, 1)
	if !domain.IsUnavailable(err) || domain.IsPrepare(err) {
		t.Fatalf("expected UnavailableError, got %T %v", err, err)
	}
}

func TestExecAffectingZeroRows(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectPrepare("UPDATE bus SET").ExpectExec().
		WithArgs("Active", 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = ExecAffecting(context.Background(), conn, "bus update", "bus", `UPDATE bus SET Status = ? WHERE BusID = ?`, "Active", 9)
	if !domain.IsNoChange(err) {
		t.Fatalf("expected NoChangeError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPrepareExecPrepareFailure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectPrepare("INSERT INTO bus").WillReturnError(errors.New("syntax error near 'VALUE'"))

	_, err = PrepareExec(context.Background(), conn, "bus insert", "bus", `INSERT INTO bus VALUE (?)`, 1)
	if !domain.IsPrepare(err) {
		t.Fatalf("expected PrepareError, got %v", err)
	}
	if want := "Prepare failed (bus insert): syntax error near 'VALUE'"; err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestExecInsertReturnsID(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectPrepare("INSERT INTO route").ExpectExec().
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := ExecInsert(context.Background(), conn, "route insert", "route", `INSERT INTO route (StartLocation) VALUES (?)`, "Nairobi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}
}
