package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestWithinTransactionCommits(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM paymentdetails").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = WithinTransaction(context.Background(), conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM paymentdetails WHERE BookingID = ?`, 1)
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	sentinel := errors.New("step failed")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = WithinTransaction(context.Background(), conn, func(tx *sql.Tx) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithinTransactionRollsBackOnPanic(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic to propagate")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	}()
	_ = WithinTransaction(context.Background(), conn, func(tx *sql.Tx) error {
		panic("boom")
	})
}

func TestFilter(t *testing.T) {
	var f Filter
	f.AddIf("2025-01-01", "b.TravelDate >= ?").
		AddIf("  ", "b.TravelDate <= ?").
		AddIfPositive(0, "s.RouteID = ?").
		AddIf("Confirmed", "b.Status = ?")

	if got := f.Where(); got != " WHERE b.TravelDate >= ? AND b.Status = ?" {
		t.Fatalf("unexpected where: %q", got)
	}
	args := f.Args()
	if len(args) != 2 || args[0] != "2025-01-01" || args[1] != "Confirmed" {
		t.Fatalf("unexpected args: %#v", args)
	}

	var empty Filter
	if empty.Where() != "" || empty.And() != "" || len(empty.Args()) != 0 {
		t.Fatalf("empty filter should render nothing")
	}
}
