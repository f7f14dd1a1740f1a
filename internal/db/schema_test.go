package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMissingTables(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery(`FROM information_schema.tables`).
		WithArgs("bus", "route", "activity").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bus").AddRow("activity"))

	missing, err := MissingTables(context.Background(), conn, []string{"bus", "route", "activity"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(missing) != 1 || missing[0] != "route" {
		t.Fatalf("expected [route], got %v", missing)
	}
}

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery(`FROM information_schema.tables`).WithArgs("bookingdetails").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	ok, err := HasTable(context.Background(), conn, "bookingdetails")
	if err != nil || ok {
		t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
	}
}
