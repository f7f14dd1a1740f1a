package repositories

import (
	"context"
	"testing"

	"busbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRevenue_SumsModes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM paymentdetails WHERE PaymentDate >= \? GROUP BY PaymentMode`).
		WithArgs("2025-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"PaymentMode", "total", "count"}).
			AddRow("Cash", 500.0, 1).
			AddRow("Card", 700.0, 2))

	rep, err := ReportRepository{DB: db}.Revenue(context.Background(), domain.DateRange{From: "2025-03-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Total != 1200 || rep.Count != 3 || rep.ByMode["Card"] != 700 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestCount_RejectsUnknownTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	if _, err := (ReportRepository{DB: db}).Count(context.Background(), "bus; DROP TABLE bus"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query expected: %v", err)
	}
}
