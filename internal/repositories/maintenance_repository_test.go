package repositories

import (
	"context"
	"testing"

	"busbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var maintenanceCols = []string{"MaintenanceID", "BusID", "BusNumber", "MaintenanceDate", "Description", "Cost", "PerformedBy"}

func TestMaintenanceList_ByBus(t *testing.T) {
	db, mock := newDB(t)
	repo := MaintenanceRepository{DB: db}

	mock.ExpectQuery(`FROM maintenance m LEFT JOIN bus b ON b.BusID = m.BusID WHERE m.BusID = \? ORDER BY m.MaintenanceDate DESC, m.MaintenanceID DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(maintenanceCols).
			AddRow(2, 7, "KBX-001", "2025-04-10", "Brake pads", 320.5, "Garage A"))

	list, err := repo.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].BusNumber != "KBX-001" || list[0].Cost != 320.5 {
		t.Fatalf("unexpected list: %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMaintenanceList_AllIsNeverNil(t *testing.T) {
	db, mock := newDB(t)
	repo := MaintenanceRepository{DB: db}

	mock.ExpectQuery(`LEFT JOIN bus b ON b.BusID = m.BusID ORDER BY m.MaintenanceDate DESC`).
		WillReturnRows(sqlmock.NewRows(maintenanceCols))

	list, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMaintenanceGetByID_NotFound(t *testing.T) {
	db, mock := newDB(t)
	repo := MaintenanceRepository{DB: db}

	mock.ExpectQuery(`WHERE m.MaintenanceID = \? LIMIT 1`).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(maintenanceCols))

	_, err := repo.GetByID(context.Background(), 99)
	if !domain.IsNotFound(err) || err.Error() != "Maintenance record not found" {
		t.Fatalf("expected not found, got %v", err)
	}
}
