package repositories

import (
	"context"
	"errors"
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

const (
	deletePaymentsSQL = `DELETE FROM paymentdetails WHERE BookingID = \?`
	deleteBookingSQL  = `DELETE FROM bookingdetails WHERE BookingID = \?`
)

func newMock(t *testing.T) (BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return BookingRepository{DB: db}, mock
}

func TestDeleteWithPayments_RemovesBookingAndPayments(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 5} {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectPrepare(deletePaymentsSQL).ExpectExec().WithArgs(int64(123)).
			WillReturnResult(sqlmock.NewResult(0, n))
		mock.ExpectPrepare(deleteBookingSQL).ExpectExec().WithArgs(int64(123)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		res, err := repo.DeleteWithPayments(context.Background(), 123)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if res.PaymentsRemoved != n || res.BookingID != 123 {
			t.Fatalf("n=%d: unexpected result %+v", n, res)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("n=%d: unmet expectations: %v", n, err)
		}
	}
}

func TestDeleteWithPayments_BookingExecFailureRollsBack(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(deletePaymentsSQL).ExpectExec().WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectPrepare(deleteBookingSQL).ExpectExec().WithArgs(int64(123)).
		WillReturnError(errors.New("lock wait timeout exceeded"))
	mock.ExpectRollback()

	res, err := repo.DeleteWithPayments(context.Background(), 123)
	if err == nil || err.Error() != "lock wait timeout exceeded" {
		t.Fatalf("expected driver message, got %v", err)
	}
	if res.PaymentsRemoved != 0 {
		t.Fatalf("rolled back delete must not report removed payments, got %d", res.PaymentsRemoved)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations (commit must not happen): %v", err)
	}
}

func TestDeleteWithPayments_PrepareFailuresAreTagged(t *testing.T) {
	t.Run("payment delete", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectPrepare(deletePaymentsSQL).WillReturnError(errors.New("table paymentdetails doesn't exist"))
		mock.ExpectRollback()

		_, err := repo.DeleteWithPayments(context.Background(), 7)
		var pe domain.PrepareError
		if !errors.As(err, &pe) || pe.Op != "payment delete" {
			t.Fatalf("expected payment delete PrepareError, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("booking delete", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectPrepare(deletePaymentsSQL).ExpectExec().WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectPrepare(deleteBookingSQL).WillReturnError(errors.New("table bookingdetails doesn't exist"))
		mock.ExpectRollback()

		_, err := repo.DeleteWithPayments(context.Background(), 7)
		var pe domain.PrepareError
		if !errors.As(err, &pe) || pe.Op != "booking delete" {
			t.Fatalf("expected booking delete PrepareError, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}

func TestDeleteWithPayments_SecondCallReportsNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(deletePaymentsSQL).ExpectExec().WithArgs(int64(55)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectPrepare(deleteBookingSQL).ExpectExec().WithArgs(int64(55)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectPrepare(deletePaymentsSQL).ExpectExec().WithArgs(int64(55)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(deleteBookingSQL).ExpectExec().WithArgs(int64(55)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if _, err := repo.DeleteWithPayments(context.Background(), 55); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	_, err := repo.DeleteWithPayments(context.Background(), 55)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteWithPayments_InvalidIDTouchesNothing(t *testing.T) {
	repo, mock := newMock(t)

	_, err := repo.DeleteWithPayments(context.Background(), 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var ve domain.ValidationError
	if !errors.As(err, &ve) || ve.Msg != "No Booking ID provided" {
		t.Fatalf("unexpected validation message %+v", ve)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no database call expected: %v", err)
	}
}

func TestBookingList_DateRangeIsParameterized(t *testing.T) {
	repo, mock := newMock(t)

	cols := []string{"BookingID", "CustomerID", "ScheduleID", "SeatNumber", "BookingDate", "TravelDate", "Status", "CustomerName", "StartLocation", "EndLocation"}
	mock.ExpectQuery(`WHERE bk.TravelDate >= \? AND bk.TravelDate <= \? ORDER BY`).
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 10, 3, "A1", "2024-12-20", "2025-01-05", "Confirmed", "Amina Yusuf", "Nairobi", "Kampala"))

	list, err := repo.List(context.Background(), models.BookingFilter{From: "2025-01-01", To: "2025-01-31"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].CustomerName != "Amina Yusuf" || list[0].EndLocation != "Kampala" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingUpdateStatus_ZeroRows(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectPrepare(`UPDATE bookingdetails SET Status = \? WHERE BookingID = \?`).ExpectExec().
		WithArgs("Cancelled", int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 999, "Cancelled")
	if !domain.IsNoChange(err) {
		t.Fatalf("expected NoChangeError, got %v", err)
	}
}
