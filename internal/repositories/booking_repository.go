package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

const bookingColumns = `
	bk.BookingID, bk.CustomerID, bk.ScheduleID, bk.SeatNumber,
	DATE_FORMAT(bk.BookingDate, '%Y-%m-%d'), DATE_FORMAT(bk.TravelDate, '%Y-%m-%d'), bk.Status,
	COALESCE(CONCAT(c.FirstName, ' ', c.LastName), ''),
	COALESCE(r.StartLocation, ''), COALESCE(r.EndLocation, '')`

const bookingFrom = `
	FROM bookingdetails bk
	LEFT JOIN customer c ON c.CustomerID = bk.CustomerID
	LEFT JOIN scheduleinformation s ON s.ScheduleID = bk.ScheduleID
	LEFT JOIN route r ON r.RouteID = s.RouteID`

func scanBooking(r rowScanner) (models.Booking, error) {
	var b models.Booking
	err := r.Scan(&b.ID, &b.CustomerID, &b.ScheduleID, &b.SeatNumber, &b.BookingDate, &b.TravelDate, &b.Status,
		&b.CustomerName, &b.StartLocation, &b.EndLocation)
	return b, err
}

// List returns bookings, optionally bounded by TravelDate and narrowed by status.
func (r BookingRepository) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	var where intdb.Filter
	where.AddIf(f.From, "bk.TravelDate >= ?").
		AddIf(f.To, "bk.TravelDate <= ?").
		AddIf(f.Status, "bk.Status = ?")
	query := `SELECT ` + bookingColumns + bookingFrom + where.Where() + ` ORDER BY bk.TravelDate DESC, bk.BookingID DESC`
	return queryList(ctx, r.DB, scanBooking, query, where.Args()...)
}

func (r BookingRepository) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	if err := validID("Booking", id); err != nil {
		return models.Booking{}, err
	}
	return queryOne(ctx, r.DB, "Booking", scanBooking, `SELECT `+bookingColumns+bookingFrom+` WHERE bk.BookingID = ? LIMIT 1`, id)
}

func (r BookingRepository) Create(ctx context.Context, p models.BookingPayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "booking insert", "booking", `
		INSERT INTO bookingdetails (CustomerID, ScheduleID, SeatNumber, BookingDate, TravelDate, Status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.CustomerID, p.ScheduleID, p.SeatNumber, p.BookingDate, p.TravelDate, p.Status)
}

func (r BookingRepository) Update(ctx context.Context, id int64, p models.BookingPayload) error {
	if err := validID("Booking", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "booking update", "booking", `
		UPDATE bookingdetails
		SET CustomerID = ?, ScheduleID = ?, SeatNumber = ?, BookingDate = ?, TravelDate = ?, Status = ?
		WHERE BookingID = ?
	`, p.CustomerID, p.ScheduleID, p.SeatNumber, p.BookingDate, p.TravelDate, p.Status, id)
}

func (r BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	if err := validID("Booking", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "booking status update", "booking",
		`UPDATE bookingdetails SET Status = ? WHERE BookingID = ?`, status, id)
}

// DeleteWithPayments removes the booking and every payment referencing it in one
// transaction. Payments go first so no payment row is ever orphaned. If the
// booking row does not exist the transaction is rolled back and NotFoundError
// is returned, leaving both tables untouched.
func (r BookingRepository) DeleteWithPayments(ctx context.Context, id int64) (models.DeleteResult, error) {
	out := models.DeleteResult{BookingID: id}
	if err := validID("Booking", id); err != nil {
		return out, err
	}

	err := intdb.WithinTransaction(ctx, r.DB, func(tx *sql.Tx) error {
		res, err := intdb.PrepareExec(ctx, tx, "payment delete", "payment",
			`DELETE FROM paymentdetails WHERE BookingID = ?`, id)
		if err != nil {
			return err
		}
		if out.PaymentsRemoved, err = res.RowsAffected(); err != nil {
			return domain.InternalError{Err: err}
		}

		res, err = intdb.PrepareExec(ctx, tx, "booking delete", "booking",
			`DELETE FROM bookingdetails WHERE BookingID = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return domain.InternalError{Err: err}
		}
		if n == 0 {
			return domain.NotFoundError{Resource: "Booking"}
		}
		return nil
	})
	if err != nil {
		out.PaymentsRemoved = 0
		return out, err
	}
	return out, nil
}

// Ticket loads the joined view printed on an e-ticket.
func (r BookingRepository) Ticket(ctx context.Context, id int64) (models.BookingTicket, error) {
	if err := validID("Booking", id); err != nil {
		return models.BookingTicket{}, err
	}
	scan := func(row rowScanner) (models.BookingTicket, error) {
		var t models.BookingTicket
		err := row.Scan(&t.BookingID, &t.SeatNumber, &t.TravelDate, &t.Status,
			&t.CustomerName, &t.PassportNumber, &t.Nationality,
			&t.StartLocation, &t.EndLocation, &t.DepartureTime, &t.ArrivalTime,
			&t.BusNumber, &t.Fare, &t.AmountPaid)
		return t, err
	}
	return queryOne(ctx, r.DB, "Booking", scan, `
		SELECT
			bk.BookingID, bk.SeatNumber, DATE_FORMAT(bk.TravelDate, '%Y-%m-%d'), bk.Status,
			COALESCE(CONCAT(c.FirstName, ' ', c.LastName), ''), COALESCE(c.PassportNumber, ''), COALESCE(c.Nationality, ''),
			COALESCE(r.StartLocation, ''), COALESCE(r.EndLocation, ''),
			COALESCE(DATE_FORMAT(s.DepartureTime, '%Y-%m-%d %H:%i'), ''), COALESCE(DATE_FORMAT(s.ArrivalTime, '%Y-%m-%d %H:%i'), ''),
			COALESCE(b.BusNumber, ''), COALESCE(s.Fare, 0),
			(SELECT COALESCE(SUM(p.AmountPaid), 0) FROM paymentdetails p WHERE p.BookingID = bk.BookingID)
		FROM bookingdetails bk
		LEFT JOIN customer c ON c.CustomerID = bk.CustomerID
		LEFT JOIN scheduleinformation s ON s.ScheduleID = bk.ScheduleID
		LEFT JOIN route r ON r.RouteID = s.RouteID
		LEFT JOIN bus b ON b.BusID = s.BusID
		WHERE bk.BookingID = ?
		LIMIT 1
	`, id)
}
