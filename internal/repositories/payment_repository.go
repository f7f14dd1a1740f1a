package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

const paymentColumns = `PaymentID, BookingID, AmountPaid, PaymentMode, DATE_FORMAT(PaymentDate, '%Y-%m-%d')`

func scanPayment(r rowScanner) (models.Payment, error) {
	var p models.Payment
	err := r.Scan(&p.ID, &p.BookingID, &p.AmountPaid, &p.PaymentMode, &p.PaymentDate)
	return p, err
}

// List returns payments, optionally bounded by PaymentDate.
func (r PaymentRepository) List(ctx context.Context, rng domain.DateRange) ([]models.Payment, error) {
	var where intdb.Filter
	where.AddIf(rng.From, "PaymentDate >= ?").AddIf(rng.To, "PaymentDate <= ?")
	query := `SELECT ` + paymentColumns + ` FROM paymentdetails` + where.Where() + ` ORDER BY PaymentDate DESC, PaymentID DESC`
	return queryList(ctx, r.DB, scanPayment, query, where.Args()...)
}

func (r PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	if err := validID("Booking", bookingID); err != nil {
		return nil, err
	}
	return queryList(ctx, r.DB, scanPayment,
		`SELECT `+paymentColumns+` FROM paymentdetails WHERE BookingID = ? ORDER BY PaymentDate ASC, PaymentID ASC`, bookingID)
}

func (r PaymentRepository) GetByID(ctx context.Context, id int64) (models.Payment, error) {
	if err := validID("Payment", id); err != nil {
		return models.Payment{}, err
	}
	return queryOne(ctx, r.DB, "Payment", scanPayment, `SELECT `+paymentColumns+` FROM paymentdetails WHERE PaymentID = ? LIMIT 1`, id)
}

// Create relies on the paymentdetails -> bookingdetails foreign key; a payment for
// an unknown booking surfaces as a ConflictError.
func (r PaymentRepository) Create(ctx context.Context, p models.PaymentPayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "payment insert", "payment", `
		INSERT INTO paymentdetails (BookingID, AmountPaid, PaymentMode, PaymentDate)
		VALUES (?, ?, ?, ?)
	`, p.BookingID, *p.AmountPaid, p.PaymentMode, p.PaymentDate)
}

func (r PaymentRepository) Update(ctx context.Context, id int64, p models.PaymentPayload) error {
	if err := validID("Payment", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "payment update", "payment", `
		UPDATE paymentdetails
		SET BookingID = ?, AmountPaid = ?, PaymentMode = ?, PaymentDate = ?
		WHERE PaymentID = ?
	`, p.BookingID, *p.AmountPaid, p.PaymentMode, p.PaymentDate, id)
}

func (r PaymentRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("Payment", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "payment delete", "payment", `DELETE FROM paymentdetails WHERE PaymentID = ?`, id)
}
