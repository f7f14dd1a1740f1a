package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain/models"
)

type StaffRepository struct {
	DB *sql.DB
}

const staffColumns = `StaffID, FirstName, LastName, Position, COALESCE(Phone, ''), COALESCE(Email, ''), COALESCE(DATE_FORMAT(HireDate, '%Y-%m-%d'), '')`

func scanStaff(r rowScanner) (models.Staff, error) {
	var s models.Staff
	err := r.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Position, &s.Phone, &s.Email, &s.HireDate)
	return s, err
}

func (r StaffRepository) List(ctx context.Context) ([]models.Staff, error) {
	return queryList(ctx, r.DB, scanStaff, `SELECT `+staffColumns+` FROM staff ORDER BY LastName, FirstName`)
}

func (r StaffRepository) GetByID(ctx context.Context, id int64) (models.Staff, error) {
	if err := validID("Staff", id); err != nil {
		return models.Staff{}, err
	}
	return queryOne(ctx, r.DB, "Staff", scanStaff, `SELECT `+staffColumns+` FROM staff WHERE StaffID = ? LIMIT 1`, id)
}

func (r StaffRepository) Create(ctx context.Context, p models.StaffPayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "staff insert", "staff", `
		INSERT INTO staff (FirstName, LastName, Position, Phone, Email, HireDate)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.FirstName, p.LastName, p.Position, p.Phone, intdb.NullIfEmpty(p.Email), p.HireDate)
}

func (r StaffRepository) Update(ctx context.Context, id int64, p models.StaffPayload) error {
	if err := validID("Staff", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "staff update", "staff", `
		UPDATE staff
		SET FirstName = ?, LastName = ?, Position = ?, Phone = ?, Email = ?, HireDate = ?
		WHERE StaffID = ?
	`, p.FirstName, p.LastName, p.Position, p.Phone, intdb.NullIfEmpty(p.Email), p.HireDate, id)
}

func (r StaffRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("Staff", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "staff delete", "staff", `DELETE FROM staff WHERE StaffID = ?`, id)
}
