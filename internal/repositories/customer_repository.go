package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = `CustomerID, FirstName, LastName, COALESCE(Email, ''), COALESCE(Phone, ''), COALESCE(Nationality, ''), COALESCE(PassportNumber, '')`

func scanCustomer(r rowScanner) (models.Customer, error) {
	var c models.Customer
	err := r.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Nationality, &c.PassportNumber)
	return c, err
}

func (r CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	return queryList(ctx, r.DB, scanCustomer, `SELECT `+customerColumns+` FROM customer ORDER BY CustomerID DESC`)
}

func (r CustomerRepository) GetByID(ctx context.Context, id int64) (models.Customer, error) {
	if err := validID("Customer", id); err != nil {
		return models.Customer{}, err
	}
	return queryOne(ctx, r.DB, "Customer", scanCustomer, `SELECT `+customerColumns+` FROM customer WHERE CustomerID = ? LIMIT 1`, id)
}

func (r CustomerRepository) Create(ctx context.Context, p models.CustomerPayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "customer insert", "customer", `
		INSERT INTO customer (FirstName, LastName, Email, Phone, Nationality, PassportNumber)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.FirstName, p.LastName, p.Email, p.Phone, p.Nationality, intdb.NullIfEmpty(p.PassportNumber))
}

func (r CustomerRepository) Update(ctx context.Context, id int64, p models.CustomerPayload) error {
	if err := validID("Customer", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "customer update", "customer", `
		UPDATE customer
		SET FirstName = ?, LastName = ?, Email = ?, Phone = ?, Nationality = ?, PassportNumber = ?
		WHERE CustomerID = ?
	`, p.FirstName, p.LastName, p.Email, p.Phone, p.Nationality, intdb.NullIfEmpty(p.PassportNumber), id)
}

func (r CustomerRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("Customer", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "customer delete", "customer", `DELETE FROM customer WHERE CustomerID = ?`, id)
}
