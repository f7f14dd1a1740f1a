package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain/models"
)

type BusRepository struct {
	DB *sql.DB
}

const busColumns = `BusID, BusNumber, YearOfManufacture, Capacity, EngineNumber, Status, COALESCE(Mileage, 0)`

func scanBus(r rowScanner) (models.Bus, error) {
	var b models.Bus
	err := r.Scan(&b.ID, &b.BusNumber, &b.YearOfManufacture, &b.Capacity, &b.EngineNumber, &b.Status, &b.Mileage)
	return b, err
}

func (r BusRepository) List(ctx context.Context) ([]models.Bus, error) {
	return queryList(ctx, r.DB, scanBus, `SELECT `+busColumns+` FROM bus ORDER BY BusID DESC`)
}

func (r BusRepository) GetByID(ctx context.Context, id int64) (models.Bus, error) {
	if err := validID("Bus", id); err != nil {
		return models.Bus{}, err
	}
	return queryOne(ctx, r.DB, "Bus", scanBus, `SELECT `+busColumns+` FROM bus WHERE BusID = ? LIMIT 1`, id)
}

func (r BusRepository) Create(ctx context.Context, p models.BusPayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "bus insert", "bus", `
		INSERT INTO bus (BusNumber, YearOfManufacture, Capacity, EngineNumber, Status, Mileage)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.BusNumber, p.YearOfManufacture, p.Capacity, p.EngineNumber, p.Status, *p.Mileage)
}

func (r BusRepository) Update(ctx context.Context, id int64, p models.BusPayload) error {
	if err := validID("Bus", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "bus update", "bus", `
		UPDATE bus
		SET BusNumber = ?, YearOfManufacture = ?, Capacity = ?, EngineNumber = ?, Status = ?, Mileage = ?
		WHERE BusID = ?
	`, p.BusNumber, p.YearOfManufacture, p.Capacity, p.EngineNumber, p.Status, *p.Mileage, id)
}

func (r BusRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("Bus", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "bus delete", "bus", `DELETE FROM bus WHERE BusID = ?`, id)
}
