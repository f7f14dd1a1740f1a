package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain/models"
)

type MaintenanceRepository struct {
	DB *sql.DB
}

const maintenanceColumns = `
	m.MaintenanceID, m.BusID, COALESCE(b.BusNumber, ''),
	DATE_FORMAT(m.MaintenanceDate, '%Y-%m-%d'),
	COALESCE(m.Description, ''), COALESCE(m.Cost, 0), COALESCE(m.PerformedBy, '')`

const maintenanceFrom = ` FROM maintenance m LEFT JOIN bus b ON b.BusID = m.BusID`

func scanMaintenance(r rowScanner) (models.Maintenance, error) {
	var m models.Maintenance
	err := r.Scan(&m.ID, &m.BusID, &m.BusNumber, &m.MaintenanceDate, &m.Description, &m.Cost, &m.PerformedBy)
	return m, err
}

// List returns maintenance records, optionally for one bus only.
func (r MaintenanceRepository) List(ctx context.Context, busID int64) ([]models.Maintenance, error) {
	var where intdb.Filter
	where.AddIfPositive(busID, "m.BusID = ?")
	query := `SELECT ` + maintenanceColumns + maintenanceFrom + where.Where() + ` ORDER BY m.MaintenanceDate DESC, m.MaintenanceID DESC`
	return queryList(ctx, r.DB, scanMaintenance, query, where.Args()...)
}

func (r MaintenanceRepository) GetByID(ctx context.Context, id int64) (models.Maintenance, error) {
	if err := validID("Maintenance", id); err != nil {
		return models.Maintenance{}, err
	}
	return queryOne(ctx, r.DB, "Maintenance record", scanMaintenance,
		`SELECT `+maintenanceColumns+maintenanceFrom+` WHERE m.MaintenanceID = ? LIMIT 1`, id)
}

func (r MaintenanceRepository) Create(ctx context.Context, p models.MaintenancePayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "maintenance insert", "maintenance", `
		INSERT INTO maintenance (BusID, MaintenanceDate, Description, Cost, PerformedBy)
		VALUES (?, ?, ?, ?, ?)
	`, p.BusID, p.MaintenanceDate, p.Description, *p.Cost, intdb.NullIfEmpty(p.PerformedBy))
}

func (r MaintenanceRepository) Update(ctx context.Context, id int64, p models.MaintenancePayload) error {
	if err := validID("Maintenance", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "maintenance update", "maintenance", `
		UPDATE maintenance
		SET BusID = ?, MaintenanceDate = ?, Description = ?, Cost = ?, PerformedBy = ?
		WHERE MaintenanceID = ?
	`, p.BusID, p.MaintenanceDate, p.Description, *p.Cost, intdb.NullIfEmpty(p.PerformedBy), id)
}

func (r MaintenanceRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("Maintenance", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "maintenance delete", "maintenance", `DELETE FROM maintenance WHERE MaintenanceID = ?`, id)
}
