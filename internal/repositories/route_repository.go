package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

const routeColumns = `RouteID, StartLocation, EndLocation, COALESCE(Distance, 0), COALESCE(EstimatedDuration, ''), COALESCE(BaseFare, 0)`

func scanRoute(r rowScanner) (models.Route, error) {
	var rt models.Route
	err := r.Scan(&rt.ID, &rt.StartLocation, &rt.EndLocation, &rt.Distance, &rt.EstimatedDuration, &rt.BaseFare)
	return rt, err
}

func (r RouteRepository) List(ctx context.Context) ([]models.Route, error) {
	return queryList(ctx, r.DB, scanRoute, `SELECT `+routeColumns+` FROM route ORDER BY StartLocation, EndLocation`)
}

func (r RouteRepository) GetByID(ctx context.Context, id int64) (models.Route, error) {
	if err := validID("Route", id); err != nil {
		return models.Route{}, err
	}
	return queryOne(ctx, r.DB, "Route", scanRoute, `SELECT `+routeColumns+` FROM route WHERE RouteID = ? LIMIT 1`, id)
}

func (r RouteRepository) Create(ctx context.Context, p models.RoutePayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "route insert", "route", `
		INSERT INTO route (StartLocation, EndLocation, Distance, EstimatedDuration, BaseFare)
		VALUES (?, ?, ?, ?, ?)
	`, p.StartLocation, p.EndLocation, *p.Distance, p.EstimatedDuration, *p.BaseFare)
}

func (r RouteRepository) Update(ctx context.Context, id int64, p models.RoutePayload) error {
	if err := validID("Route", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "route update", "route", `
		UPDATE route
		SET StartLocation = ?, EndLocation = ?, Distance = ?, EstimatedDuration = ?, BaseFare = ?
		WHERE RouteID = ?
	`, p.StartLocation, p.EndLocation, *p.Distance, p.EstimatedDuration, *p.BaseFare, id)
}

func (r RouteRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("Route", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "route delete", "route", `DELETE FROM route WHERE RouteID = ?`, id)
}
