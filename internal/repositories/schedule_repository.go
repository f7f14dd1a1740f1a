package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

const scheduleColumns = `
	s.ScheduleID, s.BusID, s.RouteID,
	DATE_FORMAT(s.DepartureTime, '%Y-%m-%d %H:%i:%s'),
	DATE_FORMAT(s.ArrivalTime, '%Y-%m-%d %H:%i:%s'),
	COALESCE(s.Fare, 0), COALESCE(s.AvailableSeats, 0),
	COALESCE(b.BusNumber, ''), COALESCE(r.StartLocation, ''), COALESCE(r.EndLocation, '')`

const scheduleFrom = `
	FROM scheduleinformation s
	LEFT JOIN bus b ON b.BusID = s.BusID
	LEFT JOIN route r ON r.RouteID = s.RouteID`

func scanSchedule(r rowScanner) (models.Schedule, error) {
	var s models.Schedule
	err := r.Scan(&s.ID, &s.BusID, &s.RouteID, &s.DepartureTime, &s.ArrivalTime, &s.Fare, &s.AvailableSeats,
		&s.BusNumber, &s.StartLocation, &s.EndLocation)
	return s, err
}

// List returns schedules ordered by departure. Date filters on the departure day.
func (r ScheduleRepository) List(ctx context.Context, f models.ScheduleFilter) ([]models.Schedule, error) {
	var where intdb.Filter
	where.AddIf(f.Date, "DATE(s.DepartureTime) = ?").
		AddIfPositive(f.RouteID, "s.RouteID = ?").
		AddIfPositive(f.BusID, "s.BusID = ?")

	query := `SELECT ` + scheduleColumns + scheduleFrom + where.Where() + ` ORDER BY s.DepartureTime ASC, s.ScheduleID ASC`
	return queryList(ctx, r.DB, scanSchedule, query, where.Args()...)
}

// Upcoming lists the next departures from now.
func (r ScheduleRepository) Upcoming(ctx context.Context, limit int) ([]models.Schedule, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `SELECT ` + scheduleColumns + scheduleFrom + ` WHERE s.DepartureTime >= NOW() ORDER BY s.DepartureTime ASC LIMIT ?`
	return queryList(ctx, r.DB, scanSchedule, query, limit)
}

func (r ScheduleRepository) GetByID(ctx context.Context, id int64) (models.Schedule, error) {
	if err := validID("Schedule", id); err != nil {
		return models.Schedule{}, err
	}
	return queryOne(ctx, r.DB, "Schedule", scanSchedule, `SELECT `+scheduleColumns+scheduleFrom+` WHERE s.ScheduleID = ? LIMIT 1`, id)
}

func (r ScheduleRepository) Create(ctx context.Context, p models.SchedulePayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "schedule insert", "schedule", `
		INSERT INTO scheduleinformation (BusID, RouteID, DepartureTime, ArrivalTime, Fare, AvailableSeats)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.BusID, p.RouteID, p.DepartureTime, p.ArrivalTime, *p.Fare, *p.AvailableSeats)
}

func (r ScheduleRepository) Update(ctx context.Context, id int64, p models.SchedulePayload) error {
	if err := validID("Schedule", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "schedule update", "schedule", `
		UPDATE scheduleinformation
		SET BusID = ?, RouteID = ?, DepartureTime = ?, ArrivalTime = ?, Fare = ?, AvailableSeats = ?
		WHERE ScheduleID = ?
	`, p.BusID, p.RouteID, p.DepartureTime, p.ArrivalTime, *p.Fare, *p.AvailableSeats, id)
}

func (r ScheduleRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("Schedule", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "schedule delete", "schedule", `DELETE FROM scheduleinformation WHERE ScheduleID = ?`, id)
}
