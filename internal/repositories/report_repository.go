package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

// ReportRepository runs the aggregate queries behind the reporting endpoints.
// Each method is a single independent query.
type ReportRepository struct {
	DB *sql.DB
}

// Count runs SELECT COUNT(*) against one of the known tables.
func (r ReportRepository) Count(ctx context.Context, table string) (int64, error) {
	var query string
	switch table {
	case "bus", "route", "customer", "bookingdetails", "scheduleinformation", "users", "staff":
		query = `SELECT COUNT(*) FROM ` + table
	default:
		return 0, domain.ValidationError{Field: "table", Msg: "unknown table " + table}
	}
	var n int64
	if err := r.DB.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

func (r ReportRepository) BookingsByStatus(ctx context.Context) (map[string]int64, error) {
	type pair struct {
		status string
		n      int64
	}
	rows, err := queryList(ctx, r.DB, func(row rowScanner) (pair, error) {
		var p pair
		err := row.Scan(&p.status, &p.n)
		return p, err
	}, `SELECT Status, COUNT(*) FROM bookingdetails GROUP BY Status`)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, p := range rows {
		out[p.status] = p.n
	}
	return out, nil
}

// Revenue sums AmountPaid per PaymentMode within rng.
func (r ReportRepository) Revenue(ctx context.Context, rng domain.DateRange) (models.RevenueReport, error) {
	type row struct {
		mode  string
		total float64
		count int64
	}
	var where intdb.Filter
	where.AddIf(rng.From, "PaymentDate >= ?").AddIf(rng.To, "PaymentDate <= ?")

	rows, err := queryList(ctx, r.DB, func(s rowScanner) (row, error) {
		var x row
		err := s.Scan(&x.mode, &x.total, &x.count)
		return x, err
	}, `SELECT PaymentMode, COALESCE(SUM(AmountPaid), 0), COUNT(*) FROM paymentdetails`+where.Where()+` GROUP BY PaymentMode`, where.Args()...)
	if err != nil {
		return models.RevenueReport{}, err
	}

	out := models.RevenueReport{From: rng.From, To: rng.To, ByMode: map[string]float64{}}
	for _, x := range rows {
		out.ByMode[x.mode] = x.total
		out.Total += x.total
		out.Count += x.count
	}
	return out, nil
}

// BookingsPerRoute counts bookings by route for travel dates within rng.
func (r ReportRepository) BookingsPerRoute(ctx context.Context, rng domain.DateRange) ([]models.RouteBookings, error) {
	var where intdb.Filter
	where.AddIf(rng.From, "bk.TravelDate >= ?").AddIf(rng.To, "bk.TravelDate <= ?")
	return queryList(ctx, r.DB, func(s rowScanner) (models.RouteBookings, error) {
		var x models.RouteBookings
		err := s.Scan(&x.RouteID, &x.StartLocation, &x.EndLocation, &x.Bookings, &x.Cancelled)
		return x, err
	}, `
		SELECT r.RouteID, r.StartLocation, r.EndLocation,
		       COUNT(bk.BookingID),
		       COALESCE(SUM(CASE WHEN bk.Status = 'Cancelled' THEN 1 ELSE 0 END), 0)
		FROM bookingdetails bk
		JOIN scheduleinformation s ON s.ScheduleID = bk.ScheduleID
		JOIN route r ON r.RouteID = s.RouteID`+where.Where()+`
		GROUP BY r.RouteID, r.StartLocation, r.EndLocation
		ORDER BY COUNT(bk.BookingID) DESC, r.RouteID ASC`, where.Args()...)
}

// MaintenancePerBus sums maintenance cost per bus within rng.
func (r ReportRepository) MaintenancePerBus(ctx context.Context, rng domain.DateRange) ([]models.BusMaintenanceCost, error) {
	var where intdb.Filter
	where.AddIf(rng.From, "m.MaintenanceDate >= ?").AddIf(rng.To, "m.MaintenanceDate <= ?")
	return queryList(ctx, r.DB, func(s rowScanner) (models.BusMaintenanceCost, error) {
		var x models.BusMaintenanceCost
		err := s.Scan(&x.BusID, &x.BusNumber, &x.Services, &x.TotalCost)
		return x, err
	}, `
		SELECT m.BusID, COALESCE(b.BusNumber, ''), COUNT(*), COALESCE(SUM(m.Cost), 0)
		FROM maintenance m
		LEFT JOIN bus b ON b.BusID = m.BusID`+where.Where()+`
		GROUP BY m.BusID, b.BusNumber
		ORDER BY SUM(m.Cost) DESC`, where.Args()...)
}
