package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardCacheKey  = "busbooking:reports:dashboard"
	upcomingDepartures = 5
)

// ReportService assembles report payloads. Each sub-query is independent, but
// one failing fails the whole report so callers never see partial numbers.
type ReportService struct {
	ReportRepo   repositories.ReportRepository
	ScheduleRepo repositories.ScheduleRepository
	Cache        *redis.Client
	CacheTTL     time.Duration
	RequestID    string
}

func (s ReportService) Dashboard(ctx context.Context) (models.DashboardReport, error) {
	if cached, ok := s.cachedDashboard(ctx); ok {
		return cached, nil
	}

	var (
		out models.DashboardReport
		err error
	)
	counts := []struct {
		table string
		dst   *int64
	}{
		{"bus", &out.TotalBuses},
		{"route", &out.TotalRoutes},
		{"customer", &out.TotalCustomers},
		{"bookingdetails", &out.TotalBookings},
	}
	for _, c := range counts {
		if *c.dst, err = s.ReportRepo.Count(ctx, c.table); err != nil {
			return models.DashboardReport{}, err
		}
	}
	if out.BookingsByStatus, err = s.ReportRepo.BookingsByStatus(ctx); err != nil {
		return models.DashboardReport{}, err
	}
	revenue, err := s.ReportRepo.Revenue(ctx, domain.DateRange{})
	if err != nil {
		return models.DashboardReport{}, err
	}
	out.TotalRevenue = revenue.Total
	if out.UpcomingDepartures, err = s.ScheduleRepo.Upcoming(ctx, upcomingDepartures); err != nil {
		return models.DashboardReport{}, err
	}

	s.storeDashboard(ctx, out)
	return out, nil
}

func (s ReportService) Revenue(ctx context.Context, rng domain.DateRange) (models.RevenueReport, error) {
	return s.ReportRepo.Revenue(ctx, rng)
}

func (s ReportService) Bookings(ctx context.Context, rng domain.DateRange) (models.BookingsReport, error) {
	rows, err := s.ReportRepo.BookingsPerRoute(ctx, rng)
	if err != nil {
		return models.BookingsReport{}, err
	}
	out := models.BookingsReport{From: rng.From, To: rng.To, ByRoute: rows}
	for _, r := range rows {
		out.Total += r.Bookings
	}
	return out, nil
}

func (s ReportService) Maintenance(ctx context.Context, rng domain.DateRange) (models.MaintenanceReport, error) {
	rows, err := s.ReportRepo.MaintenancePerBus(ctx, rng)
	if err != nil {
		return models.MaintenanceReport{}, err
	}
	out := models.MaintenanceReport{From: rng.From, To: rng.To, ByBus: rows}
	for _, r := range rows {
		out.TotalCost += r.TotalCost
	}
	return out, nil
}

// InvalidateDashboard drops the cached dashboard after writes that change its numbers.
func (s ReportService) InvalidateDashboard(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		utils.LogError(s.RequestID, "report", "cache_invalidate", err)
	}
}

func (s ReportService) cachedDashboard(ctx context.Context) (models.DashboardReport, bool) {
	var out models.DashboardReport
	if s.Cache == nil {
		return out, false
	}
	raw, err := s.Cache.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.LogError(s.RequestID, "report", "cache_get", err)
		}
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}

func (s ReportService) storeDashboard(ctx context.Context, d models.DashboardReport) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, dashboardCacheKey, raw, s.CacheTTL).Err(); err != nil {
		utils.LogError(s.RequestID, "report", "cache_set", err)
	}
}
