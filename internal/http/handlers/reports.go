package handlers

import (
	"context"
	"net/http"

	"busbooking/internal/domain"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/dashboard
func (a *API) ReportDashboard(c *gin.Context) {
	if !a.dbReady(c) {
		return
	}
	rep, err := a.reportService(c).Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/reports/revenue?from=&to=
func (a *API) ReportRevenue(c *gin.Context) {
	rangedReport(a, c, a.reportService(c).Revenue)
}

// GET /api/reports/bookings?from=&to=
func (a *API) ReportBookings(c *gin.Context) {
	rangedReport(a, c, a.reportService(c).Bookings)
}

// GET /api/reports/maintenance?from=&to=
func (a *API) ReportMaintenance(c *gin.Context) {
	rangedReport(a, c, a.reportService(c).Maintenance)
}

func rangedReport[T any](a *API, c *gin.Context, build func(context.Context, domain.DateRange) (T, error)) {
	rng, ok := dateRange(c)
	if !ok || !a.dbReady(c) {
		return
	}
	rep, err := build(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}
