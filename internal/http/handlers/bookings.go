package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings?from=&to=&status=
func (a *API) GetBookings(c *gin.Context) {
	rng, ok := dateRange(c)
	if !ok {
		return
	}
	f := models.BookingFilter{From: rng.From, To: rng.To, Status: strings.TrimSpace(c.Query("status"))}
	if f.Status != "" && !isOneOf(f.Status, domain.BookingStatuses) {
		respondStatus(c, http.StatusBadRequest, "error", "Invalid request payload: unknown booking status "+f.Status)
		return
	}
	if !a.dbReady(c) {
		return
	}
	items, err := a.bookings().List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) GetBooking(c *gin.Context)    { getOne(a, c, "Booking", a.bookings().GetByID) }
func (a *API) CreateBooking(c *gin.Context) { create(a, c, "Booking", a.bookings().Create) }
func (a *API) UpdateBooking(c *gin.Context) { update(a, c, "Booking", a.bookings().Update) }

// PUT /api/bookings/:id/status
func (a *API) UpdateBookingStatus(c *gin.Context) {
	update(a, c, "Booking", func(ctx context.Context, id int64, p models.BookingStatusPayload) error {
		return a.bookings().UpdateStatus(ctx, id, p.Status)
	})
}

// DeleteBooking removes a booking together with all of its payments in one
// transaction. Served at DELETE /api/bookings/:id and GET /api/bookings/delete?id=.
func (a *API) DeleteBooking(c *gin.Context) {
	id, ok := requireID(c, "Booking")
	if !ok {
		return
	}
	if !a.dbReady(c) {
		return
	}

	_, err := a.bookingService(c).DeleteWithPayments(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			respondStatus(c, http.StatusOK, "error", err.Error())
			return
		}
		respondError(c, err)
		return
	}
	a.afterWrite(c)
	respondSuccess(c, "Booking and payments deleted successfully")
}

// GET /api/bookings/:id/payments
func (a *API) GetBookingPayments(c *gin.Context) {
	id, ok := requireID(c, "Booking")
	if !ok || !a.dbReady(c) {
		return
	}
	items, err := a.payments().ListByBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/bookings/:id/ticket
func (a *API) GetBookingTicket(c *gin.Context) {
	id, ok := requireID(c, "Booking")
	if !ok || !a.dbReady(c) {
		return
	}
	pdf, filename, err := a.docsService(c).GenerateETicket(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
