package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/payments?from=&to=
func (a *API) GetPayments(c *gin.Context) {
	rng, ok := dateRange(c)
	if !ok || !a.dbReady(c) {
		return
	}
	items, err := a.payments().List(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) GetPayment(c *gin.Context)    { getOne(a, c, "Payment", a.payments().GetByID) }
func (a *API) CreatePayment(c *gin.Context) { create(a, c, "Payment", a.payments().Create) }
func (a *API) UpdatePayment(c *gin.Context) { update(a, c, "Payment", a.payments().Update) }
func (a *API) DeletePayment(c *gin.Context) { remove(a, c, "Payment", a.payments().Delete) }
