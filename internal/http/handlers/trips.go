package handlers

import (
	"net/http"
	"strings"

	"busbooking/internal/domain/models"
	"busbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

func (a *API) GetRoutes(c *gin.Context)   { list(a, c, a.routes().List) }
func (a *API) GetRoute(c *gin.Context)    { getOne(a, c, "Route", a.routes().GetByID) }
func (a *API) CreateRoute(c *gin.Context) { create(a, c, "Route", a.routes().Create) }
func (a *API) UpdateRoute(c *gin.Context) { update(a, c, "Route", a.routes().Update) }
func (a *API) DeleteRoute(c *gin.Context) { remove(a, c, "Route", a.routes().Delete) }

// GET /api/schedules?date=YYYY-MM-DD&routeId=&busId=
func (a *API) GetSchedules(c *gin.Context) {
	f := models.ScheduleFilter{Date: strings.TrimSpace(c.Query("date"))}
	if !utils.ValidDate(f.Date) {
		respondStatus(c, http.StatusBadRequest, "error", "Invalid request payload: date must be YYYY-MM-DD")
		return
	}
	var ok bool
	if f.RouteID, ok = queryInt64(c, "routeId"); !ok {
		return
	}
	if f.BusID, ok = queryInt64(c, "busId"); !ok {
		return
	}
	if !a.dbReady(c) {
		return
	}
	items, err := a.schedules().List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) GetSchedule(c *gin.Context)    { getOne(a, c, "Schedule", a.schedules().GetByID) }
func (a *API) CreateSchedule(c *gin.Context) { create(a, c, "Schedule", a.schedules().Create) }
func (a *API) UpdateSchedule(c *gin.Context) { update(a, c, "Schedule", a.schedules().Update) }
func (a *API) DeleteSchedule(c *gin.Context) { remove(a, c, "Schedule", a.schedules().Delete) }
