package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/buses
func (a *API) GetBuses(c *gin.Context) { list(a, c, a.buses().List) }

// GET /api/buses/:id
func (a *API) GetBus(c *gin.Context) { getOne(a, c, "Bus", a.buses().GetByID) }

// POST /api/buses
func (a *API) CreateBus(c *gin.Context) { create(a, c, "Bus", a.buses().Create) }

// PUT /api/buses/:id
func (a *API) UpdateBus(c *gin.Context) { update(a, c, "Bus", a.buses().Update) }

// DELETE /api/buses/:id
func (a *API) DeleteBus(c *gin.Context) { remove(a, c, "Bus", a.buses().Delete) }

// GET /api/maintenance?busId=
func (a *API) GetMaintenance(c *gin.Context) {
	busID, ok := queryInt64(c, "busId")
	if !ok || !a.dbReady(c) {
		return
	}
	items, err := a.maintenance().List(c.Request.Context(), busID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) GetMaintenanceRecord(c *gin.Context) {
	getOne(a, c, "Maintenance", a.maintenance().GetByID)
}

func (a *API) CreateMaintenance(c *gin.Context) {
	create(a, c, "Maintenance", a.maintenance().Create)
}

func (a *API) UpdateMaintenance(c *gin.Context) {
	update(a, c, "Maintenance", a.maintenance().Update)
}

func (a *API) DeleteMaintenance(c *gin.Context) {
	remove(a, c, "Maintenance", a.maintenance().Delete)
}
