package handlers

import (
	"net/http"

	"busbooking/internal/domain/models"
	"busbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req models.LoginPayload
	if !bindJSON(c, &req) || !a.dbReady(c) {
		return
	}
	token, user, err := a.authService(c).Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GET /api/admin/profile
func (a *API) Profile(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		respondStatus(c, http.StatusUnauthorized, "error", "unauthorized")
		return
	}
	if !a.dbReady(c) {
		return
	}
	user, err := a.users().GetByID(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/admin/activities returns the caller's own activity log.
func (a *API) MyActivities(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		respondStatus(c, http.StatusUnauthorized, "error", "unauthorized")
		return
	}
	limit, ok := queryInt64(c, "limit")
	if !ok || !a.dbReady(c) {
		return
	}
	items, err := a.activities().List(c.Request.Context(), p.UserID, int(limit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
