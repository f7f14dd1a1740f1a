package handlers

import (
	"net/http"
	"sync"

	intconfig "busbooking/internal/config"
	intdb "busbooking/internal/db"
	"busbooking/internal/domain"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for /api/routes-index.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "bus booking backend running"})
}

// GET /api/db-check
func (a *API) DBCheck(c *gin.Context) {
	if !a.dbReady(c) {
		return
	}
	if err := intconfig.PingDB(c.Request.Context(), a.DB); err != nil {
		respondError(c, domain.UnavailableError{Err: err})
		return
	}
	missing, err := intdb.MissingTables(c.Request.Context(), a.DB, intdb.RequiredTables)
	if err != nil {
		respondError(c, domain.InternalError{Msg: "database query failed: " + err.Error(), Err: err})
		return
	}
	if len(missing) > 0 {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "database schema incomplete", "missingTables": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "database connection OK"})
}

func RoutesIndex(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
