package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/events"
	"busbooking/internal/http/middleware"
	"busbooking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// API carries the shared dependencies every handler needs. Handlers hold no
// other state between requests.
type API struct {
	DB        *sql.DB
	Cache     *redis.Client
	CacheTTL  time.Duration
	Events    events.Publisher
	JWTSecret []byte
	JWTTTL    time.Duration
}

func respondStatus(c *gin.Context, status int, state, message string) {
	c.JSON(status, gin.H{"status": state, "message": message})
}

func respondSuccess(c *gin.Context, message string) {
	respondStatus(c, http.StatusOK, "success", message)
}

// respondError maps domain errors onto the response contract.
func respondError(c *gin.Context, err error) {
	var (
		ve domain.ValidationError
		ce domain.ConflictError
	)
	switch {
	case errors.As(err, &ve):
		msg := ve.Msg
		if msg == "" {
			msg = ve.Error()
		}
		respondStatus(c, http.StatusBadRequest, "error", msg)
	case domain.IsUnauthorized(err):
		respondStatus(c, http.StatusUnauthorized, "error", err.Error())
	case domain.IsNotFound(err):
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
	case domain.IsNoChange(err):
		respondStatus(c, http.StatusOK, "error", err.Error())
	case errors.As(err, &ce):
		msg := ce.Msg
		if msg == "" {
			msg = ce.Error()
		}
		respondStatus(c, http.StatusConflict, "error", msg)
	case domain.IsUnavailable(err):
		respondStatus(c, http.StatusServiceUnavailable, "error", err.Error())
	default:
		utils.LogError(middleware.GetRequestID(c), "http", c.Request.Method+" "+c.FullPath(), err)
		respondStatus(c, http.StatusInternalServerError, "error", err.Error())
	}
}

// requireID reads the identifier from the path, falling back to ?id=.
// On failure the response is already written and no database work happens.
func requireID(c *gin.Context, kind string) (int64, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" {
		raw = strings.TrimSpace(c.Query("id"))
	}
	if raw == "" {
		respondStatus(c, http.StatusBadRequest, "error", "No "+kind+" ID provided")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondStatus(c, http.StatusBadRequest, "error", "Invalid "+kind+" ID")
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the body into dst before any field is read.
func bindJSON[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondStatus(c, http.StatusBadRequest, "error", "Invalid request payload: body is empty")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondStatus(c, http.StatusBadRequest, "error", "Invalid request payload: "+err.Error())
		return false
	}
	return true
}

// queryInt64 parses an optional numeric query parameter; absent means 0.
func queryInt64(c *gin.Context, key string) (int64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		respondStatus(c, http.StatusBadRequest, "error", "Invalid request payload: "+key+" must be a positive number")
		return 0, false
	}
	return n, true
}

// dateRange reads ?from=&to= as YYYY-MM-DD bounds.
func dateRange(c *gin.Context) (domain.DateRange, bool) {
	rng := domain.DateRange{From: strings.TrimSpace(c.Query("from")), To: strings.TrimSpace(c.Query("to"))}
	for key, v := range map[string]string{"from": rng.From, "to": rng.To} {
		if !utils.ValidDate(v) {
			respondStatus(c, http.StatusBadRequest, "error", "Invalid request payload: "+key+" must be YYYY-MM-DD")
			return rng, false
		}
	}
	if rng.From != "" && rng.To != "" && rng.From > rng.To {
		respondStatus(c, http.StatusBadRequest, "error", "Invalid request payload: from is after to")
		return rng, false
	}
	return rng, true
}

// dbReady answers 503 when no pool is configured. Lost connections surface from
// the query itself as UnavailableError, so a request checks out one connection.
func (a *API) dbReady(c *gin.Context) bool {
	if a.DB == nil {
		respondError(c, domain.UnavailableError{Err: errors.New("database not configured")})
		return false
	}
	return true
}

// afterWrite drops cached report data once a mutation succeeds.
func (a *API) afterWrite(c *gin.Context) {
	if a.Cache == nil {
		return
	}
	a.reportService(c).InvalidateDashboard(context.WithoutCancel(c.Request.Context()))
}
