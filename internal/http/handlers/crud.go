package handlers

import (
	"context"
	"net/http"

	"busbooking/internal/http/middleware"
	"busbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// The helpers below implement the five standard operations once. Entity files
// only bind them to a repository method and a display name.

func list[T any](a *API, c *gin.Context, fetch func(context.Context) ([]T, error)) {
	if !a.dbReady(c) {
		return
	}
	items, err := fetch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func getOne[T any](a *API, c *gin.Context, kind string, fetch func(context.Context, int64) (T, error)) {
	id, ok := requireID(c, kind)
	if !ok {
		return
	}
	if !a.dbReady(c) {
		return
	}
	item, err := fetch(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func create[P any](a *API, c *gin.Context, kind string, insert func(context.Context, P) (int64, error)) {
	var p P
	if !bindJSON(c, &p) {
		return
	}
	if !a.dbReady(c) {
		return
	}
	id, err := insert(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), kind, "create", "id="+itoa(id))
	a.afterWrite(c)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": kind + " added successfully", "id": id})
}

func update[P any](a *API, c *gin.Context, kind string, apply func(context.Context, int64, P) error) {
	id, ok := requireID(c, kind)
	if !ok {
		return
	}
	var p P
	if !bindJSON(c, &p) {
		return
	}
	if !a.dbReady(c) {
		return
	}
	if err := apply(c.Request.Context(), id, p); err != nil {
		respondError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), kind, "update", "id="+itoa(id))
	a.afterWrite(c)
	respondSuccess(c, kind+" updated successfully")
}

func remove(a *API, c *gin.Context, kind string, del func(context.Context, int64) error) {
	id, ok := requireID(c, kind)
	if !ok {
		return
	}
	if !a.dbReady(c) {
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), kind, "delete", "id="+itoa(id))
	a.afterWrite(c)
	respondSuccess(c, kind+" deleted successfully")
}
