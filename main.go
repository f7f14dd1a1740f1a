package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "busbooking/internal/config"
	"busbooking/internal/events"
	router "busbooking/internal/http"
	"busbooking/internal/http/handlers"
	"busbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	utils.SetupLogger(env.LogLevel)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.OpenDB(env)
	if db != nil {
		defer db.Close()
	}
	if err != nil {
		// Keep serving; handlers answer 503 until the database comes back.
		slog.Error("database connection failed", "error", err, "host", env.DBHost, "db", env.DBName)
	} else {
		slog.Info("database connected", "host", env.DBHost, "db", env.DBName)
	}

	cache := intconfig.NewRedisClient(env)
	if cache != nil {
		defer cache.Close()
	}

	publisher := events.New(env.KafkaBrokers, env.KafkaTopic)
	defer publisher.Close()

	api := &handlers.API{
		DB:        db,
		Cache:     cache,
		CacheTTL:  env.ReportCacheTTL,
		Events:    publisher,
		JWTSecret: []byte(env.JWTSecret),
		JWTTTL:    env.JWTTTL,
	}
	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		return
	}

	slog.Info("server stopped")
}
