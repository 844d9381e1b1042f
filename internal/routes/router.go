package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"charterhub/skybroker/internal/api"
	"charterhub/skybroker/internal/db"
	"charterhub/skybroker/internal/logging"
	"charterhub/skybroker/internal/metrics"
	"charterhub/skybroker/internal/middleware"
	"charterhub/skybroker/internal/workers"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Background loops: empty-leg generation off the stream, offer
	// expiry, live position tracking.
	deps.Workers = workers.InitWorkers(
		context.Background(),
		deps.Services.RedisQueue,
		deps.Services.EmptyLegs,
		deps.Services.Bookings,
		deps.Services.Airports,
		deps.Repo.EmptyLegs,
		deps.Repo.Jets,
		deps.Repo.Bookings,
	)

	RegisterAPIRoutes(r, deps)

	return r
}
