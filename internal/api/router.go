package api

import (
	"driver-assignment-service/internal/api/handlers"
	"driver-assignment-service/internal/platform/metrics"
	"driver-assignment-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// runRatePerMin bounds how many runs "/" and "/v1/assignments" may trigger per minute, together.
func NewRouter(runner handlers.Runner, store ports.ArtifactStore, runRatePerMin int) http.Handler {
	metrics.RegisterDefault()

	if runRatePerMin < 1 {
		runRatePerMin = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(runRatePerMin)/60.0), runRatePerMin)

	mux := http.NewServeMux()

	h := &handlers.AssignmentHandler{Runner: runner, Store: store}

	mux.HandleFunc("/{$}", rateLimit(limiter, h.Index))
	mux.HandleFunc("/download", h.Download)
	mux.HandleFunc("/v1/assignments", rateLimit(limiter, h.Create))
	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux, mux)
}
