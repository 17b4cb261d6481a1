package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RootResponse is the welcome payload
// swagger:model RootResponse
type RootResponse struct {
	Message string `json:"message" example:"Welcome to the Todo Lists API"`
	Version string `json:"version" example:"1.0.0"`
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database" example:"ok"`
}

// NewRootHandler returns the welcome endpoint.
// @Summary API root
// @Tags system
// @Produce json
// @Success 200 {object} handlers.RootResponse
// @Router / [get]
func NewRootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{Message: "Welcome to the Todo Lists API", Version: version})
	}
}

// NewHealthHandler returns the health check endpoint.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "healthy", Timestamp: time.Now().UTC(), Database: "ok"}
		status := http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			logger.FromContext(ctx).Errorw("database ping failed", "error", err)
			resp.Status, resp.Database = "unhealthy", "unavailable"
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}
