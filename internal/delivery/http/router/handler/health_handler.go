package handler

import (
	"context"
	"net/http"
	"time"

	"dirbot/config"
	"dirbot/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// healthCheckTimeout bounds the store probe so a hung backend cannot stall
// the health endpoint.
const healthCheckTimeout = 5 * time.Second

type healthResponse struct {
	Status          string `json:"status"`
	Service         string `json:"service"`
	Backend         string `json:"backend"`
	BusinessesCount *int64 `json:"businesses_count,omitempty"`
}

// HealthHandler reports service liveness and catalog reachability.
type HealthHandler struct {
	repo    repository.BusinessRepository
	service string
	backend string
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(repo repository.BusinessRepository, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		repo:    repo,
		service: cfg.Env.ServiceName,
		backend: cfg.Catalog.Backend,
	}
}

// Root answers the bare path so gateway console checks see the service name.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": h.service,
		"status":  "running",
	})
}

// Check probes the catalog store. An unreachable store makes the service
// unhealthy; the count doubles as a cheap connectivity check.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	count, err := h.repo.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, healthResponse{
			Status:  "unhealthy",
			Service: h.service,
			Backend: h.backend,
		})
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:          "healthy",
		Service:         h.service,
		Backend:         h.backend,
		BusinessesCount: &count,
	})
}
