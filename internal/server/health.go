package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes on all historical health paths.
type HealthHandler struct {
	Model string
}

func (h *HealthHandler) Register(e *echo.Echo) {
	e.GET("/health", h.health)
	e.GET("/v1/health", h.health)
	e.GET("/api/health", h.health)
}

func (h *HealthHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"model":     h.Model,
	})
}
