package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker func() error

// HealthHandler handles health check endpoints
type HealthHandler struct {
	dbCheck HealthChecker
}

// NewHealthHandler creates a new health handler. dbCheck may be nil when
// the service runs on the in-memory store.
func NewHealthHandler(dbCheck HealthChecker) *HealthHandler {
	return &HealthHandler{dbCheck: dbCheck}
}

// Check returns service health
// @Summary Health check
// @Router /api/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "healthy"
	checks := fiber.Map{}

	if h.dbCheck != nil {
		if err := h.dbCheck(); err != nil {
			status = "unhealthy"
			checks["database"] = "down"
		} else {
			checks["database"] = "up"
		}
	} else {
		checks["database"] = "memory"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"message":   "Residential Hub API is running",
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}
