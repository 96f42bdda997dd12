package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"matchmaker/internal/dataset"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	source dataset.Source
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(source dataset.Source) *ProbeHandler {
	return &ProbeHandler{source: source}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the dataset source can be read.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if _, err := h.source.Lines(c.Context()); err != nil {
		slog.Warn("readiness check failed", "source", h.source.Name(), "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "dataset unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"source": h.source.Name(),
	})
}
