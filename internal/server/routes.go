package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"matchmaker/internal/handlers"
	"matchmaker/internal/handlers/api"
	"matchmaker/internal/lookup"
	"matchmaker/internal/metrics"
	"matchmaker/internal/models"
	"matchmaker/internal/validation"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc *lookup.Service) {
	metrics.Init()

	pageHandler := handlers.NewPageHandler(s.Cfg)
	probeHandler := handlers.NewProbeHandler(svc.Source())
	checkEmailHandler := api.NewCheckEmailHandler(svc, validation.New())

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Email lookup API - POST only, every other verb gets 405
	s.App.Post(models.CheckEmailPath, checkEmailHandler.Check)
	s.App.All(models.CheckEmailPath, checkEmailHandler.MethodNotAllowed)

	// Pages
	s.App.Get("/", pageHandler.Index)
	s.App.Get("/matches", pageHandler.Matches)
}
