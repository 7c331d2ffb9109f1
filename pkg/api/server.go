// Package api provides the HTTP surface of the agent write-path core.
package api

import (
	"context"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonzim-cmd/kura/pkg/abuse"
	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/contextbundle"
	"github.com/jonzim-cmd/kura/pkg/database"
	"github.com/jonzim-cmd/kura/pkg/services"
	"github.com/jonzim-cmd/kura/pkg/writepath"
)

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config
	dbClient   *database.Client

	events       *services.EventService
	projections  *services.ProjectionService
	accessLog    *services.AccessLogService
	telemetry    *services.TelemetryService
	orchestrator *writepath.Orchestrator
	bundles      *contextbundle.Builder
	gate         *abuse.Gate
}

// NewServer creates a new API server with Echo v5.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	events *services.EventService,
	projections *services.ProjectionService,
	accessLogSvc *services.AccessLogService,
	telemetry *services.TelemetryService,
	orchestrator *writepath.Orchestrator,
	bundles *contextbundle.Builder,
	cooldowns *abuse.CooldownRegistry,
) *Server {
	e := echo.New()

	s := &Server{
		echo:         e,
		cfg:          cfg,
		dbClient:     dbClient,
		events:       events,
		projections:  projections,
		accessLog:    accessLogSvc,
		telemetry:    telemetry,
		orchestrator: orchestrator,
		bundles:      bundles,
	}
	s.gate = abuse.NewGate(cfg.Security, cooldowns, accessLogSvc, telemetry, ownerFromContext)

	s.setupRoutes()
	return s
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	// Server-wide body size cap — the 100-event batch limit keeps
	// legitimate payloads well under this; multi-MB bodies are rejected
	// at the HTTP read level before deserialization.
	s.echo.Use(middleware.BodyLimit(2 * 1024 * 1024))
	s.echo.Use(securityHeaders())

	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/metrics", func(c *echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})

	v1 := s.echo.Group("/v1")
	v1.Use(requireOwner())
	v1.Use(accessLog(s.accessLog))
	// Adaptive abuse gate: evaluated on the /v1/agent/ prefix only.
	v1.Use(s.gate.Middleware())

	// Agent contract surface.
	v1.GET("/agent/capabilities", s.capabilitiesHandler)
	v1.GET("/agent/context", s.contextHandler)
	v1.POST("/agent/write-with-proof", s.writeWithProofHandler)

	// Legacy event surface: same invariants, no claim guard.
	v1.POST("/events", s.createEventHandler)
	v1.POST("/events/batch", s.createEventsBatchHandler)
	v1.POST("/events/simulate", s.simulateEventsHandler)
	v1.GET("/events", s.listEventsHandler)
}

// Start starts the HTTP server on the given address (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener starts the HTTP server on a pre-created listener.
// Used by test infrastructure to serve on a random OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
