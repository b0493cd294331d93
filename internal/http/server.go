// Package http provides the Gin HTTP server, route registration and middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	integrationHTTP "github.com/allisson/integrations/internal/integration/http"
	webhookHTTP "github.com/allisson/integrations/internal/webhook/http"
)

// Server represents the main HTTP API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router must be configured with
// SetupRouter before Start is called.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig carries the handlers and middleware toggles for SetupRouter.
type RouterConfig struct {
	IntegrationHandler *integrationHTTP.IntegrationHandler
	WebhookHandler     *webhookHTTP.WebhookHandler

	// MetricsMiddleware records per-route HTTP metrics when metrics are
	// enabled. Labels use route patterns, so webhook URL secrets never
	// reach the metrics pipeline.
	MetricsMiddleware gin.HandlerFunc

	CORSEnabled      bool
	CORSAllowOrigins string

	// WebhookRateLimit protects the unauthenticated webhook endpoints.
	WebhookRateLimit gin.HandlerFunc
}

// SetupRouter builds the Gin router with all middleware and routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	if cfg.IntegrationHandler != nil {
		v1 := router.Group("/v1")
		v1.POST("/integrations", cfg.IntegrationHandler.CreateHandler)
		v1.GET("/integrations", cfg.IntegrationHandler.ListHandler)
		v1.GET("/integrations/:id", cfg.IntegrationHandler.GetHandler)
		v1.PUT("/integrations/:id", cfg.IntegrationHandler.UpdateHandler)
		v1.DELETE("/integrations/:id", cfg.IntegrationHandler.DeleteHandler)
	}

	if cfg.WebhookHandler != nil {
		webhooks := router.Group("/webhooks")
		if cfg.WebhookRateLimit != nil {
			webhooks.Use(cfg.WebhookRateLimit)
		}
		webhooks.POST("/:platform/:id/:secret", cfg.WebhookHandler.ReceiveHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must have been called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter before Start")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness database ping failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
