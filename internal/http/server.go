// Package http provides the screening HTTP API for screend.
package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/havenlabs/screend/internal/events"
	"github.com/havenlabs/screend/internal/screening"
)

// Server provides HTTP endpoints for screend.
type Server struct {
	echo      *echo.Echo
	logger    *zap.Logger
	config    *Config
	publisher events.Publisher

	// screener is swapped on config hot-reload
	mu       sync.RWMutex
	screener screening.Screener
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int

	// RateLimit is requests per second per remote IP; 0 disables limiting
	RateLimit float64

	// RateBurst is the burst size when limiting is enabled
	RateBurst int
}

// NewServer creates a new HTTP server.
func NewServer(screener screening.Screener, publisher events.Publisher, logger *zap.Logger, cfg *Config) (*Server, error) {
	if screener == nil {
		return nil, fmt.Errorf("screener cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if publisher == nil {
		publisher = &events.NoopPublisher{}
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 9180,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware. Request logs carry ids and status only; message bodies
	// hold PHI and are never logged.
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.RateLimit),
				Burst: cfg.RateBurst,
			}),
		}))
	}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:      e,
		logger:    logger,
		config:    cfg,
		publisher: publisher,
		screener:  screener,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")
	v1.POST("/analyze", s.handleAnalyze)
}

// AnalyzeRequest is the request body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	Message string `json:"message"`
}

// AnalyzeResponse is the response body for POST /api/v1/analyze.
type AnalyzeResponse struct {
	AnalysisID  string                     `json:"analysis_id"`
	Context     *screening.ContextSummary  `json:"context"`
	Triggers    []string                   `json:"triggers"`
	Distortions []string                   `json:"distortions"`
	Psychosis   *screening.PsychosisResult `json:"psychosis"`
	DurationMS  float64                    `json:"duration_ms"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleAnalyze screens the provided message.
func (s *Server) handleAnalyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid analyze request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message field is required")
	}

	report := s.currentScreener().Screen(req.Message)
	analysisID := uuid.NewString()

	s.publishAlerts(c.Request().Context(), analysisID, report)

	s.logger.Debug("screened message",
		zap.String("analysis_id", analysisID),
		zap.Bool("crisis", report.HasCrisis()),
		zap.Bool("psychosis", report.HasPsychosis()),
		zap.Int("triggers", len(report.Triggers)),
		zap.Duration("duration", report.Duration),
	)

	return c.JSON(http.StatusOK, AnalyzeResponse{
		AnalysisID:  analysisID,
		Context:     report.Context,
		Triggers:    report.Triggers,
		Distortions: report.Distortions,
		Psychosis:   report.Psychosis,
		DurationMS:  float64(report.Duration.Microseconds()) / 1000.0,
	})
}

// publishAlerts emits crisis and psychosis events for a finished report.
// Publish failures are logged and do not fail the request.
func (s *Server) publishAlerts(ctx context.Context, analysisID string, report *screening.Report) {
	now := time.Now().UTC()

	if report.HasCrisis() {
		alert := events.Alert{
			AnalysisID: analysisID,
			Kind:       events.KindCrisis,
			Score:      report.Context.Crisis.Score,
			Confidence: string(report.Context.Crisis.Confidence),
			Timestamp:  now,
		}
		if err := s.publisher.Publish(ctx, alert); err != nil {
			s.logger.Warn("failed to publish crisis alert",
				zap.String("analysis_id", analysisID), zap.Error(err))
		}
	}

	if report.HasPsychosis() {
		alert := events.Alert{
			AnalysisID: analysisID,
			Kind:       events.KindPsychosis,
			Confidence: string(report.Psychosis.Confidence),
			Timestamp:  now,
		}
		if err := s.publisher.Publish(ctx, alert); err != nil {
			s.logger.Warn("failed to publish psychosis alert",
				zap.String("analysis_id", analysisID), zap.Error(err))
		}
	}
}

// currentScreener returns the active screener.
func (s *Server) currentScreener() screening.Screener {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screener
}

// SetScreener swaps the active screener. Used by config hot-reload; in-flight
// requests finish against the screener they started with.
func (s *Server) SetScreener(screener screening.Screener) {
	if screener == nil {
		return
	}
	s.mu.Lock()
	s.screener = screener
	s.mu.Unlock()
}

// Echo exposes the underlying echo instance for middleware registration.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
