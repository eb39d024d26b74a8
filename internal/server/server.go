// Package server provides the HTTP upload shell around the finstruct pipeline.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rajesh180675/advanced-analysis/internal/common"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct"
)

// Server is the HTTP server
type Server struct {
	echo   *echo.Echo
	cfg    *common.Config
	opts   finstruct.Options
	logger *common.Logger
}

// NewServer creates a server with routes and middleware registered
func NewServer(cfg *common.Config, opts finstruct.Options, logger *common.Logger) *Server {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, cfg: cfg, opts: opts, logger: logger}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Error != nil {
				event = logger.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit()))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/health", s.Health)

	api := s.echo.Group("/api/v1")
	api.POST("/analyze", s.Analyze)
	api.POST("/chart", s.Chart)
	api.POST("/export", s.Export)
}

// Handler returns the server as an http.Handler
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured address until Shutdown
func (s *Server) Start() error {
	addr := s.cfg.Server.Address()
	s.logger.Info().Str("addr", addr).Msg("server starting")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
