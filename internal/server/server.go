package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pscheid92/chatparrot/internal/config"
	"github.com/pscheid92/chatparrot/internal/trend"
)

// trendSource is the read side of the word store.
type trendSource interface {
	Snapshot() []trend.WordCount
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	trends       trendSource
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, trends trendSource, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	srv := &Server{
		echo:         e,
		config:       cfg,
		trends:       trends,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting ops server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
