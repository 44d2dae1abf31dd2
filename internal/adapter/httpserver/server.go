package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
	"github.com/erwinjamescodes/sinotoriables/internal/platform/config"
)

type appService interface {
	ListCandidates(ctx context.Context) ([]domain.Candidate, error)
	GetCandidate(ctx context.Context, candidateID int64) (*domain.Candidate, error)
	ToggleLike(ctx context.Context, candidateID int64, browserID domain.BrowserID) (*domain.ToggleResult, error)
	BrowserLikes(ctx context.Context, browserID domain.BrowserID, candidateIDs []int64) ([]int64, error)
	Analytics(ctx context.Context) (*domain.Analytics, error)
	CreateCandidate(ctx context.Context, c domain.NewCandidate) (*domain.Candidate, error)
	UpdateCandidate(ctx context.Context, candidateID int64, c domain.NewCandidate) (*domain.Candidate, error)
	DeleteCandidate(ctx context.Context, candidateID int64) error
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app      appService
	identity domain.IdentityProvider

	sessionStore *sessions.CookieStore
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app appService, identity domain.IdentityProvider, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		identity:     identity,
		sessionStore: setupSessionStore(cfg),
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
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

// Session keys
const (
	sessionName     = "sinotoriables-admin"
	sessionKeyAdmin = "admin"
)

func setupSessionStore(cfg *config.Config) *sessions.CookieStore {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.AdminSessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	return sessionStore
}
