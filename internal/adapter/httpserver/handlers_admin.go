package httpserver

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
	apperrors "github.com/erwinjamescodes/sinotoriables/internal/platform/errors"
)

func (s *Server) registerAdminRoutes(csrfMiddleware, loginLimiter echo.MiddlewareFunc) {
	s.echo.POST("/admin/login", s.handleAdminLogin, loginLimiter, csrfMiddleware)
	s.echo.POST("/admin/logout", s.handleAdminLogout, s.requireAdmin, csrfMiddleware)

	s.echo.POST("/admin/candidates", s.handleCreateCandidate, s.requireAdmin, csrfMiddleware)
	s.echo.PUT("/admin/candidates/:id", s.handleUpdateCandidate, s.requireAdmin, csrfMiddleware)
	s.echo.DELETE("/admin/candidates/:id", s.handleDeleteCandidate, s.requireAdmin, csrfMiddleware)
}

func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := s.sessionStore.Get(c.Request(), sessionName)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
		}

		isAdmin, ok := session.Values[sessionKeyAdmin].(bool)
		if !ok || !isAdmin {
			return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
		}

		return next(c)
	}
}

type adminLoginRequest struct {
	Token string `json:"token" form:"token"`
}

func (s *Server) handleAdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid login request")
	}

	if subtle.ConstantTimeCompare([]byte(req.Token), []byte(s.config.AdminToken)) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin token")
	}

	// Fresh session on every successful login
	session, err := s.sessionStore.New(c.Request(), sessionName)
	if err != nil {
		return apperrors.InternalError("failed to create admin session", err)
	}
	session.Values[sessionKeyAdmin] = true
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("failed to save admin session", err)
	}

	slog.Info("Admin logged in", "remote_ip", c.RealIP())

	if err := c.JSON(http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleAdminLogout(c echo.Context) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return apperrors.InternalError("failed to load admin session", err)
	}
	session.Options.MaxAge = -1
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("failed to clear admin session", err)
	}

	if err := c.JSON(http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type candidateRequest struct {
	Name     string `json:"name"`
	Party    string `json:"party"`
	Platform string `json:"platform"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

func (r candidateRequest) toDomain() (domain.NewCandidate, error) {
	if r.Name == "" {
		return domain.NewCandidate{}, apperrors.ValidationError("name is required")
	}
	return domain.NewCandidate{
		Name:     r.Name,
		Party:    r.Party,
		Platform: r.Platform,
		Bio:      r.Bio,
		ImageURL: r.ImageURL,
	}, nil
}

func (s *Server) handleCreateCandidate(c echo.Context) error {
	var req candidateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid candidate payload")
	}

	newCandidate, err := req.toDomain()
	if err != nil {
		return err
	}

	created, err := s.app.CreateCandidate(c.Request().Context(), newCandidate)
	if err != nil {
		return apperrors.InternalError("failed to create candidate", err)
	}

	if err := c.JSON(http.StatusCreated, toCandidateResponse(*created)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUpdateCandidate(c echo.Context) error {
	candidateID, err := parseCandidateID(c)
	if err != nil {
		return err
	}

	var req candidateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid candidate payload")
	}

	newCandidate, err := req.toDomain()
	if err != nil {
		return err
	}

	updated, err := s.app.UpdateCandidate(c.Request().Context(), candidateID, newCandidate)
	if errors.Is(err, domain.ErrCandidateNotFound) {
		return apperrors.NotFoundError("candidate not found").WithField("candidate_id", candidateID)
	}
	if err != nil {
		return apperrors.InternalError("failed to update candidate", err).WithField("candidate_id", candidateID)
	}

	if err := c.JSON(http.StatusOK, toCandidateResponse(*updated)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDeleteCandidate(c echo.Context) error {
	candidateID, err := parseCandidateID(c)
	if err != nil {
		return err
	}

	err = s.app.DeleteCandidate(c.Request().Context(), candidateID)
	if errors.Is(err, domain.ErrCandidateNotFound) {
		return apperrors.NotFoundError("candidate not found").WithField("candidate_id", candidateID)
	}
	if err != nil {
		return apperrors.InternalError("failed to delete candidate", err).WithField("candidate_id", candidateID)
	}

	return c.NoContent(http.StatusNoContent)
}
