package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
	apperrors "github.com/erwinjamescodes/sinotoriables/internal/platform/errors"
)

func (s *Server) registerAPIRoutes(toggleLimiter echo.MiddlewareFunc) {
	s.echo.GET("/api/candidates", s.handleListCandidates)
	s.echo.GET("/api/candidates/:id", s.handleGetCandidate)
	s.echo.POST("/api/candidates/:id/toggle", s.handleToggleLike, toggleLimiter)
	s.echo.GET("/api/likes", s.handleBrowserLikes)
	s.echo.GET("/api/analytics", s.handleAnalytics)
}

type candidateResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Party     string    `json:"party"`
	Platform  string    `json:"platform"`
	Bio       string    `json:"bio"`
	ImageURL  string    `json:"image_url"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}

func toCandidateResponse(c domain.Candidate) candidateResponse {
	return candidateResponse{
		ID:        c.ID,
		Name:      c.Name,
		Party:     c.Party,
		Platform:  c.Platform,
		Bio:       c.Bio,
		ImageURL:  c.ImageURL,
		LikeCount: c.LikeCount,
		CreatedAt: c.CreatedAt,
	}
}

func (s *Server) handleListCandidates(c echo.Context) error {
	candidates, err := s.app.ListCandidates(c.Request().Context())
	if err != nil {
		return apperrors.UnavailableError("failed to list candidates", err)
	}

	response := make([]candidateResponse, 0, len(candidates))
	for _, cand := range candidates {
		response = append(response, toCandidateResponse(cand))
	}

	if err := c.JSON(http.StatusOK, map[string]any{"candidates": response}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetCandidate(c echo.Context) error {
	candidateID, err := parseCandidateID(c)
	if err != nil {
		return err
	}

	candidate, err := s.app.GetCandidate(c.Request().Context(), candidateID)
	if errors.Is(err, domain.ErrCandidateNotFound) {
		return apperrors.NotFoundError("candidate not found").WithField("candidate_id", candidateID)
	}
	if err != nil {
		return apperrors.UnavailableError("failed to load candidate", err).WithField("candidate_id", candidateID)
	}

	if err := c.JSON(http.StatusOK, toCandidateResponse(*candidate)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleToggleLike(c echo.Context) error {
	ctx := c.Request().Context()

	candidateID, err := parseCandidateID(c)
	if err != nil {
		return err
	}

	browserID, err := s.identity.GetOrCreate(newEchoCookies(c))
	if err != nil {
		return apperrors.UnavailableError("failed to establish voter identity", err)
	}

	result, err := s.app.ToggleLike(ctx, candidateID, browserID)
	switch {
	case errors.Is(err, domain.ErrCandidateNotFound):
		return apperrors.NotFoundError("candidate not found").WithField("candidate_id", candidateID)
	case errors.Is(err, domain.ErrRateLimited):
		return apperrors.RateLimitedError("too many toggles, slow down")
	case errors.Is(err, domain.ErrToggleFailed):
		return apperrors.ExternalError("vote could not be recorded", err).WithField("candidate_id", candidateID)
	case err != nil:
		return apperrors.InternalError("toggle failed", err).WithField("candidate_id", candidateID)
	}

	if err := c.JSON(http.StatusOK, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleBrowserLikes(c echo.Context) error {
	ctx := c.Request().Context()

	candidateIDs, err := parseIDsParam(c.QueryParam("ids"))
	if err != nil {
		return err
	}

	// Rehydration is a pure read: a browser without an identity has no likes
	// and gets none minted here. The cookie appears on the first toggle.
	var likedIDs []int64
	if browserID, ok := s.identity.Current(newEchoCookies(c)); ok {
		likedIDs, err = s.app.BrowserLikes(ctx, browserID, candidateIDs)
		if err != nil {
			return apperrors.UnavailableError("failed to load likes", err)
		}
	}
	if likedIDs == nil {
		likedIDs = []int64{}
	}

	response := map[string]any{
		"liked_ids": likedIDs,
		"max_votes": s.config.MaxVotes,
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type timelinePointResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type analyticsResponse struct {
	Rankings []candidateResponse     `json:"rankings"`
	Timeline []timelinePointResponse `json:"timeline"`
}

func toAnalyticsResponse(a *domain.Analytics) analyticsResponse {
	response := analyticsResponse{
		Rankings: make([]candidateResponse, 0, len(a.Rankings)),
		Timeline: make([]timelinePointResponse, 0, len(a.Timeline)),
	}
	for _, cand := range a.Rankings {
		response.Rankings = append(response.Rankings, toCandidateResponse(cand))
	}
	for _, p := range a.Timeline {
		response.Timeline = append(response.Timeline, timelinePointResponse{Date: p.Date, Count: p.Count})
	}
	return response
}

func (s *Server) handleAnalytics(c echo.Context) error {
	analytics, err := s.app.Analytics(c.Request().Context())
	if err != nil {
		return apperrors.UnavailableError("failed to compute analytics", err)
	}

	if err := c.JSON(http.StatusOK, toAnalyticsResponse(analytics)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func parseCandidateID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	candidateID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || candidateID < 1 {
		return 0, apperrors.ValidationError("invalid candidate id").WithField("id", raw)
	}
	return candidateID, nil
}

func parseIDsParam(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id < 1 {
			return nil, apperrors.ValidationError("invalid ids parameter").WithField("ids", raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
