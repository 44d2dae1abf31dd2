package app

import (
	"context"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/erwinjamescodes/sinotoriables/internal/adapter/metrics"
	"github.com/erwinjamescodes/sinotoriables/internal/domain"
	"github.com/erwinjamescodes/sinotoriables/internal/platform/logging"
)

// RateLimiter gates toggle attempts per browser before they reach the store.
type RateLimiter interface {
	Allow(ctx context.Context, browserID domain.BrowserID) (bool, error)
}

// Service is the application layer — the only component that references
// multiple domain components. It orchestrates all use cases.
type Service struct {
	candidates domain.CandidateRepository
	likes      domain.LikeRepository
	analytics  domain.AnalyticsRepository
	cache      domain.AnalyticsCache
	limiter    RateLimiter
	clock      clockwork.Clock

	analyticsGroup singleflight.Group
}

// NewService creates the application layer service.
// cache and limiter may be nil when Redis is not configured.
func NewService(candidates domain.CandidateRepository, likes domain.LikeRepository, analytics domain.AnalyticsRepository, cache domain.AnalyticsCache, limiter RateLimiter, clock clockwork.Clock) *Service {
	return &Service{
		candidates: candidates,
		likes:      likes,
		analytics:  analytics,
		cache:      cache,
		limiter:    limiter,
		clock:      clock,
	}
}

// ListCandidates returns all candidates in stable id order with their
// current like counts.
func (s *Service) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	return s.candidates.List(ctx)
}

// GetCandidate retrieves a single candidate by id.
func (s *Service) GetCandidate(ctx context.Context, candidateID int64) (*domain.Candidate, error) {
	return s.candidates.GetByID(ctx, candidateID)
}

// ToggleLike flips the browser's like on a candidate and reports the
// resulting state. The store decides the outcome atomically; this layer only
// rate limits and records metrics around it.
func (s *Service) ToggleLike(ctx context.Context, candidateID int64, browserID domain.BrowserID) (*domain.ToggleResult, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, browserID)
		if err != nil {
			// Rate limiting is protective, not load-bearing. When Redis
			// is unreachable the toggle proceeds.
			logging.WithBrowser(browserID.String()).Warn("Rate limit check failed, allowing toggle",
				"candidate_id", candidateID, "error", err)
		} else if !allowed {
			metrics.TogglesRejectedTotal.WithLabelValues("rate_limited").Inc()
			return nil, domain.ErrRateLimited
		}
	}

	start := s.clock.Now()
	result, err := s.likes.Toggle(ctx, candidateID, browserID)
	if err != nil {
		return nil, err
	}
	metrics.ToggleDuration.Observe(s.clock.Since(start).Seconds())
	metrics.TogglesTotal.WithLabelValues(string(result.Action)).Inc()
	logging.WithCandidate(candidateID).Debug("Toggle recorded", "action", result.Action)

	return result, nil
}

// BrowserLikes returns the candidate ids the browser currently likes,
// restricted to candidateIDs when non-empty.
func (s *Service) BrowserLikes(ctx context.Context, browserID domain.BrowserID, candidateIDs []int64) ([]int64, error) {
	return s.likes.LikedCandidateIDs(ctx, browserID, candidateIDs)
}

// CreateCandidate adds a candidate to the roster.
func (s *Service) CreateCandidate(ctx context.Context, c domain.NewCandidate) (*domain.Candidate, error) {
	return s.candidates.Create(ctx, c)
}

// UpdateCandidate replaces a candidate's descriptive fields.
func (s *Service) UpdateCandidate(ctx context.Context, candidateID int64, c domain.NewCandidate) (*domain.Candidate, error) {
	return s.candidates.Update(ctx, candidateID, c)
}

// DeleteCandidate removes a candidate and, via the store's cascade, its likes.
func (s *Service) DeleteCandidate(ctx context.Context, candidateID int64) error {
	return s.candidates.Delete(ctx, candidateID)
}
