package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/erwinjamescodes/sinotoriables/internal/adapter/metrics"
	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

// timelineDays is the window of the likes-per-day timeline, today included.
const timelineDays = 30

// Analytics returns candidates ranked by like count plus a 30-day
// likes-per-day timeline. Concurrent callers collapse onto one computation
// via singleflight; the Redis cache absorbs the rest.
func (s *Service) Analytics(ctx context.Context) (*domain.Analytics, error) {
	v, err, _ := s.analyticsGroup.Do("analytics", func() (any, error) {
		if s.cache != nil {
			cached, err := s.cache.Get(ctx)
			if err != nil {
				slog.Warn("Analytics cache read failed, recomputing", "error", err)
			} else if cached != nil {
				metrics.AnalyticsCacheHits.Inc()
				return cached, nil
			}
		}

		snapshot, err := s.computeAnalytics(ctx)
		if err != nil {
			return nil, err
		}
		metrics.AnalyticsComputes.Inc()

		if s.cache != nil {
			if err := s.cache.Set(ctx, snapshot); err != nil {
				slog.Warn("Analytics cache write failed", "error", err)
			}
		}

		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Analytics), nil
}

func (s *Service) computeAnalytics(ctx context.Context) (*domain.Analytics, error) {
	rankings, err := s.analytics.CandidatesByLikes(ctx)
	if err != nil {
		return nil, err
	}

	since := startOfWindow(s.clock.Now())
	stamps, err := s.analytics.LikeTimestampsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return &domain.Analytics{
		Rankings: rankings,
		Timeline: buildTimeline(since, stamps),
	}, nil
}

// startOfWindow returns midnight UTC of the first day in the timeline.
func startOfWindow(now time.Time) time.Time {
	day := now.UTC().Truncate(24 * time.Hour)
	return day.AddDate(0, 0, -(timelineDays - 1))
}

// buildTimeline buckets like timestamps into UTC days and zero-fills the
// window, so every day appears even when nothing happened.
func buildTimeline(since time.Time, stamps []time.Time) []domain.TimelinePoint {
	counts := make(map[string]int64, timelineDays)
	for _, ts := range stamps {
		counts[ts.UTC().Format(time.DateOnly)]++
	}

	timeline := make([]domain.TimelinePoint, 0, timelineDays)
	for i := 0; i < timelineDays; i++ {
		date := since.AddDate(0, 0, i).Format(time.DateOnly)
		timeline = append(timeline, domain.TimelinePoint{
			Date:  date,
			Count: counts[date],
		})
	}

	return timeline
}
