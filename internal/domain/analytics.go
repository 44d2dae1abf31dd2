package domain

import (
	"context"
	"time"
)

// TimelinePoint is one day's like volume in the 30-day timeline.
type TimelinePoint struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int64  `json:"count"`
}

// Analytics is the aggregate view served to the statistics pages:
// candidates ranked by like count plus likes-per-day for the last 30 days.
type Analytics struct {
	Rankings []Candidate     `json:"rankings"`
	Timeline []TimelinePoint `json:"timeline"`
}

// AnalyticsRepository reads the raw material for analytics.
type AnalyticsRepository interface {
	CandidatesByLikes(ctx context.Context) ([]Candidate, error)
	LikeTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error)
}

// AnalyticsCache holds a computed Analytics snapshot for a short TTL.
// A cache failure is never fatal; callers fall back to direct reads.
type AnalyticsCache interface {
	Get(ctx context.Context) (*Analytics, error)
	Set(ctx context.Context, a *Analytics) error
}
