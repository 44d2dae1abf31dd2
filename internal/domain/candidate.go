package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID        int64
	CreatedAt time.Time

	Name     string
	Party    string
	Platform string
	Bio      string
	ImageURL string

	// LikeCount is denormalized and maintained exclusively by the
	// toggle_like stored function.
	LikeCount int64
}

type CandidateRepository interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, candidateID int64) (*Candidate, error)

	Create(ctx context.Context, c NewCandidate) (*Candidate, error)
	Update(ctx context.Context, candidateID int64, c NewCandidate) (*Candidate, error)
	Delete(ctx context.Context, candidateID int64) error
}

// NewCandidate carries the descriptive fields for candidate creation and updates.
type NewCandidate struct {
	Name     string
	Party    string
	Platform string
	Bio      string
	ImageURL string
}
