package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erwinjamescodes/sinotoriables/internal/adapter/postgres/sqlcgen"
	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

type CandidateRepo struct {
	q *sqlcgen.Queries
}

func NewCandidateRepo(pool *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{q: sqlcgen.New(pool)}
}

func toDomainCandidate(row sqlcgen.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		Name:      row.Name,
		Party:     row.Party,
		Platform:  row.Platform,
		Bio:       row.Bio,
		ImageURL:  row.ImageUrl,
		LikeCount: row.LikeCount,
	}
}

func (r *CandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.q.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, toDomainCandidate(row))
	}
	return candidates, nil
}

func (r *CandidateRepo) GetByID(ctx context.Context, candidateID int64) (*domain.Candidate, error) {
	row, err := r.q.GetCandidateByID(ctx, candidateID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate by ID: %w", err)
	}

	candidate := toDomainCandidate(row)
	return &candidate, nil
}

func (r *CandidateRepo) Create(ctx context.Context, c domain.NewCandidate) (*domain.Candidate, error) {
	row, err := r.q.CreateCandidate(ctx, sqlcgen.CreateCandidateParams{
		Name:     c.Name,
		Party:    c.Party,
		Platform: c.Platform,
		Bio:      c.Bio,
		ImageUrl: c.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	candidate := toDomainCandidate(row)
	return &candidate, nil
}

func (r *CandidateRepo) Update(ctx context.Context, candidateID int64, c domain.NewCandidate) (*domain.Candidate, error) {
	row, err := r.q.UpdateCandidate(ctx, sqlcgen.UpdateCandidateParams{
		ID:       candidateID,
		Name:     c.Name,
		Party:    c.Party,
		Platform: c.Platform,
		Bio:      c.Bio,
		ImageUrl: c.ImageURL,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	candidate := toDomainCandidate(row)
	return &candidate, nil
}

func (r *CandidateRepo) Delete(ctx context.Context, candidateID int64) error {
	affected, err := r.q.DeleteCandidate(ctx, candidateID)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if affected == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

// CandidatesByLikes returns all candidates ordered by like count descending,
// ties broken by id. Feeds the rankings view.
func (r *CandidateRepo) CandidatesByLikes(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.q.ListCandidatesByLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates by likes: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, toDomainCandidate(row))
	}
	return candidates, nil
}

// LikeTimestampsSince returns the creation times of likes newer than since,
// ascending. Feeds the 30-day timeline.
func (r *CandidateRepo) LikeTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	stamps, err := r.q.LikeTimestampsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to read like timestamps: %w", err)
	}
	return stamps, nil
}
