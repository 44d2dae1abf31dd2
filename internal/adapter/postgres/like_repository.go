package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erwinjamescodes/sinotoriables/internal/adapter/postgres/sqlcgen"
	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

// pgErrNoDataFound is raised by toggle_like when the candidate does not exist.
const pgErrNoDataFound = "P0002"

type LikeRepo struct {
	q *sqlcgen.Queries
}

var _ domain.LikeRepository = (*LikeRepo)(nil)

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{q: sqlcgen.New(pool)}
}

// Toggle invokes the store's atomic toggle_like function. The function either
// fully completes or changes nothing, so any error here means no mutation
// happened.
func (r *LikeRepo) Toggle(ctx context.Context, candidateID int64, browserID domain.BrowserID) (*domain.ToggleResult, error) {
	row, err := r.q.ToggleLike(ctx, sqlcgen.ToggleLikeParams{
		CandidateID: candidateID,
		BrowserID:   browserID.String(),
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrNoDataFound {
		return nil, domain.ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrToggleFailed, err)
	}

	return &domain.ToggleResult{
		Action:      domain.ToggleAction(row.Action),
		CandidateID: row.CandidateID,
	}, nil
}

func (r *LikeRepo) LikedCandidateIDs(ctx context.Context, browserID domain.BrowserID, candidateIDs []int64) ([]int64, error) {
	var (
		ids []int64
		err error
	)

	if len(candidateIDs) == 0 {
		ids, err = r.q.LikedCandidateIDs(ctx, browserID.String())
	} else {
		ids, err = r.q.LikedCandidateIDsAmong(ctx, sqlcgen.LikedCandidateIDsAmongParams{
			BrowserID:    browserID.String(),
			CandidateIds: candidateIDs,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read liked candidates: %w", err)
	}

	return ids, nil
}
