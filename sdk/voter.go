package sdk

import (
	"context"
	"fmt"

	"github.com/erwinjamescodes/sinotoriables/votes"
)

// Voter combines a Client with an optimistic local ballot. ToggleLike applies
// the predicted flip immediately, then settles it against the server's answer:
// confirmed state sticks, failures restore the exact pre-attempt state, and
// the advisory vote cap is checked before the server is contacted at all.
type Voter struct {
	client *Client
	ballot *votes.Ballot
}

// NewVoter hydrates a voter from the server: the candidate list seeds the
// displayed like counts and the likes endpoint seeds the vote set and cap.
func NewVoter(ctx context.Context, client *Client) (*Voter, error) {
	candidates, err := client.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	likes, err := client.Likes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load likes: %w", err)
	}

	counts := make(map[int64]int64, len(candidates))
	for _, cand := range candidates {
		counts[cand.ID] = cand.LikeCount
	}

	ballot := votes.NewBallot(likes.MaxVotes)
	ballot.Hydrate(likes.LikedIDs, counts)

	return &Voter{client: client, ballot: ballot}, nil
}

// Ballot exposes the local vote state for rendering.
func (v *Voter) Ballot() *votes.Ballot { return v.ballot }

// ToggleLike runs the full optimistic toggle: cap check, local flip, server
// call, then reconcile or rollback. The returned result is the server's
// answer; on error the local state is exactly as it was before the call.
func (v *Voter) ToggleLike(ctx context.Context, candidateID int64) (*ToggleResult, error) {
	pending, err := v.ballot.Begin(candidateID)
	if err != nil {
		return nil, err
	}

	result, err := v.client.Toggle(ctx, candidateID)
	if err != nil {
		if rbErr := v.ballot.Rollback(pending); rbErr != nil {
			return nil, fmt.Errorf("toggle failed and rollback failed: %w", rbErr)
		}
		return nil, err
	}

	if err := v.ballot.Reconcile(pending, result.Action); err != nil {
		return nil, err
	}
	return result, nil
}

// Refresh re-hydrates the local ballot from the server, discarding any local
// state. Useful after an extended offline stretch or a reconciliation surprise.
func (v *Voter) Refresh(ctx context.Context) error {
	candidates, err := v.client.Candidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}

	likes, err := v.client.Likes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load likes: %w", err)
	}

	counts := make(map[int64]int64, len(candidates))
	for _, cand := range candidates {
		counts[cand.ID] = cand.LikeCount
	}
	v.ballot.Hydrate(likes.LikedIDs, counts)
	return nil
}
