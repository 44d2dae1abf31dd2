package domain

import "context"

// ToggleAction is the state a toggle left behind, as reported by the store.
type ToggleAction string

const (
	ActionLiked   ToggleAction = "liked"
	ActionUnliked ToggleAction = "unliked"
)

// ToggleResult is the authoritative answer of the toggle_like procedure.
type ToggleResult struct {
	Action      ToggleAction `json:"action"`
	CandidateID int64        `json:"candidate_id"`
}

// LikeRepository is the application-side view of the like store. The store's
// toggle procedure performs the atomic check-and-flip per (candidate, browser)
// pair and maintains the denormalized counter; callers consume that guarantee,
// they do not re-implement it.
type LikeRepository interface {
	// Toggle flips the like of browserID for candidateID and reports which
	// state resulted. Calling it twice from a stable starting state returns
	// to the original state.
	Toggle(ctx context.Context, candidateID int64, browserID BrowserID) (*ToggleResult, error)

	// LikedCandidateIDs returns the candidate ids currently liked by the
	// browser. When candidateIDs is non-empty the result is restricted to
	// those ids.
	LikedCandidateIDs(ctx context.Context, browserID BrowserID, candidateIDs []int64) ([]int64, error)
}
