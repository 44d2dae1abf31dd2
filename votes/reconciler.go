package votes

import (
	"errors"
	"sync"
)

// Action is a toggle outcome as the server reports it.
type Action string

const (
	ActionLiked   Action = "liked"
	ActionUnliked Action = "unliked"
)

var (
	// ErrVoteCapReached means the ballot is full and the candidate is not
	// currently liked, so the toggle service must not be invoked.
	ErrVoteCapReached = errors.New("vote cap reached")

	// ErrNotOptimistic means the pending toggle was already reconciled or
	// rolled back.
	ErrNotOptimistic = errors.New("pending toggle already settled")
)

// ToggleState tracks one pending toggle through the optimistic-update
// lifecycle.
type ToggleState int

const (
	StateIdle ToggleState = iota
	StateOptimistic
	StateReconciled
	StateRolledBack
)

func (s ToggleState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOptimistic:
		return "optimistic"
	case StateReconciled:
		return "reconciled"
	case StateRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// PendingToggle captures the local state of one candidate before an optimistic
// flip, so the exact pre-attempt values can be restored on failure and net
// deltas computed on reconciliation. Overlapping toggles on the same candidate
// are not serialized; whichever settles last wins, matching the store being
// the sole arbiter of final state.
type PendingToggle struct {
	CandidateID int64
	Predicted   Action

	prevLiked bool
	prevCount int64
	state     ToggleState
}

// State returns the lifecycle state of this pending toggle.
func (p *PendingToggle) State() ToggleState { return p.state }

// Ballot is the optimistic local vote state for one browser: the vote set plus
// displayed like counts per candidate. All transitions keep counts at zero or
// above and leave state either exactly as before the attempt (rollback) or
// exactly as the server confirmed (reconciliation).
type Ballot struct {
	mu       sync.Mutex
	maxVotes int
	set      VoteSet
	counts   map[int64]int64
}

// NewBallot creates an empty ballot with the given vote cap.
func NewBallot(maxVotes int) *Ballot {
	if maxVotes <= 0 {
		maxVotes = DefaultMaxVotes
	}
	return &Ballot{
		maxVotes: maxVotes,
		set:      NewVoteSet(),
		counts:   make(map[int64]int64),
	}
}

// Hydrate replaces local state with the store's answer, typically on page load.
func (b *Ballot) Hydrate(likedIDs []int64, counts map[int64]int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.set = NewVoteSet(likedIDs...)
	b.counts = make(map[int64]int64, len(counts))
	for id, n := range counts {
		b.counts[id] = n
	}
}

// CanLike reports whether a toggle on candidateID passes the vote cap.
func (b *Ballot) CanLike(candidateID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return CanLike(b.set, candidateID, b.maxVotes)
}

// Liked reports local vote-set membership.
func (b *Ballot) Liked(candidateID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.set.Contains(candidateID)
}

// LikeCount returns the locally displayed like count for a candidate.
func (b *Ballot) LikeCount(candidateID int64) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[candidateID]
}

// Votes returns the number of candidates currently liked.
func (b *Ballot) Votes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.set.Len()
}

// LikedIDs returns the liked candidate ids in no particular order.
func (b *Ballot) LikedIDs() []int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]int64, 0, b.set.Len())
	for id := range b.set {
		ids = append(ids, id)
	}
	return ids
}

// Begin gates the toggle on the vote cap, applies the optimistic flip
// (membership and count adjusted by the predicted direction), and returns the
// pending toggle to settle with Reconcile or Rollback once the server answers.
func (b *Ballot) Begin(candidateID int64) (*PendingToggle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !CanLike(b.set, candidateID, b.maxVotes) {
		return nil, ErrVoteCapReached
	}

	p := &PendingToggle{
		CandidateID: candidateID,
		prevLiked:   b.set.Contains(candidateID),
		prevCount:   b.counts[candidateID],
		state:       StateOptimistic,
	}

	if p.prevLiked {
		p.Predicted = ActionUnliked
		b.set.Remove(candidateID)
		b.counts[candidateID] = max(0, p.prevCount-1)
	} else {
		p.Predicted = ActionLiked
		b.set.Add(candidateID)
		b.counts[candidateID] = p.prevCount + 1
	}

	return p, nil
}

// Reconcile settles a pending toggle against the server's reported action.
// A matching prediction leaves state as-is, now authoritative. On mismatch
// (a race with another tab, typically) membership follows the server and the
// count is recomputed from the pre-attempt value so the net delta equals
// exactly what the server confirmed.
func (b *Ballot) Reconcile(p *PendingToggle, action Action) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p.state != StateOptimistic {
		return ErrNotOptimistic
	}
	p.state = StateReconciled

	if action == p.Predicted {
		return nil
	}

	if action == ActionLiked {
		b.set.Add(p.CandidateID)
		b.counts[p.CandidateID] = p.prevCount + 1
	} else {
		b.set.Remove(p.CandidateID)
		b.counts[p.CandidateID] = max(0, p.prevCount-1)
	}
	return nil
}

// Rollback restores the exact pre-attempt membership and count after a failed
// toggle. Nothing changed server-side, so local state returns to "nothing
// happened".
func (b *Ballot) Rollback(p *PendingToggle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p.state != StateOptimistic {
		return ErrNotOptimistic
	}
	p.state = StateRolledBack

	if p.prevLiked {
		b.set.Add(p.CandidateID)
	} else {
		b.set.Remove(p.CandidateID)
	}
	b.counts[p.CandidateID] = p.prevCount
	return nil
}
