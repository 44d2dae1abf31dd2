package votes

// DefaultMaxVotes is the ballot size for a Philippine Senate election: a
// browser may concurrently like at most this many candidates.
const DefaultMaxVotes = 12

// VoteSet is the set of candidate ids the current browser has liked, as known
// locally. It is memory-only and rebuilt from the store on page load.
type VoteSet map[int64]struct{}

// NewVoteSet builds a VoteSet from candidate ids.
func NewVoteSet(ids ...int64) VoteSet {
	s := make(VoteSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s VoteSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s VoteSet) Add(id int64)    { s[id] = struct{}{} }
func (s VoteSet) Remove(id int64) { delete(s, id) }
func (s VoteSet) Len() int        { return len(s) }

// CanLike reports whether toggling candidateID is allowed under the vote cap.
// Unliking is always allowed; a new like is allowed only below maxVotes.
// Purely advisory: the store does not enforce the cap.
func CanLike(set VoteSet, candidateID int64, maxVotes int) bool {
	if set.Contains(candidateID) {
		return true
	}
	return set.Len() < maxVotes
}
