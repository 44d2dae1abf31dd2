package votes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullSet(n int) VoteSet {
	s := NewVoteSet()
	for i := 1; i <= n; i++ {
		s.Add(int64(i))
	}
	return s
}

func TestCanLike_EmptySet(t *testing.T) {
	assert.True(t, CanLike(NewVoteSet(), 7, DefaultMaxVotes))
}

func TestCanLike_BelowCap(t *testing.T) {
	assert.True(t, CanLike(fullSet(11), 99, DefaultMaxVotes))
}

func TestCanLike_AtCap_NewCandidateRejected(t *testing.T) {
	set := fullSet(12)
	assert.False(t, set.Contains(99))
	assert.False(t, CanLike(set, 99, DefaultMaxVotes))
}

func TestCanLike_AtCap_UnlikeAlwaysAllowed(t *testing.T) {
	set := fullSet(12)
	assert.True(t, CanLike(set, 12, DefaultMaxVotes))
}

func TestCanLike_OverCap_MemberStillAllowed(t *testing.T) {
	// the cap is advisory; a set larger than the cap can exist if the check
	// was bypassed, and unliking must still work to recover
	set := fullSet(15)
	assert.True(t, CanLike(set, 3, DefaultMaxVotes))
	assert.False(t, CanLike(set, 99, DefaultMaxVotes))
}

func TestCanLike_CustomCap(t *testing.T) {
	set := fullSet(3)
	assert.False(t, CanLike(set, 99, 3))
	assert.True(t, CanLike(set, 99, 4))
}

func TestVoteSet_Basics(t *testing.T) {
	s := NewVoteSet(1, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))

	s.Remove(2)
	assert.False(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())

	s.Add(2)
	s.Add(2)
	assert.Equal(t, 3, s.Len())
}
