package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwinjamescodes/sinotoriables/votes"
)

func newTestVoter(t *testing.T) (*Voter, *fakeServer) {
	t.Helper()
	client, fake := newTestClient(t)

	voter, err := NewVoter(context.Background(), client)
	require.NoError(t, err)
	return voter, fake
}

func TestNewVoter_HydratesCountsAndCap(t *testing.T) {
	voter, _ := newTestVoter(t)

	assert.Equal(t, 0, voter.Ballot().Votes())
	assert.Equal(t, int64(5), voter.Ballot().LikeCount(2))
	assert.False(t, voter.Ballot().Liked(1))
}

func TestVoter_ToggleLike_Confirmed(t *testing.T) {
	voter, fake := newTestVoter(t)

	result, err := voter.ToggleLike(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, votes.ActionLiked, result.Action)

	assert.True(t, voter.Ballot().Liked(1))
	assert.Equal(t, int64(1), voter.Ballot().LikeCount(1))
	assert.Equal(t, int64(1), fake.candidates[1].LikeCount)
}

func TestVoter_ToggleLike_Involution(t *testing.T) {
	voter, _ := newTestVoter(t)
	ctx := context.Background()

	_, err := voter.ToggleLike(ctx, 1)
	require.NoError(t, err)
	result, err := voter.ToggleLike(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, votes.ActionUnliked, result.Action)
	assert.False(t, voter.Ballot().Liked(1))
	assert.Equal(t, int64(0), voter.Ballot().LikeCount(1))
}

func TestVoter_ToggleLike_ServerFailureRollsBack(t *testing.T) {
	voter, fake := newTestVoter(t)

	fake.toggleErr = http.StatusBadGateway
	_, err := voter.ToggleLike(context.Background(), 2)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)

	// local state restored to exactly the pre-attempt values
	assert.False(t, voter.Ballot().Liked(2))
	assert.Equal(t, int64(5), voter.Ballot().LikeCount(2))
	assert.Equal(t, 0, voter.Ballot().Votes())
}

func TestVoter_ToggleLike_CapBlocksWithoutServerCall(t *testing.T) {
	client, fake := newTestClient(t)
	fake.maxVotes = 1

	voter, err := NewVoter(context.Background(), client)
	require.NoError(t, err)

	_, err = voter.ToggleLike(context.Background(), 1)
	require.NoError(t, err)

	_, err = voter.ToggleLike(context.Background(), 2)
	assert.ErrorIs(t, err, votes.ErrVoteCapReached)

	// the server never saw a toggle for candidate 2
	assert.Equal(t, int64(5), fake.candidates[2].LikeCount)

	// unliking the held candidate still works at the cap
	result, err := voter.ToggleLike(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, votes.ActionUnliked, result.Action)
}

func TestVoter_ReconcileMismatchFollowsServer(t *testing.T) {
	// a server that always answers "unliked" regardless of local state, as a
	// concurrent tab racing this one would produce
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/candidates":
			writeJSON(w, http.StatusOK, map[string]any{"candidates": []Candidate{{ID: 1, Name: "Alba Reyes", LikeCount: 3}}})
		case r.URL.Path == "/api/likes":
			writeJSON(w, http.StatusOK, Likes{LikedIDs: []int64{}, MaxVotes: 12})
		default:
			writeJSON(w, http.StatusOK, ToggleResult{Action: votes.ActionUnliked, CandidateID: 1})
		}
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	voter, err := NewVoter(context.Background(), client)
	require.NoError(t, err)

	result, err := voter.ToggleLike(context.Background(), 1)
	require.NoError(t, err)

	// predicted "liked", server said "unliked": membership and count follow
	// the server's answer
	assert.Equal(t, votes.ActionUnliked, result.Action)
	assert.False(t, voter.Ballot().Liked(1))
	assert.Equal(t, int64(2), voter.Ballot().LikeCount(1))
}

func TestVoter_Refresh(t *testing.T) {
	voter, fake := newTestVoter(t)
	ctx := context.Background()

	_, err := voter.ToggleLike(ctx, 1)
	require.NoError(t, err)

	// another actor moves the counts server-side
	fake.mu.Lock()
	fake.candidates[2].LikeCount = 9
	fake.mu.Unlock()

	require.NoError(t, voter.Refresh(ctx))
	assert.True(t, voter.Ballot().Liked(1))
	assert.Equal(t, int64(9), voter.Ballot().LikeCount(2))
}
