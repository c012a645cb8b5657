package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReactionType(t *testing.T) {
	like, err := ParseReactionType("like")
	require.NoError(t, err)
	assert.Equal(t, ReactionTypeLike, like)

	dislike, err := ParseReactionType("dislike")
	require.NoError(t, err)
	assert.Equal(t, ReactionTypeDislike, dislike)

	_, err = ParseReactionType("love")
	assert.Error(t, err)

	_, err = ParseReactionType("")
	assert.Error(t, err)
}

func TestResolveReaction(t *testing.T) {
	like := ReactionTypeLike
	dislike := ReactionTypeDislike

	cases := []struct {
		name            string
		current         *ReactionType
		submitted       ReactionType
		wantOp          ReactionOp
		wantLikeDelta   int64
		wantDislikeDelta int64
	}{
		{
			name:      "none_to_liked",
			current:   nil,
			submitted: ReactionTypeLike,
			wantOp:    ReactionOpCreate, wantLikeDelta: 1, wantDislikeDelta: 0,
		},
		{
			name:      "none_to_disliked",
			current:   nil,
			submitted: ReactionTypeDislike,
			wantOp:    ReactionOpCreate, wantLikeDelta: 0, wantDislikeDelta: 1,
		},
		{
			name:      "liked_toggles_off",
			current:   &like,
			submitted: ReactionTypeLike,
			wantOp:    ReactionOpDelete, wantLikeDelta: -1, wantDislikeDelta: 0,
		},
		{
			name:      "disliked_toggles_off",
			current:   &dislike,
			submitted: ReactionTypeDislike,
			wantOp:    ReactionOpDelete, wantLikeDelta: 0, wantDislikeDelta: -1,
		},
		{
			name:      "liked_switches_to_disliked",
			current:   &like,
			submitted: ReactionTypeDislike,
			wantOp:    ReactionOpSwitch, wantLikeDelta: -1, wantDislikeDelta: 1,
		},
		{
			name:      "disliked_switches_to_liked",
			current:   &dislike,
			submitted: ReactionTypeLike,
			wantOp:    ReactionOpSwitch, wantLikeDelta: 1, wantDislikeDelta: -1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveReaction(tc.current, tc.submitted)

			assert.Equal(t, tc.wantOp, got.Op)
			assert.Equal(t, tc.submitted, got.Type)
			assert.Equal(t, tc.wantLikeDelta, got.LikeDelta)
			assert.Equal(t, tc.wantDislikeDelta, got.DislikeDelta)
		})
	}
}

// Toggling the same type twice returns the pair to no reaction with no net
// effect on the counters.
func TestResolveReaction_ToggleLaw(t *testing.T) {
	first := ResolveReaction(nil, ReactionTypeLike)
	require.Equal(t, ReactionOpCreate, first.Op)

	second := ResolveReaction(&first.Type, ReactionTypeLike)
	require.Equal(t, ReactionOpDelete, second.Op)

	assert.Zero(t, first.LikeDelta+second.LikeDelta)
	assert.Zero(t, first.DislikeDelta+second.DislikeDelta)
}
