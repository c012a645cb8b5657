package command

import (
	"context"
	"testing"
	"time"

	cmdmocks "github.com/hexfeed/reputation/internal/command/mocks"
	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/datasources/mocks"
	"github.com/hexfeed/reputation/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addReactionMocks struct {
	postGetter      *mocks.MockPostGetter
	userCounter     *mocks.MockUserReactionCounter
	postCounter     *mocks.MockPostReactionCounter
	reactionApplier *mocks.MockReactionApplier
	recalculate     *cmdmocks.MockCommand[RecalculateReliabilityRequest, domain.ReputationUpdate]
}

func newAddReaction(t *testing.T, now time.Time) (*AddReaction, addReactionMocks) {
	m := addReactionMocks{
		postGetter:      mocks.NewMockPostGetter(t),
		userCounter:     mocks.NewMockUserReactionCounter(t),
		postCounter:     mocks.NewMockPostReactionCounter(t),
		reactionApplier: mocks.NewMockReactionApplier(t),
		recalculate:     cmdmocks.NewMockCommand[RecalculateReliabilityRequest, domain.ReputationUpdate](t),
	}

	cmd := NewAddReaction(m.postGetter, m.userCounter, m.postCounter, m.reactionApplier, m.recalculate)
	cmd.Now = func() time.Time { return now }

	return cmd, m
}

func TestAddReaction_Execute(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	oneHourAgo := now.Add(-time.Hour)

	cmd, m := newAddReaction(t, now)

	post := domain.Post{ID: "post-1", UserID: "author-1", ViewCount: 100}

	m.userCounter.EXPECT().
		CountUserReactionsSince(mock.Anything, "reactor-1", oneHourAgo).
		Return(int64(3), nil)
	m.postGetter.EXPECT().
		GetPost(mock.Anything, "post-1").
		Return(post, nil).
		Twice()
	m.postCounter.EXPECT().
		CountPostReactionsSince(mock.Anything, "post-1", oneHourAgo).
		Return(int64(10), nil)
	m.reactionApplier.EXPECT().
		ApplyReaction(mock.Anything, "reactor-1", "post-1", domain.ReactionTypeLike).
		Return(domain.ReactionTransition{Op: domain.ReactionOpCreate, Type: domain.ReactionTypeLike, LikeDelta: 1}, nil)
	m.recalculate.EXPECT().
		Execute(mock.Anything, RecalculateReliabilityRequest{UserID: "author-1"}).
		Return(domain.ReputationUpdate{OldScore: 50, NewScore: 62, Change: 12, Tier: "Expert", Color: "#8B5CF6"}, nil)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	update, err := cmd.Execute(ctx, AddReactionRequest{
		UserID: "reactor-1",
		PostID: "post-1",
		Type:   domain.ReactionTypeLike,
	})
	require.NoError(t, err)
	require.Equal(t, 62.0, update.NewScore)
	require.Equal(t, 12.0, update.Change)
}

func TestAddReaction_Execute_RateLimitsBotVolume(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	oneHourAgo := now.Add(-time.Hour)

	cmd, m := newAddReaction(t, now)

	// The 51st reaction in the rolling hour is rejected before anything is
	// written, even when the target post does not exist.
	m.userCounter.EXPECT().
		CountUserReactionsSince(mock.Anything, "reactor-1", oneHourAgo).
		Return(int64(51), nil)
	m.postGetter.EXPECT().
		GetPost(mock.Anything, "missing").
		Return(domain.Post{}, datasources.ErrPostNotFound)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	_, err := cmd.Execute(ctx, AddReactionRequest{
		UserID: "reactor-1",
		PostID: "missing",
		Type:   domain.ReactionTypeLike,
	})

	require.ErrorIs(t, err, ErrRateLimited)
	m.reactionApplier.AssertNotCalled(t, "ApplyReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddReaction_Execute_BrigadeWeightPasses(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	oneHourAgo := now.Add(-time.Hour)

	cmd, m := newAddReaction(t, now)

	// 30 recent reactions against 20 views is a 1.5 engagement rate. The
	// resulting 0.5 weight sits exactly on the threshold and still passes.
	post := domain.Post{ID: "post-1", UserID: "author-1", ViewCount: 20}

	m.userCounter.EXPECT().
		CountUserReactionsSince(mock.Anything, "reactor-1", oneHourAgo).
		Return(int64(1), nil)
	m.postGetter.EXPECT().
		GetPost(mock.Anything, "post-1").
		Return(post, nil).
		Twice()
	m.postCounter.EXPECT().
		CountPostReactionsSince(mock.Anything, "post-1", oneHourAgo).
		Return(int64(30), nil)
	m.reactionApplier.EXPECT().
		ApplyReaction(mock.Anything, "reactor-1", "post-1", domain.ReactionTypeDislike).
		Return(domain.ReactionTransition{Op: domain.ReactionOpCreate, Type: domain.ReactionTypeDislike, DislikeDelta: 1}, nil)
	m.recalculate.EXPECT().
		Execute(mock.Anything, RecalculateReliabilityRequest{UserID: "author-1"}).
		Return(domain.ReputationUpdate{}, nil)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	_, err := cmd.Execute(ctx, AddReactionRequest{
		UserID: "reactor-1",
		PostID: "post-1",
		Type:   domain.ReactionTypeDislike,
	})
	require.NoError(t, err)
}

func TestAddReaction_Execute_PostNotFound(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	oneHourAgo := now.Add(-time.Hour)

	cmd, m := newAddReaction(t, now)

	// A quiet reactor passes the gate; the missing post then surfaces as
	// NotFound from the real lookup.
	m.userCounter.EXPECT().
		CountUserReactionsSince(mock.Anything, "reactor-1", oneHourAgo).
		Return(int64(0), nil)
	m.postGetter.EXPECT().
		GetPost(mock.Anything, "missing").
		Return(domain.Post{}, datasources.ErrPostNotFound).
		Twice()

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	_, err := cmd.Execute(ctx, AddReactionRequest{
		UserID: "reactor-1",
		PostID: "missing",
		Type:   domain.ReactionTypeLike,
	})

	require.ErrorIs(t, err, datasources.ErrPostNotFound)
	m.reactionApplier.AssertNotCalled(t, "ApplyReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddReaction_Execute_ToggleOffStillRecalculates(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	oneHourAgo := now.Add(-time.Hour)

	cmd, m := newAddReaction(t, now)

	post := domain.Post{ID: "post-1", UserID: "author-1", ViewCount: 50}

	m.userCounter.EXPECT().
		CountUserReactionsSince(mock.Anything, "reactor-1", oneHourAgo).
		Return(int64(2), nil)
	m.postGetter.EXPECT().
		GetPost(mock.Anything, "post-1").
		Return(post, nil).
		Twice()
	m.postCounter.EXPECT().
		CountPostReactionsSince(mock.Anything, "post-1", oneHourAgo).
		Return(int64(0), nil)
	m.reactionApplier.EXPECT().
		ApplyReaction(mock.Anything, "reactor-1", "post-1", domain.ReactionTypeLike).
		Return(domain.ReactionTransition{Op: domain.ReactionOpDelete, Type: domain.ReactionTypeLike, LikeDelta: -1}, nil)
	m.recalculate.EXPECT().
		Execute(mock.Anything, RecalculateReliabilityRequest{UserID: "author-1"}).
		Return(domain.ReputationUpdate{OldScore: 62, NewScore: 58, Change: -4, Tier: "Reliable", Color: "#10B981"}, nil)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	update, err := cmd.Execute(ctx, AddReactionRequest{
		UserID: "reactor-1",
		PostID: "post-1",
		Type:   domain.ReactionTypeLike,
	})
	require.NoError(t, err)
	require.Equal(t, -4.0, update.Change)
	require.Equal(t, "Reliable", update.Tier)
}
