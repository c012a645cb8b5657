package command

import (
	"context"
	"fmt"
	"time"

	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/domain"
)

// RecalculateReliabilityRequest is the request for the RecalculateReliability command.
type RecalculateReliabilityRequest struct {
	UserID string
}

// RecalculateReliability runs the full scoring pass over a user's non-deleted
// posts and persists the resulting score alongside refreshed aggregate
// counters. The reads and the single write are not wrapped in one
// transaction; overlapping recomputations for the same author resolve to the
// later write.
type RecalculateReliability struct {
	UserGetter      datasources.UserGetter
	PostStatsLister datasources.AuthorPostStatsLister
	ScoreWriter     datasources.UserScoreWriter
	Now             func() time.Time
}

// NewRecalculateReliability creates a properly initialized RecalculateReliability command.
func NewRecalculateReliability(
	userGetter datasources.UserGetter,
	postStatsLister datasources.AuthorPostStatsLister,
	scoreWriter datasources.UserScoreWriter,
) *RecalculateReliability {
	return &RecalculateReliability{
		UserGetter:      userGetter,
		PostStatsLister: postStatsLister,
		ScoreWriter:     scoreWriter,
		Now:             time.Now,
	}
}

// Execute recomputes and stores the user's reliability score.
func (c *RecalculateReliability) Execute(
	ctx context.Context, req RecalculateReliabilityRequest,
) (domain.ReputationUpdate, error) {
	logger := domain.LoggerFromContext(ctx)

	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	if err != nil {
		return domain.ReputationUpdate{}, fmt.Errorf("fetching user: %w", err)
	}

	posts, err := c.PostStatsLister.ListAuthorPostStats(ctx, req.UserID)
	if err != nil {
		return domain.ReputationUpdate{}, fmt.Errorf("listing author post stats: %w", err)
	}

	newScore := domain.ComputeScore(posts, c.Now())

	var totalLikes, totalDislikes, totalViews int64
	for _, post := range posts {
		totalLikes += post.LikeCount
		totalDislikes += post.DislikeCount
		totalViews += post.ViewCount
	}

	if err := c.ScoreWriter.UpdateUserScore(
		ctx, req.UserID, newScore, totalLikes, totalDislikes, totalViews,
	); err != nil {
		return domain.ReputationUpdate{}, fmt.Errorf("updating user score: %w", err)
	}

	tier := domain.TierForScore(newScore)

	logger.DebugContext(ctx, "recalculated reliability score",
		"userID", req.UserID, "oldScore", user.ReliabilityScore, "newScore", newScore, "tier", tier.Tier)

	return domain.ReputationUpdate{
		OldScore: user.ReliabilityScore,
		NewScore: newScore,
		Change:   newScore - user.ReliabilityScore,
		Tier:     tier.Tier,
		Color:    tier.Color,
	}, nil
}
