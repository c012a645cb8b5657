package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/domain"
)

// ErrRateLimited is returned when a reaction is rejected by suspicion
// detection. The reaction is not written at all.
var ErrRateLimited = errors.New("suspicious activity detected, please slow down")

// AddReactionRequest is the request for the AddReaction command.
type AddReactionRequest struct {
	UserID string
	PostID string
	Type   domain.ReactionType
}

// AddReaction handles a reaction submission end to end: suspicion gating,
// the toggle against the stored reaction row, and the unconditional
// recomputation of the post author's reliability score. The returned update
// describes the author's score, not the reactor's.
type AddReaction struct {
	PostGetter          datasources.PostGetter
	UserReactionCounter datasources.UserReactionCounter
	PostReactionCounter datasources.PostReactionCounter
	ReactionApplier     datasources.ReactionApplier
	RecalculateCmd      Command[RecalculateReliabilityRequest, domain.ReputationUpdate]
	Now                 func() time.Time
}

// NewAddReaction creates a properly initialized AddReaction command.
func NewAddReaction(
	postGetter datasources.PostGetter,
	userReactionCounter datasources.UserReactionCounter,
	postReactionCounter datasources.PostReactionCounter,
	reactionApplier datasources.ReactionApplier,
	recalculateCmd Command[RecalculateReliabilityRequest, domain.ReputationUpdate],
) *AddReaction {
	return &AddReaction{
		PostGetter:          postGetter,
		UserReactionCounter: userReactionCounter,
		PostReactionCounter: postReactionCounter,
		ReactionApplier:     reactionApplier,
		RecalculateCmd:      recalculateCmd,
		Now:                 time.Now,
	}
}

// Execute applies the reaction and returns the author's reputation update.
func (c *AddReaction) Execute(ctx context.Context, req AddReactionRequest) (domain.ReputationUpdate, error) {
	logger := domain.LoggerFromContext(ctx)

	weight, err := c.suspicionWeight(ctx, req)
	if err != nil {
		return domain.ReputationUpdate{}, err
	}

	if weight < domain.SuspicionRejectThreshold {
		logger.WarnContext(ctx, "reaction rejected as suspicious",
			"userID", req.UserID, "postID", req.PostID, "weight", weight)
		return domain.ReputationUpdate{}, ErrRateLimited
	}

	post, err := c.PostGetter.GetPost(ctx, req.PostID)
	if err != nil {
		return domain.ReputationUpdate{}, fmt.Errorf("fetching post: %w", err)
	}

	transition, err := c.ReactionApplier.ApplyReaction(ctx, req.UserID, req.PostID, req.Type)
	if err != nil {
		return domain.ReputationUpdate{}, fmt.Errorf("applying reaction: %w", err)
	}

	logger.DebugContext(ctx, "applied reaction",
		"userID", req.UserID, "postID", req.PostID, "type", req.Type, "op", transition.Op)

	update, err := c.RecalculateCmd.Execute(ctx, RecalculateReliabilityRequest{UserID: post.UserID})
	if err != nil {
		return domain.ReputationUpdate{}, fmt.Errorf("recalculating author reliability: %w", err)
	}

	return update, nil
}

// suspicionWeight gathers the rolling-hour counts behind suspicion detection.
// A missing post contributes a normal engagement rate, so only the
// reactor-level bot check can reject before the post lookup reports NotFound.
func (c *AddReaction) suspicionWeight(ctx context.Context, req AddReactionRequest) (float64, error) {
	oneHourAgo := c.Now().Add(-time.Hour)

	userRecent, err := c.UserReactionCounter.CountUserReactionsSince(ctx, req.UserID, oneHourAgo)
	if err != nil {
		return 0, fmt.Errorf("counting user reactions: %w", err)
	}

	var postRecent, postViews int64
	post, err := c.PostGetter.GetPost(ctx, req.PostID)
	switch {
	case errors.Is(err, datasources.ErrPostNotFound):
		// Leave the engagement rate at zero.
	case err != nil:
		return 0, fmt.Errorf("fetching post for suspicion check: %w", err)
	default:
		postViews = post.ViewCount
		postRecent, err = c.PostReactionCounter.CountPostReactionsSince(ctx, req.PostID, oneHourAgo)
		if err != nil {
			return 0, fmt.Errorf("counting post reactions: %w", err)
		}
	}

	return domain.SuspicionWeight(userRecent, postRecent, postViews), nil
}
