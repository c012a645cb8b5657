package command

import (
	"context"
	"fmt"

	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/domain"
)

// GetUserReputationRequest is the request for the GetUserReputation command.
type GetUserReputationRequest struct {
	UserID string
}

// GetUserReputation assembles a user's reputation summary from the stored
// score and aggregate counters. It performs no recomputation.
type GetUserReputation struct {
	UserGetter      datasources.UserGetter
	PostStatsLister datasources.AuthorPostStatsLister
}

// NewGetUserReputation creates a properly initialized GetUserReputation command.
func NewGetUserReputation(
	userGetter datasources.UserGetter,
	postStatsLister datasources.AuthorPostStatsLister,
) *GetUserReputation {
	return &GetUserReputation{
		UserGetter:      userGetter,
		PostStatsLister: postStatsLister,
	}
}

// Execute returns the reputation summary for the user.
func (c *GetUserReputation) Execute(
	ctx context.Context, req GetUserReputationRequest,
) (domain.ReputationSummary, error) {
	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	if err != nil {
		return domain.ReputationSummary{}, fmt.Errorf("fetching user: %w", err)
	}

	posts, err := c.PostStatsLister.ListAuthorPostStats(ctx, req.UserID)
	if err != nil {
		return domain.ReputationSummary{}, fmt.Errorf("listing author post stats: %w", err)
	}

	tier := domain.TierForScore(user.ReliabilityScore)

	return domain.ReputationSummary{
		ID:             user.ID,
		Name:           user.Name,
		Avatar:         user.Avatar,
		Score:          user.ReliabilityScore,
		TotalViews:     user.TotalViews,
		TotalLikes:     user.TotalLikes,
		TotalDislikes:  user.TotalDislikes,
		Tier:           tier.Tier,
		Color:          tier.Color,
		Stars:          tier.Stars,
		Badge:          tier.Badge,
		EngagementRate: domain.EngagementRateString(user.TotalLikes, user.TotalDislikes, user.TotalViews),
		PostCount:      len(posts),
	}, nil
}
