package domain

import (
	"math"
	"time"
)

// decayLambda is the per-day decay rate applied to a post's influence.
const decayLambda = 0.01

const millisPerDay = 86_400_000

// MinViewsForRatio is the minimum view count before a post's like/dislike
// ratio counts as evidence of quality. Posts seen by fewer people contribute
// nothing to their author's score.
const MinViewsForRatio = 3

// InitialReliabilityScore is the neutral score assigned to new users.
const InitialReliabilityScore = 50.0

const (
	// botReactionLimit is the number of reactions one user may make in a
	// rolling hour before being treated as a bot.
	botReactionLimit = 50

	// baselineEngagementRate is the typical fraction of a post's viewers who
	// react to it. Engagement above ten times this rate looks like brigading.
	baselineEngagementRate = 0.1
)

// SuspicionRejectThreshold is the suspicion weight below which a reaction is
// rejected outright rather than written with reduced influence.
const SuspicionRejectThreshold = 0.5

// ReputationUpdate reports the outcome of one reliability recomputation.
type ReputationUpdate struct {
	OldScore float64 `json:"oldScore"`
	NewScore float64 `json:"newScore"`
	Change   float64 `json:"change"`
	Tier     string  `json:"tier"`
	Color    string  `json:"color"`
}

// TimeDecay returns the influence weight of a post created at createdAt as
// observed at now: exp(-λ * ageDays). The weight is 1 for a brand new post
// and approaches but never reaches 0 as the post ages. There is no clamp, so
// a createdAt after now yields a weight above 1.
func TimeDecay(createdAt, now time.Time) float64 {
	ageDays := float64(now.Sub(createdAt).Milliseconds()) / millisPerDay
	return math.Exp(-decayLambda * ageDays)
}

// EngagementRatio returns the signed net like rate of a post, normalized by
// views. Views are floored at 1 to avoid dividing by zero; posts with fewer
// than MinViewsForRatio views return exactly 0.
func EngagementRatio(likes, dislikes, views int64) float64 {
	effectiveViews := max(views, 1)
	if effectiveViews < MinViewsForRatio {
		return 0
	}

	positiveRatio := float64(likes) / float64(effectiveViews)
	negativeRatio := float64(dislikes) / float64(effectiveViews)

	return positiveRatio - negativeRatio
}

// SuspicionWeight grades how likely a reaction event is abusive, in (0, 1].
// recentUserReactions counts reactions by the reactor across all posts in the
// last rolling hour; recentPostReactions counts last-hour reactions on the
// target post. Callers must compare the result against
// SuspicionRejectThreshold and reject the reaction, never silently dampen it.
func SuspicionWeight(recentUserReactions, recentPostReactions, postViews int64) float64 {
	if recentUserReactions > botReactionLimit {
		return 0.1
	}

	recentEngagementRate := float64(recentPostReactions) / float64(max(postViews, 1))
	if recentEngagementRate > baselineEngagementRate*10 {
		return 0.5
	}

	return 1.0
}

// ComputeScore runs the full scoring pass over an author's non-deleted posts
// and returns the normalized 0-100 reliability score. Likes and dislikes are
// taken from the posts' reaction rows, not the denormalized counters. The
// result depends only on the inputs, so recomputation is idempotent.
func ComputeScore(posts []PostStats, now time.Time) float64 {
	var positiveWeight, negativeWeight float64
	var totalEngagement int64

	for _, post := range posts {
		timeDecay := TimeDecay(post.CreatedAt, now)
		views := max(post.ViewCount, 1)

		ratio := EngagementRatio(post.ReactionLikes, post.ReactionDislikes, views)
		totalEngagement += post.ReactionLikes + post.ReactionDislikes

		if ratio > 0 {
			positiveWeight += math.Abs(ratio) * timeDecay
		} else {
			negativeWeight += math.Abs(ratio) * timeDecay
		}
	}

	// Large total engagement compresses the scaling factor toward zero,
	// bounding how far any one user's raw score can move.
	scalingFactor := 50 / (1 + float64(totalEngagement)/100)
	rawScore := 50 + (positiveWeight-negativeWeight)*scalingFactor

	return NormalizeScore(rawScore)
}

// NormalizeScore squashes a raw score through a sigmoid centered at 50 and
// clamps the result to [0, 100]. The clamp is redundant given the sigmoid's
// range but is applied anyway.
func NormalizeScore(rawScore float64) float64 {
	normalized := 100 / (1 + math.Exp(-(rawScore-50)/10))
	return math.Max(0, math.Min(100, normalized))
}
