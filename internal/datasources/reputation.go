package datasources

import (
	"context"
	"errors"
	"time"

	"github.com/hexfeed/reputation/internal/domain"
)

// ErrUserNotFound is returned when a referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrPostNotFound is returned when a referenced post does not exist.
var ErrPostNotFound = errors.New("post not found")

// UserGetter reads a user's current score and aggregate counters.
type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

// PostGetter reads a single post.
type PostGetter interface {
	GetPost(ctx context.Context, postID string) (domain.Post, error)
}

// AuthorPostStatsLister returns scoring inputs for all of an author's
// non-deleted posts, with like/dislike counts taken from the reaction rows.
type AuthorPostStatsLister interface {
	ListAuthorPostStats(ctx context.Context, userID string) ([]domain.PostStats, error)
}

// UserScoreWriter persists a recomputed reliability score together with the
// refreshed aggregate counters.
type UserScoreWriter interface {
	UpdateUserScore(
		ctx context.Context,
		userID string,
		score float64,
		totalLikes, totalDislikes, totalViews int64,
	) error
}

// ReactionApplier atomically applies a reaction submission: it resolves the
// toggle against the stored row and adjusts the post's denormalized counters,
// which never go below zero.
type ReactionApplier interface {
	ApplyReaction(
		ctx context.Context,
		userID, postID string,
		reactionType domain.ReactionType,
	) (domain.ReactionTransition, error)
}

// UserReactionCounter counts reactions made by a user across all posts since
// the given time.
type UserReactionCounter interface {
	CountUserReactionsSince(ctx context.Context, userID string, since time.Time) (int64, error)
}

// PostReactionCounter counts reactions on a post since the given time.
type PostReactionCounter interface {
	CountPostReactionsSince(ctx context.Context, postID string, since time.Time) (int64, error)
}

// PostViewIncrementer bumps a post's view counter by one.
type PostViewIncrementer interface {
	IncrementPostViews(ctx context.Context, postID string) error
}

// ReputationRepository combines every store operation the scoring engine uses.
type ReputationRepository interface {
	UserGetter
	PostGetter
	AuthorPostStatsLister
	UserScoreWriter
	ReactionApplier
	UserReactionCounter
	PostReactionCounter
	PostViewIncrementer
}
