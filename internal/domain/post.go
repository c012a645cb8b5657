package domain

import "time"

// Post is the subset of a feed post the scoring engine needs.
type Post struct {
	ID           string
	UserID       string
	CreatedAt    time.Time
	ViewCount    int64
	LikeCount    int64
	DislikeCount int64
	IsDeleted    bool
}

// PostStats describes one non-deleted post of an author during score
// recomputation. LikeCount, DislikeCount and ViewCount are the post's
// denormalized counters; ReactionLikes and ReactionDislikes are counted from
// the reaction rows themselves and drive the engagement ratio.
type PostStats struct {
	ID               string
	CreatedAt        time.Time
	ViewCount        int64
	LikeCount        int64
	DislikeCount     int64
	ReactionLikes    int64
	ReactionDislikes int64
}
