package domain

import (
	"fmt"
	"time"
)

// ReactionType is the kind of reaction a user can leave on a post.
type ReactionType string

const (
	ReactionTypeLike    ReactionType = "like"
	ReactionTypeDislike ReactionType = "dislike"
)

// ParseReactionType converts a wire-format string into a ReactionType.
func ParseReactionType(s string) (ReactionType, error) {
	switch s {
	case string(ReactionTypeLike):
		return ReactionTypeLike, nil
	case string(ReactionTypeDislike):
		return ReactionTypeDislike, nil
	default:
		return "", fmt.Errorf("unknown reaction type [%s]", s)
	}
}

// Reaction is one user's reaction to one post. At most one reaction row
// exists per (user, post) pair at any time.
type Reaction struct {
	ID        string
	UserID    string
	PostID    string
	Type      ReactionType
	CreatedAt time.Time
}

// ReactionOp is what a reaction submission does to the stored row.
type ReactionOp int

const (
	// ReactionOpCreate inserts a new row: the user had no reaction on the post.
	ReactionOpCreate ReactionOp = iota
	// ReactionOpDelete removes the row: the same type was submitted again.
	ReactionOpDelete
	// ReactionOpSwitch updates the row in place: the other type was submitted.
	ReactionOpSwitch
)

// ReactionTransition is the resolved effect of submitting a reaction, with
// the deltas to apply to the post's denormalized counters.
type ReactionTransition struct {
	Op           ReactionOp
	Type         ReactionType
	LikeDelta    int64
	DislikeDelta int64
}

// ResolveReaction applies the toggle rules to a submitted reaction. current
// is nil when the user has no stored reaction for the post. Submitting the
// stored type again toggles it off; submitting the other type switches the
// row and moves one count from each counter.
func ResolveReaction(current *ReactionType, submitted ReactionType) ReactionTransition {
	t := ReactionTransition{Type: submitted}

	switch {
	case current == nil:
		t.Op = ReactionOpCreate
		if submitted == ReactionTypeLike {
			t.LikeDelta = 1
		} else {
			t.DislikeDelta = 1
		}
	case *current == submitted:
		t.Op = ReactionOpDelete
		if submitted == ReactionTypeLike {
			t.LikeDelta = -1
		} else {
			t.DislikeDelta = -1
		}
	default:
		t.Op = ReactionOpSwitch
		if submitted == ReactionTypeLike {
			t.LikeDelta, t.DislikeDelta = 1, -1
		} else {
			t.LikeDelta, t.DislikeDelta = -1, 1
		}
	}

	return t
}
