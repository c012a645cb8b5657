package command

import (
	"context"
	"fmt"

	"github.com/hexfeed/reputation/internal/datasources"
)

// IncrementViewCountRequest is the request for the IncrementViewCount command.
type IncrementViewCountRequest struct {
	PostID string
}

// IncrementViewCount bumps a post's view counter. There is no per-viewer
// dedup here; rate limiting viewers is a collaborator's concern.
type IncrementViewCount struct {
	ViewIncrementer datasources.PostViewIncrementer
}

// NewIncrementViewCount creates a properly initialized IncrementViewCount command.
func NewIncrementViewCount(viewIncrementer datasources.PostViewIncrementer) *IncrementViewCount {
	return &IncrementViewCount{ViewIncrementer: viewIncrementer}
}

// Execute increments the post's view count.
func (c *IncrementViewCount) Execute(ctx context.Context, req IncrementViewCountRequest) (Empty, error) {
	if err := c.ViewIncrementer.IncrementPostViews(ctx, req.PostID); err != nil {
		return Empty{}, fmt.Errorf("incrementing post views: %w", err)
	}

	return Empty{}, nil
}
