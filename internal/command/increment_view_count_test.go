package command

import (
	"context"
	"testing"

	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/datasources/mocks"
	"github.com/hexfeed/reputation/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIncrementViewCount_Execute(t *testing.T) {
	incrementer := mocks.NewMockPostViewIncrementer(t)

	incrementer.EXPECT().
		IncrementPostViews(mock.Anything, "post-1").
		Return(nil)

	cmd := NewIncrementViewCount(incrementer)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	_, err := cmd.Execute(ctx, IncrementViewCountRequest{PostID: "post-1"})
	require.NoError(t, err)
}

func TestIncrementViewCount_Execute_PostNotFound(t *testing.T) {
	incrementer := mocks.NewMockPostViewIncrementer(t)

	incrementer.EXPECT().
		IncrementPostViews(mock.Anything, "missing").
		Return(datasources.ErrPostNotFound)

	cmd := NewIncrementViewCount(incrementer)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	_, err := cmd.Execute(ctx, IncrementViewCountRequest{PostID: "missing"})

	require.ErrorIs(t, err, datasources.ErrPostNotFound)
}
