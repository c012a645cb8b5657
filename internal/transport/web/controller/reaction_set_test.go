package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/hexfeed/reputation/internal/command"
	cmdmocks "github.com/hexfeed/reputation/internal/command/mocks"
	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func TestReactionSet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		postID       string
		body         string
		reactionType domain.ReactionType
		userID       string
		update       domain.ReputationUpdate
		reactErr     error
		wantStatus   int
		skipReact    bool
	}{
		{
			name:         "like_applied",
			postID:       "post-1",
			body:         `{"type":"like"}`,
			reactionType: domain.ReactionTypeLike,
			userID:       "user-1",
			update: domain.ReputationUpdate{
				OldScore: 50,
				NewScore: 62.5,
				Change:   12.5,
				Tier:     "Trusted",
				Color:    "#F59E0B",
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "dislike_applied",
			postID:       "post-1",
			body:         `{"type":"dislike"}`,
			reactionType: domain.ReactionTypeDislike,
			userID:       "user-1",
			update: domain.ReputationUpdate{
				OldScore: 62.5,
				NewScore: 58,
				Change:   -4.5,
				Tier:     "Reliable",
				Color:    "#10B981",
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid_type",
			postID:     "post-1",
			body:       `{"type":"love"}`,
			userID:     "user-1",
			wantStatus: http.StatusBadRequest,
			skipReact:  true,
		},
		{
			name:       "malformed_body",
			postID:     "post-1",
			body:       `{"type":`,
			userID:     "user-1",
			wantStatus: http.StatusBadRequest,
			skipReact:  true,
		},
		{
			name:         "rate_limited",
			postID:       "post-1",
			body:         `{"type":"like"}`,
			reactionType: domain.ReactionTypeLike,
			userID:       "user-1",
			reactErr:     command.ErrRateLimited,
			wantStatus:   http.StatusTooManyRequests,
		},
		{
			name:         "post_not_found",
			postID:       "missing",
			body:         `{"type":"like"}`,
			reactionType: domain.ReactionTypeLike,
			userID:       "user-1",
			reactErr:     datasources.ErrPostNotFound,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "internal_error",
			postID:       "post-1",
			body:         `{"type":"like"}`,
			reactionType: domain.ReactionTypeLike,
			userID:       "user-1",
			reactErr:     errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reactCmd := cmdmocks.NewMockCommand[command.AddReactionRequest, domain.ReputationUpdate](t)

			if !tc.skipReact {
				reactCmd.EXPECT().
					Execute(mock.Anything, command.AddReactionRequest{
						UserID: tc.userID,
						PostID: tc.postID,
						Type:   tc.reactionType,
					}).
					Return(tc.update, tc.reactErr)
			}

			ctrl := ReactionSet{ReactCmd: reactCmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/reputation/react/"+tc.postID, strings.NewReader(tc.body))
			req = testContextWithUserID(tc.userID)(req)
			req = mux.SetURLVars(req, map[string]string{"post_id": tc.postID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var got domain.ReputationUpdate
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tc.update, got)
			}
		})
	}
}
