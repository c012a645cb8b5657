package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/hexfeed/reputation/internal/command"
	cmdmocks "github.com/hexfeed/reputation/internal/command/mocks"
	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPostViewSet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		postID     string
		viewErr    error
		wantStatus int
	}{
		{
			name:       "view_counted",
			postID:     "post-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "post_not_found",
			postID:     "missing",
			viewErr:    datasources.ErrPostNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "internal_error",
			postID:     "post-1",
			viewErr:    errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			viewCmd := cmdmocks.NewMockCommand[command.IncrementViewCountRequest, command.Empty](t)

			viewCmd.EXPECT().
				Execute(mock.Anything, command.IncrementViewCountRequest{PostID: tc.postID}).
				Return(command.Empty{}, tc.viewErr)

			ctrl := PostViewSet{ViewCmd: viewCmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/reputation/view/"+tc.postID, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"post_id": tc.postID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			}
		})
	}
}
