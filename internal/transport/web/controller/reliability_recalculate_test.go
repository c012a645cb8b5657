package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func TestReliabilityRecalculate_ServeHTTP(t *testing.T) {
	t.Run("recalculated", func(t *testing.T) {
		recalculateCmd := cmdmocks.NewMockCommand[command.RecalculateReliabilityRequest, domain.ReputationUpdate](t)

		update := domain.ReputationUpdate{
			OldScore: 50,
			NewScore: 58.3,
			Change:   8.3,
			Tier:     "Reliable",
			Color:    "#10B981",
		}

		recalculateCmd.EXPECT().
			Execute(mock.Anything, command.RecalculateReliabilityRequest{UserID: "author-1"}).
			Return(update, nil)

		ctrl := ReliabilityRecalculate{RecalculateCmd: recalculateCmd}

		req := httptest.NewRequest(http.MethodPost, "/v1/reputation/recalculate/author-1", nil)
		req = testContextWithUserID("admin-1")(req)
		req = mux.SetURLVars(req, map[string]string{"user_id": "author-1"})
		rec := httptest.NewRecorder()

		ctrl.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.ReputationUpdate
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, update, got)
	})

	t.Run("user_not_found", func(t *testing.T) {
		recalculateCmd := cmdmocks.NewMockCommand[command.RecalculateReliabilityRequest, domain.ReputationUpdate](t)

		recalculateCmd.EXPECT().
			Execute(mock.Anything, command.RecalculateReliabilityRequest{UserID: "missing"}).
			Return(domain.ReputationUpdate{}, datasources.ErrUserNotFound)

		ctrl := ReliabilityRecalculate{RecalculateCmd: recalculateCmd}

		req := httptest.NewRequest(http.MethodPost, "/v1/reputation/recalculate/missing", nil)
		req = testContextWithUserID("admin-1")(req)
		req = mux.SetURLVars(req, map[string]string{"user_id": "missing"})
		rec := httptest.NewRecorder()

		ctrl.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
