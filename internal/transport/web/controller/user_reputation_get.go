package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hexfeed/reputation/internal/command"
	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/domain"
)

// UserReputationGet handles GET /v1/reputation/user/{user_id}, and with
// Self set, GET /v1/reputation/me for the authenticated user.
type UserReputationGet struct {
	SummaryCmd command.Command[command.GetUserReputationRequest, domain.ReputationSummary]
	Self       bool
}

func (c UserReputationGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())

	var userID string
	if c.Self {
		userID = domain.UserIDFromContext(r.Context())
	} else {
		userID = mux.Vars(r)["user_id"]
	}

	ctx := domain.ContextWithLogger(r.Context(), logger.With("user_id", userID))

	summary, err := c.SummaryCmd.Execute(ctx, command.GetUserReputationRequest{UserID: userID})
	if err != nil {
		if errors.Is(err, datasources.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to fetch reputation summary", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
