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

// ReliabilityRecalculate handles POST /v1/reputation/recalculate/{user_id},
// a maintenance endpoint forcing a full scoring pass for one user.
type ReliabilityRecalculate struct {
	RecalculateCmd command.Command[command.RecalculateReliabilityRequest, domain.ReputationUpdate]
}

func (c ReliabilityRecalculate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("user_id", userID))

	update, err := c.RecalculateCmd.Execute(ctx, command.RecalculateReliabilityRequest{UserID: userID})
	if err != nil {
		if errors.Is(err, datasources.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to recalculate reliability", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(update); err != nil {
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
