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

// ReactionSetRequest is the JSON request body for submitting a reaction.
type ReactionSetRequest struct {
	Type string `json:"type"`
}

// ReactionSet handles POST /v1/reputation/react/{post_id}.
// Submitting the stored reaction type again toggles it off; the response
// always describes the post author's reputation after recomputation.
type ReactionSet struct {
	ReactCmd command.Command[command.AddReactionRequest, domain.ReputationUpdate]
}

func (c ReactionSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID := vars["post_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("post_id", postID))

	var reqBody ReactionSetRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		logger.ErrorContext(ctx, "unable to parse request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reactionType, err := domain.ParseReactionType(reqBody.Type)
	if err != nil {
		logger.ErrorContext(ctx, "invalid reaction type", "value", reqBody.Type)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userID := domain.UserIDFromContext(r.Context())
	update, err := c.ReactCmd.Execute(ctx, command.AddReactionRequest{
		UserID: userID,
		PostID: postID,
		Type:   reactionType,
	})
	if err != nil {
		switch {
		case errors.Is(err, command.ErrRateLimited):
			logger.WarnContext(ctx, "reaction rate limited", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		case errors.Is(err, datasources.ErrPostNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			logger.ErrorContext(ctx, "failed to apply reaction", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(update); err != nil {
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
