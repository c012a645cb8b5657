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

// PostViewSet handles POST /v1/reputation/view/{post_id}.
type PostViewSet struct {
	ViewCmd command.Command[command.IncrementViewCountRequest, command.Empty]
}

func (c PostViewSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID := vars["post_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("post_id", postID))

	if _, err := c.ViewCmd.Execute(ctx, command.IncrementViewCountRequest{PostID: postID}); err != nil {
		if errors.Is(err, datasources.ErrPostNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to increment view count", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]bool{"success": true}); err != nil {
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
