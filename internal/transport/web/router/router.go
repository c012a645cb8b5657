package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hexfeed/reputation/internal/command"
	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/domain"
	"github.com/hexfeed/reputation/internal/transport/web/controller"
)

func MakeRouter(
	tokens datasources.APITokenRepository,
	authMiddleware func(http.Handler) http.Handler,
	reactCmd command.Command[command.AddReactionRequest, domain.ReputationUpdate],
	viewCmd command.Command[command.IncrementViewCountRequest, command.Empty],
	summaryCmd command.Command[command.GetUserReputationRequest, domain.ReputationSummary],
	recalculateCmd command.Command[command.RecalculateReliabilityRequest, domain.ReputationUpdate],
	createAPITokenCmd *command.CreateAPIToken,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/reputation/react/{post_id}", requireAuthMiddleware(controller.ReactionSet{
		ReactCmd: reactCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/reputation/view/{post_id}", controller.PostViewSet{
		ViewCmd: viewCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/reputation/user/{user_id}", controller.UserReputationGet{
		SummaryCmd: summaryCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/reputation/me", requireAuthMiddleware(controller.UserReputationGet{
		SummaryCmd: summaryCmd,
		Self:       true,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/reputation/recalculate/{user_id}", requireAuthMiddleware(controller.ReliabilityRecalculate{
		RecalculateCmd: recalculateCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenCreate{
		CreateCmd: createAPITokenCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenList{
		TokenLister: tokens,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tokens/{token_id}", requireAuthMiddleware(controller.APITokenRevoke{
		TokenRevoker: tokens,
	})).Methods(http.MethodDelete, http.MethodOptions)

	return r, nil
}
