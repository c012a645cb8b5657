package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hexfeed/reputation/internal/command"
	"github.com/hexfeed/reputation/internal/datasources/mysql"
	"github.com/hexfeed/reputation/internal/transport/web/router"
	"github.com/hexfeed/reputation/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	recalculateCmd := command.NewRecalculateReliability(repo, repo, repo)
	reactCmd := command.NewAddReaction(repo, repo, repo, repo, recalculateCmd)
	viewCmd := command.NewIncrementViewCount(repo)
	summaryCmd := command.NewGetUserReputation(repo, repo)
	createAPITokenCmd := command.NewCreateAPIToken(repo, repo)

	httpRouter, err := router.MakeRouter(
		repo,
		authMiddleware,
		reactCmd,
		viewCmd,
		summaryCmd,
		recalculateCmd,
		createAPITokenCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupAuthMiddleware(
	ctx context.Context, repo *mysql.Repository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, repo, repo))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
