package domain

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerFromContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ContextWithLogger(context.Background(), logger)
	require.Same(t, logger, LoggerFromContext(ctx))

	// Falls back to the default logger when none is attached.
	require.NotNil(t, LoggerFromContext(context.Background()))
}

func TestUserIDFromContext(t *testing.T) {
	ctx := ContextWithUserID(context.Background(), "user-1")
	require.Equal(t, "user-1", UserIDFromContext(ctx))

	require.Equal(t, "", UserIDFromContext(context.Background()))
}

func TestAuthMethodFromContext(t *testing.T) {
	cases := []struct {
		name   string
		method AuthMethod
	}{
		{name: "auth0", method: AuthMethodAuth0},
		{name: "api_token", method: AuthMethodAPIToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := ContextWithAuthMethod(context.Background(), tc.method)
			require.Equal(t, tc.method, AuthMethodFromContext(ctx))
		})
	}

	require.Equal(t, AuthMethod(""), AuthMethodFromContext(context.Background()))
}
