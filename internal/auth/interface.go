package auth

import (
	"context"

	"meeting-room-booking/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// OAuthURL returns the Google consent URL for the given client.
	OAuthURL(ctx context.Context, client Client) (string, error)
	// HandleCallback exchanges an authorization code and opens a session.
	HandleCallback(ctx context.Context, input CallbackInput) (LoginOutput, error)
	// Refresh issues a new token pair for a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	// Authenticate resolves an access token to the caller's scope.
	Authenticate(ctx context.Context, accessToken string) (model.Scope, error)
	Logout(ctx context.Context, sc model.Scope) error
}
