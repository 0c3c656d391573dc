package auth

import (
	"context"

	"gcal-relay/internal/model"
)

// SocialLogin is the contract the rest of the service has with the social-login layer:
// trade an authorization code for a linked user, and read back what was stored for a user.
type SocialLogin interface {
	// ExchangeCode trades a Google authorization code for a token, links it to a local
	// user (creating one on first login) and stores the token.
	ExchangeCode(ctx context.Context, code string) (ExchangeCodeOutput, error)

	// GetStoredToken returns the Google token stored for the user.
	// It fails with ErrNoSocialAccount or ErrNoSocialToken when there is none.
	GetStoredToken(ctx context.Context, userID string) (model.SocialToken, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	SocialLogin

	// Login runs ExchangeCode and returns the user's API key.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	// Logout revokes the caller's API key.
	Logout(ctx context.Context, sc model.Scope) error
	// Authenticate resolves an API key to the scope of its user.
	Authenticate(ctx context.Context, key string) (model.Scope, error)
}
