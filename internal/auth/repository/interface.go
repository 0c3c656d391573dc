package repository

import (
	"context"

	"gcal-relay/internal/model"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
	SocialAccountRepository
	SocialTokenRepository
	AuthTokenRepository
}

type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}

type SocialAccountRepository interface {
	CreateSocialAccount(ctx context.Context, opt CreateSocialAccountOptions) (model.SocialAccount, error)
	CreateUserWithSocialAccount(ctx context.Context, opt CreateUserWithSocialAccountOptions) (model.SocialAccount, error)
	GetOneSocialAccount(ctx context.Context, opt GetOneSocialAccountOptions) (model.SocialAccount, error)
}

type SocialTokenRepository interface {
	UpsertSocialToken(ctx context.Context, opt UpsertSocialTokenOptions) (model.SocialToken, error)
	GetOneSocialToken(ctx context.Context, opt GetOneSocialTokenOptions) (model.SocialToken, error)
}

type AuthTokenRepository interface {
	GetOrCreateAuthToken(ctx context.Context, userID string) (model.AuthToken, error)
	GetOneAuthToken(ctx context.Context, key string) (model.AuthToken, error)
	DeleteAuthToken(ctx context.Context, userID string) error
}
