package usecase

import (
	"context"
	"errors"

	"gcal-relay/internal/auth"
	repo "gcal-relay/internal/auth/repository"
	"gcal-relay/internal/model"
	"gcal-relay/pkg/gauth"
)

// ExchangeCode trades code for a Google token and stores it against the linked user.
func (uc *implUseCase) ExchangeCode(ctx context.Context, code string) (auth.ExchangeCodeOutput, error) {
	if code == "" {
		return auth.ExchangeCodeOutput{}, auth.ErrEmptyCode
	}

	identity, tok, err := uc.exchanger.Exchange(ctx, code)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ExchangeCode Exchange: %v", err)
		if errors.Is(err, gauth.ErrEmptyCode) {
			return auth.ExchangeCodeOutput{}, auth.ErrEmptyCode
		}
		return auth.ExchangeCodeOutput{}, auth.ErrCodeExchangeFailed
	}

	account, err := uc.findOrCreateAccount(ctx, identity)
	if err != nil {
		return auth.ExchangeCodeOutput{}, err
	}

	if _, err := uc.repo.UpsertSocialToken(ctx, repo.UpsertSocialTokenOptions{
		AccountID:   account.ID,
		Token:       tok.AccessToken,
		TokenSecret: tok.RefreshToken,
		ExpiresAt:   tok.Expiry,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.ExchangeCode UpsertSocialToken: %v", err)
		return auth.ExchangeCodeOutput{}, err
	}

	return auth.ExchangeCodeOutput{UserID: account.UserID, Token: tok}, nil
}

// findOrCreateAccount returns the Google account for identity, creating the user and
// the account on first login.
func (uc *implUseCase) findOrCreateAccount(ctx context.Context, identity gauth.Identity) (model.SocialAccount, error) {
	account, err := uc.repo.GetOneSocialAccount(ctx, repo.GetOneSocialAccountOptions{
		Provider: model.ProviderGoogle,
		UID:      identity.UID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.findOrCreateAccount GetOneSocialAccount: %v", err)
		return model.SocialAccount{}, err
	}
	if account.ID != "" {
		return account, nil
	}

	account, err = uc.repo.CreateUserWithSocialAccount(ctx, repo.CreateUserWithSocialAccountOptions{
		Provider: model.ProviderGoogle,
		UID:      identity.UID,
		Email:    identity.Email,
	})
	if errors.Is(err, repo.ErrAlreadyExists) {
		// A concurrent first login linked the account after our lookup.
		account, err = uc.repo.GetOneSocialAccount(ctx, repo.GetOneSocialAccountOptions{
			Provider: model.ProviderGoogle,
			UID:      identity.UID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.findOrCreateAccount GetOneSocialAccount: %v", err)
			return model.SocialAccount{}, err
		}
		return account, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.findOrCreateAccount CreateUserWithSocialAccount: %v", err)
		return model.SocialAccount{}, err
	}

	uc.l.Infof(ctx, "uc.findOrCreateAccount: linked new google account for user %s", account.UserID)
	return account, nil
}

// GetStoredToken returns the user's Google token without touching Google.
func (uc *implUseCase) GetStoredToken(ctx context.Context, userID string) (model.SocialToken, error) {
	account, err := uc.repo.GetOneSocialAccount(ctx, repo.GetOneSocialAccountOptions{
		UserID:   userID,
		Provider: model.ProviderGoogle,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetStoredToken GetOneSocialAccount: %v", err)
		return model.SocialToken{}, err
	}
	if account.ID == "" {
		return model.SocialToken{}, auth.ErrNoSocialAccount
	}

	token, err := uc.repo.GetOneSocialToken(ctx, repo.GetOneSocialTokenOptions{AccountID: account.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetStoredToken GetOneSocialToken: %v", err)
		return model.SocialToken{}, err
	}
	if token.ID == "" {
		return model.SocialToken{}, auth.ErrNoSocialToken
	}

	return token, nil
}
