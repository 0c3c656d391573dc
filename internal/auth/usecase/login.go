package usecase

import (
	"context"

	"gcal-relay/internal/auth"
	"gcal-relay/internal/model"
)

// Login exchanges the code and returns the user's API key, reusing an existing one.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	out, err := uc.ExchangeCode(ctx, input.Code)
	if err != nil {
		return auth.LoginOutput{}, err
	}

	key, err := uc.repo.GetOrCreateAuthToken(ctx, out.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOrCreateAuthToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{Key: key.Key}, nil
}

func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.DeleteAuthToken(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.Logout DeleteAuthToken: %v", err)
		return err
	}
	return nil
}

// Authenticate returns ErrInvalidKey for unknown or empty keys.
func (uc *implUseCase) Authenticate(ctx context.Context, key string) (model.Scope, error) {
	if key == "" {
		return model.Scope{}, auth.ErrInvalidKey
	}

	t, err := uc.repo.GetOneAuthToken(ctx, key)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Authenticate GetOneAuthToken: %v", err)
		return model.Scope{}, err
	}
	if t.Key == "" {
		return model.Scope{}, auth.ErrInvalidKey
	}

	return model.Scope{UserID: t.UserID}, nil
}
