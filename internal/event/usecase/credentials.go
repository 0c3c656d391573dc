package usecase

import (
	"context"
	"errors"

	"gcal-relay/internal/auth"
	"gcal-relay/internal/event"
	"gcal-relay/internal/model"
	"gcal-relay/pkg/gcalendar"
)

// resolveCredentials builds the gateway credentials of the caller from the stored token.
// Nothing is cached: every request reads the token again.
func (uc *implUseCase) resolveCredentials(ctx context.Context, sc model.Scope) (gcalendar.Credentials, error) {
	tok, err := uc.social.GetStoredToken(ctx, sc.UserID)
	switch {
	case errors.Is(err, auth.ErrNoSocialAccount):
		return gcalendar.Credentials{}, event.ErrNoGoogleAccount
	case errors.Is(err, auth.ErrNoSocialToken):
		return gcalendar.Credentials{}, event.ErrNoGoogleToken
	case err != nil:
		uc.l.Errorf(ctx, "uc.resolveCredentials GetStoredToken: %v", err)
		return gcalendar.Credentials{}, err
	}

	return gcalendar.Credentials{
		AccessToken:  tok.Token,
		RefreshToken: tok.TokenSecret,
		Expiry:       tok.ExpiresAt,
		TokenURI:     uc.client.TokenURI,
		ClientID:     uc.client.ClientID,
		ClientSecret: uc.client.ClientSecret,
	}, nil
}
