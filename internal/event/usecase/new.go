package usecase

import (
	"gcal-relay/internal/auth"
	"gcal-relay/internal/event"
	"gcal-relay/pkg/gcalendar"
	"gcal-relay/pkg/log"
)

type implUseCase struct {
	gateway gcalendar.Gateway
	social  auth.SocialLogin
	client  event.OAuthClient
	l       log.Logger
}

var _ event.UseCase = (*implUseCase)(nil)

// New creates a new event UseCase. social supplies the stored Google token of each caller.
func New(gateway gcalendar.Gateway, social auth.SocialLogin, client event.OAuthClient, l log.Logger) *implUseCase {
	return &implUseCase{
		gateway: gateway,
		social:  social,
		client:  client,
		l:       l,
	}
}
