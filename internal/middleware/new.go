package middleware

import (
	"gcal-relay/internal/auth"
	"gcal-relay/pkg/log"
)

type Middleware struct {
	l             log.Logger
	authUC        auth.UseCase
	allowedOrigin string
}

// New creates the middleware set. allowedOrigin is the frontend origin CORS admits.
func New(l log.Logger, authUC auth.UseCase, allowedOrigin string) Middleware {
	return Middleware{
		l:             l,
		authUC:        authUC,
		allowedOrigin: allowedOrigin,
	}
}
