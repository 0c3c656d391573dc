package httpserver

import (
	"context"

	"gcal-relay/internal/auth"
	eventHTTP "gcal-relay/internal/event/delivery/http"
	eventUC "gcal-relay/internal/event/usecase"
	"gcal-relay/internal/middleware"
)

// setupEventDomain registers the /events/ routes.
func (srv *HTTPServer) setupEventDomain(ctx context.Context, social auth.SocialLogin, mw middleware.Middleware) {
	uc := eventUC.New(srv.gateway, social, srv.oauthClient, srv.l)
	h := eventHTTP.New(srv.l, uc)
	eventHTTP.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Event domain registered")
}
