package httpserver

import (
	"context"

	"gcal-relay/internal/auth"
	authHTTP "gcal-relay/internal/auth/delivery/http"
	authRepo "gcal-relay/internal/auth/repository/sqlite"
	authUC "gcal-relay/internal/auth/usecase"
	"gcal-relay/internal/middleware"
)

// newAuthUseCase builds the auth use case. It is shared by the login routes, the auth
// middleware and the event domain, which reads stored tokens through it.
func (srv *HTTPServer) newAuthUseCase() auth.UseCase {
	repo := authRepo.New(srv.db, srv.l)
	return authUC.New(repo, srv.exchanger, srv.l)
}

// setupAuthDomain registers /login/ and /logout/.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, uc auth.UseCase, mw middleware.Middleware) {
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}
