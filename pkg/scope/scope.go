// Package scope carries the authenticated caller through a request context.
package scope

import (
	"context"

	"gcal-relay/internal/model"
)

type scopeKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope set by SetScopeToContext.
// ok is false for unauthenticated requests.
func GetScopeFromContext(ctx context.Context) (sc model.Scope, ok bool) {
	sc, ok = ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok && sc.UserID != ""
}
