package model

import (
	"context"

	"golang.org/x/oauth2"
)

// Scope identifies the authenticated caller of a request.
type Scope struct {
	SessionID   string
	Email       string
	Domain      string
	Name        string
	TokenSource oauth2.TokenSource // Google credentials of the caller
}

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}
