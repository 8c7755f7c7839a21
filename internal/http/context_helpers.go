package httpx

import (
	"context"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
)

// authStateKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type authStateKey struct{}

// authState is the per-request resolution result. It exists even for
// anonymous requests, so handlers can tell "resolved to anonymous" apart
// from "the resolver middleware never ran".
type authState struct {
	user *model.User
}

// withAuthState returns a child context carrying the resolution result.
func withAuthState(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, authStateKey{}, &authState{user: user})
}

// CurrentUser returns the resolved user for this request and whether the
// request is authenticated. It panics when the session resolver
// middleware did not run: a route consulting auth outside the resolver
// chain is a wiring bug, not an anonymous visitor.
func CurrentUser(ctx context.Context) (*model.User, bool) {
	state, ok := ctx.Value(authStateKey{}).(*authState)
	if !ok {
		panic("httpx: CurrentUser called on a request outside the session resolver middleware")
	}
	return state.user, state.user != nil
}

// IsAuthenticated reports whether the request resolved to a logged-in user.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := CurrentUser(ctx)
	return ok
}
