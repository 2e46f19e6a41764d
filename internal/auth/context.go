// ABOUTME: Request context plumbing for the authenticated principal
// ABOUTME: Provides WithPrincipal/PrincipalFromContext for propagating identity

package auth

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/store"
)

// principalContextKey is the key type for storing the principal in context.Context.
type principalContextKey struct{}

// WithPrincipal returns a new context with the authenticated principal attached.
func WithPrincipal(ctx context.Context, p *store.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext retrieves the authenticated principal from the
// context, returning nil if not present.
func PrincipalFromContext(ctx context.Context) *store.Principal {
	val := ctx.Value(principalContextKey{})
	if val == nil {
		return nil
	}
	p, ok := val.(*store.Principal)
	if !ok {
		return nil
	}
	return p
}
