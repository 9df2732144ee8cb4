package shared

import "context"

type principalContextKey struct{}

// ContextWithPrincipal stores the principal in context.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the principal from context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	return p, ok
}

// PrincipalResolver yields the authenticated principal for the current call.
// Services take it as an injected collaborator so tests can substitute a stub.
type PrincipalResolver interface {
	Current(ctx context.Context) (Principal, error)
}

// ContextResolver resolves the principal the auth middleware attached to the
// request context.
type ContextResolver struct{}

// Current returns the request principal or ErrNoPrincipal. A guarded
// operation reaching this error means it was invoked outside an
// authenticated request, which is an internal fault rather than a deny.
func (ContextResolver) Current(ctx context.Context) (Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}
