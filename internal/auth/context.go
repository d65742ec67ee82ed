package auth

import "context"

type ctxKey string

const identityContextKey ctxKey = "megasena.auth.identity"

// WithIdentity returns a copy of ctx carrying the verified caller.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext returns the caller stored by WithIdentity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}
