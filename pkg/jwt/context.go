package jwt

import "context"

type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey   = &contextKey{name: "jwt"}
	payloadContextKey = &contextKey{name: "jwt_payload"}
)

// SetToken stores the raw token in ctx.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// GetToken returns the raw token stored by the middleware.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// SetPayload stores verified claims in ctx.
func SetPayload(ctx context.Context, payload map[string]any) context.Context {
	return context.WithValue(ctx, payloadContextKey, payload)
}

// GetPayload returns the verified claims stored by the middleware.
func GetPayload(ctx context.Context) (map[string]any, bool) {
	payload, ok := ctx.Value(payloadContextKey).(map[string]any)
	return payload, ok
}
