// Package jwt is the SDK's token codec: it signs outbound payloads and
// verifies inbound ones with the shared document-server secret.
//
// Codec always uses HS256 (HMAC-SHA256) through github.com/golang-jwt/jwt/v5
// and rejects tokens signed with any other algorithm. It reads the secret and
// the clock-skew leeway from a KeySource (settings.Provider satisfies it);
// Enabled reports whether a secret is configured at all.
//
// Encode produces deterministic tokens: no issued-at claim is added. Decode
// honours exp/nbf claims with the configured leeway and never panics; every
// failure wraps ErrInvalidToken, which in turn matches errcode.ErrAuth.
//
// # Usage
//
//	codec := jwt.NewCodec(snapshot)
//	if codec.Enabled() {
//	    token, err := codec.Encode(map[string]any{"payload": body})
//	    ...
//	    claims, err := codec.Decode(token)
//	}
//
// Middleware protects handlers that receive the token in a header
// ("<prefix><token>"), storing the verified claims in the request context
// (GetPayload). ExtractFromHeader exposes the same prefix handling to
// callers that authenticate by hand.
package jwt
