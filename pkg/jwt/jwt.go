package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Algorithm is the only signing algorithm produced and accepted.
const Algorithm = "HS256"

// KeySource supplies the shared secret and the clock-skew leeway.
// settings.Provider satisfies it.
type KeySource interface {
	JWTKey() string
	JWTLeeway() time.Duration
}

// Codec signs and verifies payloads with the shared secret. The secret is
// read from the KeySource on every call, so a Codec stays valid when the
// settings behind it change.
type Codec struct {
	keys KeySource
}

// NewCodec creates a Codec over keys.
func NewCodec(keys KeySource) *Codec {
	return &Codec{keys: keys}
}

// Enabled reports whether a non-empty secret is configured.
func (c *Codec) Enabled() bool {
	return c != nil && c.keys != nil && c.keys.JWTKey() != ""
}

// Encode signs payload as the token's claim set. payload may be a map or any
// JSON-serialisable struct. No issued-at claim is added, so equal payloads
// signed with the same secret produce equal tokens.
func (c *Codec) Encode(payload any) (string, error) {
	if !c.Enabled() {
		return "", ErrMissingSigningKey
	}
	if payload == nil {
		return "", ErrMissingClaims
	}

	claims, err := toMapClaims(payload)
	if err != nil {
		return "", err
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.keys.JWTKey()))
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies token and returns its claims. exp and nbf claims are
// honoured with the configured leeway. Every failure wraps ErrInvalidToken.
func (c *Codec) Decode(token string) (map[string]any, error) {
	if !c.Enabled() {
		return nil, ErrMissingSigningKey
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	options := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{Algorithm}),
	}
	if leeway := c.keys.JWTLeeway(); leeway > 0 {
		options = append(options, jwtlib.WithLeeway(leeway))
	}

	claims := jwtlib.MapClaims{}
	parsed, err := jwtlib.NewParser(options...).ParseWithClaims(token, claims, func(t *jwtlib.Token) (any, error) {
		if t.Method.Alg() != Algorithm {
			return nil, ErrUnexpectedSigningMethod
		}
		return []byte(c.keys.JWTKey()), nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return map[string]any(claims), nil
}

// DecodeInto verifies token and unmarshals its claims into dst.
func (c *Codec) DecodeInto(token string, dst any) error {
	claims, err := c.Decode(token)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return nil
}

func toMapClaims(payload any) (jwtlib.MapClaims, error) {
	switch p := payload.(type) {
	case map[string]any:
		return jwtlib.MapClaims(p), nil
	case jwtlib.MapClaims:
		return p, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("jwt: marshal claims: %w", err)
	}
	claims := jwtlib.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("jwt: claims must be a JSON object: %w", err)
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return ErrUnexpectedSigningMethod
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	default:
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
}
