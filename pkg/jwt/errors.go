package jwt

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

var (
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrMissingClaims     = errors.New("jwt: missing claims")

	// ErrInvalidToken and the errors derived from it match errcode.ErrAuth.
	ErrInvalidToken            = fmt.Errorf("jwt: %w", errcode.ErrInvalidToken)
	ErrExpiredToken            = fmt.Errorf("%w: token is expired", ErrInvalidToken)
	ErrInvalidSignature        = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)
	ErrUnexpectedSigningMethod = fmt.Errorf("%w: unexpected signing method", ErrInvalidToken)
	ErrMissingToken            = fmt.Errorf("jwt: %w", errcode.ErrMissingToken)
)
