package docservice

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

// Transport failures. All of them match errcode.ErrTransport.
var (
	ErrRequestFailed    = fmt.Errorf("%w: request failed", errcode.ErrTransport)
	ErrTimeout          = fmt.Errorf("%w: request timeout", errcode.ErrTransport)
	ErrUnexpectedStatus = fmt.Errorf("%w: unexpected status code", errcode.ErrTransport)
	ErrCircuitOpen      = fmt.Errorf("%w: document service circuit breaker is open", errcode.ErrTransport)
)

var (
	ErrInvalidURL     = fmt.Errorf("%w: invalid URL", errcode.ErrConfig)
	ErrInvalidPayload = errors.New("docservice: payload must encode to a JSON object")
)

// IsCircuitOpen reports whether err was caused by an open circuit breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}
