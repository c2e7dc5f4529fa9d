package callback

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

var (
	ErrNilHandler  = errors.New("callback: handler is required")
	ErrNilResolver = errors.New("callback: document resolver is required")

	ErrMissingKey    = fmt.Errorf("%w: callback has no document key", errcode.ErrProtocol)
	ErrMalformedBody = fmt.Errorf("%w: malformed callback body", errcode.ErrProtocol)
	ErrNoPayload     = fmt.Errorf("%w: token has no payload claim", errcode.ErrInvalidToken)
)
