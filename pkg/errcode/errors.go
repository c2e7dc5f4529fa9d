package errcode

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by the SDK wraps exactly one of them.
var (
	ErrAuth       = errors.New("access denied")
	ErrConfig     = errors.New("configuration error")
	ErrTransport  = errors.New("transport error")
	ErrProtocol   = errors.New("protocol error")
	ErrNotFound   = errors.New("not found")
	ErrDocService = errors.New(CommonDocserviceError.Message())
)

// Refined kinds used by the callback flow.
var (
	ErrMissingToken  = fmt.Errorf("%w: %s", ErrAuth, CommonCallbackNoAuthToken.Message())
	ErrInvalidToken  = fmt.Errorf("%w: invalid token", ErrAuth)
	ErrUnknownStatus = fmt.Errorf("%w: %s", ErrProtocol, CommonCallbackNoStatus.Message())
)

// ServiceError is an error bound to a code from one of the tables.
// Error returns the bare table message so it can be surfaced as-is.
type ServiceError struct {
	Kind    error
	Code    int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *ServiceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ConvertError maps a conversion-service code to an ErrDocService error.
func ConvertError(code int) error {
	return &ServiceError{
		Kind:    ErrDocService,
		Code:    code,
		Message: ConvertResponse(code).Message(),
	}
}

// CommandError maps a command-service code to an ErrDocService error.
// CommandNo yields nil.
func CommandError(code int) error {
	if CommandResponse(code) == CommandNo {
		return nil
	}
	return &ServiceError{
		Kind:    ErrDocService,
		Code:    code,
		Message: CommandResponse(code).Message(),
	}
}

// New creates an error of the given kind carrying a CommonError message.
func New(kind error, c CommonError) error {
	return &ServiceError{Kind: kind, Code: int(c), Message: c.Message()}
}

// Wrap is New with an underlying cause attached.
func Wrap(kind error, c CommonError, cause error) error {
	return &ServiceError{Kind: kind, Code: int(c), Message: c.Message(), Err: cause}
}

// Config is shorthand for New(ErrConfig, c).
func Config(c CommonError) error {
	return New(ErrConfig, c)
}

// Message returns the message to surface to a caller for err: the table
// message for ServiceError values, the error text otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
