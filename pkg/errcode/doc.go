// Package errcode holds the closed error-code tables shared with the document
// service and the error taxonomy used across the SDK.
//
// The three tables (ConvertResponse, CommandResponse and CommonError) map the
// integer codes returned by, or reported about, the document service to the
// exact human-readable messages the service ecosystem expects. Values and
// messages are part of the interop contract and must not be changed.
//
// # Taxonomy
//
// Every failure surfaced by the SDK wraps one of the sentinel kinds:
//
//   - ErrAuth – missing, invalid or expired token (ErrMissingToken, ErrInvalidToken).
//   - ErrConfig – missing endpoint, JWT header or prefix when required.
//   - ErrTransport – network failure, non-200 response or timeout.
//   - ErrProtocol – unknown callback status, malformed XML/JSON (ErrUnknownStatus).
//   - ErrNotFound – the resolved file path is empty.
//   - ErrDocService – the document service answered with an error code.
//
// Kinds are compared with errors.Is. Errors carrying a table code are
// *ServiceError values whose Error() is exactly the table message, so callers
// can put it into a response without further formatting.
//
// # Usage
//
//	if err := errcode.CommandError(resp.Error); err != nil {
//	    // err.Error() == "Document key is missing or no document with such key could be found"
//	}
//
//	errcode.ConvertError(-42).Error() // "ErrorCode = -42"
package errcode
