package healthcheck

import "errors"

var (
	ErrNilClient   = errors.New("healthcheck: document service client is required")
	ErrCheckFailed = errors.New("healthcheck: document server check failed")
)
