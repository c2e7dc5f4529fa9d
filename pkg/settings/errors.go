package settings

import "errors"

var (
	ErrNilStore      = errors.New("settings: store is required")
	ErrDemoExpired   = errors.New("settings: demo trial period has expired")
	ErrInvalidLeeway = errors.New("settings: invalid jwt leeway")
)
