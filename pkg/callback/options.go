package callback

import (
	"log/slog"
	"net/http"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFileIDFunc sets how HTTP handlers read the file id from a request.
func WithFileIDFunc(fn FileIDFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.fileID = fn
		}
	}
}

// FileIDFunc extracts the host file id from a request.
type FileIDFunc func(r *http.Request) string

// PathValue reads the file id from a net/http route wildcard.
func PathValue(name string) FileIDFunc {
	return func(r *http.Request) string { return r.PathValue(name) }
}

// QueryValue reads the file id from a query parameter.
func QueryValue(name string) FileIDFunc {
	return func(r *http.Request) string { return r.URL.Query().Get(name) }
}
