package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// DocumentKey records the document-service document key.
func DocumentKey(key string) slog.Attr {
	return slog.String("document_key", key)
}

// FileID records the host application's file identifier.
func FileID(id string) slog.Attr {
	return slog.String("file_id", id)
}

// Status records a callback tracker status.
func Status(status int) slog.Attr {
	return slog.Int("status", status)
}

// Endpoint records the URL of an outbound request. Query strings are kept;
// callers must not put secrets in URLs.
func Endpoint(url string) slog.Attr {
	return slog.String("endpoint", url)
}

// HTTPStatus records an HTTP response status code.
func HTTPStatus(code int) slog.Attr {
	return slog.Int("http_status", code)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Step records a reachability check step.
func Step(name string) slog.Attr {
	return slog.String("step", name)
}

// Version records a document-server version string.
func Version(v string) slog.Attr {
	return slog.String("version", v)
}
