package jwt

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

// ExtractFromHeader returns the token carried in a header value of the form
// "<prefix><token>". The prefix is compared case-sensitively and stripped;
// ok is false when the value is empty, lacks the prefix or has no token
// after it.
func ExtractFromHeader(value, prefix string) (token string, ok bool) {
	if value == "" || !strings.HasPrefix(value, prefix) {
		return "", false
	}
	token = strings.TrimSpace(value[len(prefix):])
	return token, token != ""
}

// ErrorHandlerFunc writes the response for a rejected request.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures Middleware.
type MiddlewareConfig struct {
	Codec        *Codec
	Header       string // header carrying the token, e.g. "Authorization"
	Prefix       string // e.g. "Bearer "
	ErrorHandler ErrorHandlerFunc
}

// Middleware verifies the token carried in the configured header and stores
// the token and its claims in the request context. When the codec is
// disabled requests pass through untouched.
func Middleware(cfg MiddlewareConfig) func(next http.Handler) http.Handler {
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultErrorHandler
	}
	if cfg.Header == "" {
		cfg.Header = "Authorization"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Codec.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := ExtractFromHeader(r.Header.Get(cfg.Header), cfg.Prefix)
			if !ok {
				cfg.ErrorHandler(w, r, ErrMissingToken)
				return
			}

			payload, err := cfg.Codec.Decode(token)
			if err != nil {
				cfg.ErrorHandler(w, r, err)
				return
			}

			ctx := SetToken(r.Context(), token)
			ctx = SetPayload(ctx, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, errcode.Message(err), http.StatusForbidden)
}
