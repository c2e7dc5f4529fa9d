package callback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
	"github.com/dmitrymomot/docsdk/pkg/jwt"
	"github.com/dmitrymomot/docsdk/pkg/logger"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

// Service authenticates save callbacks and dispatches them to the host
// Handler. It keeps no state between callbacks.
type Service struct {
	settings settings.Provider
	codec    *jwt.Codec
	handler  Handler
	logger   *slog.Logger
	fileID   FileIDFunc
}

// NewService creates a Service. JWT configuration is read from p on every
// callback.
func NewService(p settings.Provider, h Handler, opts ...Option) (*Service, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	s := &Service{
		settings: p,
		codec:    jwt.NewCodec(p),
		handler:  h,
		logger:   slog.Default(),
		fileID:   PathValue("fileID"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("callback"))
	return s, nil
}

// Authenticate verifies cb and returns the trusted payload.
//
// With JWT disabled cb is returned unchanged. Otherwise the token embedded
// in the body wins; without one the token is taken from authHeader after
// stripping the configured prefix. The verified claims replace the body
// fields; a header token carries them under its "payload" claim.
func (s *Service) Authenticate(_ context.Context, cb Callback, authHeader string) (Callback, error) {
	if !s.codec.Enabled() {
		return cb, nil
	}

	token, fromHeader := cb.Token, false
	if token == "" {
		if t, ok := jwt.ExtractFromHeader(authHeader, s.settings.JWTPrefix()); ok {
			token, fromHeader = t, true
		}
	}
	if token == "" {
		return Callback{}, errcode.ErrMissingToken
	}

	claims, err := s.codec.Decode(token)
	if err != nil {
		if errors.Is(err, errcode.ErrInvalidToken) {
			return Callback{}, err
		}
		return Callback{}, fmt.Errorf("%w: %w", errcode.ErrInvalidToken, err)
	}

	if fromHeader {
		payload, ok := claims["payload"].(map[string]any)
		if !ok {
			return Callback{}, ErrNoPayload
		}
		claims = payload
	}

	return fromClaims(claims)
}

// Dispatch calls the handler method matching cb.Status. A corrupted force
// save goes to OnForceSave. Any other status fails with
// errcode.ErrUnknownStatus without calling the handler.
func (s *Service) Dispatch(ctx context.Context, cb Callback, fileID string) (int, error) {
	var handle func(context.Context, Callback, string) (int, error)
	switch cb.Status {
	case StatusEditing:
		handle = s.handler.OnEditing
	case StatusMustSave:
		handle = s.handler.OnMustSave
	case StatusCorrupted:
		handle = s.handler.OnCorrupted
	case StatusClosed:
		handle = s.handler.OnClosed
	case StatusForceSave, StatusCorruptedForceSave:
		handle = s.handler.OnForceSave
	default:
		return 0, fmt.Errorf("%w: %d", errcode.ErrUnknownStatus, cb.Status)
	}

	code, err := handle(ctx, cb, fileID)
	s.logger.DebugContext(ctx, "callback dispatched",
		logger.FileID(fileID),
		logger.DocumentKey(cb.Key),
		logger.Status(int(cb.Status)),
		slog.Int("result", code),
	)
	return code, err
}

// Process authenticates, validates and dispatches a parsed callback.
func (s *Service) Process(ctx context.Context, cb Callback, authHeader, fileID string) (int, error) {
	trusted, err := s.Authenticate(ctx, cb, authHeader)
	if err != nil {
		return 0, err
	}
	if err := trusted.Validate(); err != nil {
		return 0, err
	}
	return s.Dispatch(ctx, trusted, fileID)
}
