package callback_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsdk/pkg/callback"
	"github.com/dmitrymomot/docsdk/pkg/errcode"
	"github.com/dmitrymomot/docsdk/pkg/jwt"
	"github.com/dmitrymomot/docsdk/pkg/logger"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

type call struct {
	method string
	cb     callback.Callback
	fileID string
}

// recorder records every handler invocation.
type recorder struct {
	calls []call
	code  int
	err   error
}

func (r *recorder) record(method string, cb callback.Callback, fileID string) (int, error) {
	r.calls = append(r.calls, call{method: method, cb: cb, fileID: fileID})
	return r.code, r.err
}

func (r *recorder) OnEditing(_ context.Context, cb callback.Callback, id string) (int, error) {
	return r.record("editing", cb, id)
}

func (r *recorder) OnMustSave(_ context.Context, cb callback.Callback, id string) (int, error) {
	return r.record("must_save", cb, id)
}

func (r *recorder) OnCorrupted(_ context.Context, cb callback.Callback, id string) (int, error) {
	return r.record("corrupted", cb, id)
}

func (r *recorder) OnClosed(_ context.Context, cb callback.Callback, id string) (int, error) {
	return r.record("closed", cb, id)
}

func (r *recorder) OnForceSave(_ context.Context, cb callback.Callback, id string) (int, error) {
	return r.record("force_save", cb, id)
}

func jwtSettings(secret string) settings.Snapshot {
	return settings.Snapshot{Key: secret, Header: "Authorization", Prefix: "Bearer "}
}

func newService(t *testing.T, p settings.Provider, h callback.Handler) *callback.Service {
	t.Helper()
	svc, err := callback.NewService(p, h, callback.WithLogger(logger.Discard()))
	require.NoError(t, err)
	return svc
}

func TestNewService_NilHandler(t *testing.T) {
	t.Parallel()

	_, err := callback.NewService(settings.Snapshot{}, nil)
	assert.ErrorIs(t, err, callback.ErrNilHandler)
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status callback.TrackerStatus
		method string
	}{
		{callback.StatusEditing, "editing"},
		{callback.StatusMustSave, "must_save"},
		{callback.StatusCorrupted, "corrupted"},
		{callback.StatusClosed, "closed"},
		{callback.StatusForceSave, "force_save"},
		{callback.StatusCorruptedForceSave, "force_save"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			svc := newService(t, settings.Snapshot{}, rec)

			cb := callback.Callback{Key: "abc", Status: tt.status}
			code, err := svc.Dispatch(context.Background(), cb, "file-1")
			require.NoError(t, err)
			assert.Zero(t, code)

			require.Len(t, rec.calls, 1)
			assert.Equal(t, tt.method, rec.calls[0].method)
			assert.Equal(t, cb, rec.calls[0].cb)
			assert.Equal(t, "file-1", rec.calls[0].fileID)
		})
	}
}

func TestDispatch_UnknownStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []callback.TrackerStatus{0, 5, 8, 99, -1} {
		rec := &recorder{}
		svc := newService(t, settings.Snapshot{}, rec)

		_, err := svc.Dispatch(context.Background(), callback.Callback{Key: "abc", Status: status}, "f")
		assert.ErrorIs(t, err, errcode.ErrUnknownStatus, "status %d", status)
		assert.ErrorIs(t, err, errcode.ErrProtocol)
		assert.Empty(t, rec.calls, "no handler may run for status %d", status)
		assert.False(t, status.Known())
	}
}

func TestDispatch_HandlerResult(t *testing.T) {
	t.Parallel()

	boom := errors.New("storage down")
	rec := &recorder{code: 1, err: boom}
	svc := newService(t, settings.Snapshot{}, rec)

	code, err := svc.Dispatch(context.Background(), callback.Callback{Key: "k", Status: callback.StatusMustSave}, "f")
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, boom)
}

func TestAuthenticate_Disabled(t *testing.T) {
	t.Parallel()

	svc := newService(t, jwtSettings(""), &recorder{})
	in := callback.Callback{Key: "abc", Status: callback.StatusMustSave, URL: "https://x/doc"}

	out, err := svc.Authenticate(context.Background(), in, "")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = svc.Authenticate(context.Background(), in, "Bearer garbage")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAuthenticate_Enabled(t *testing.T) {
	t.Parallel()

	p := jwtSettings("secret")
	codec := jwt.NewCodec(p)
	svc := newService(t, p, &recorder{})
	ctx := context.Background()

	signed := map[string]any{
		"key":    "abc",
		"status": 2,
		"url":    "https://x/signed",
		"users":  []string{"u1"},
	}

	t.Run("body token wins over body fields", func(t *testing.T) {
		t.Parallel()
		token, err := codec.Encode(signed)
		require.NoError(t, err)

		in := callback.Callback{Key: "abc", Status: callback.StatusMustSave, URL: "https://evil/doc", Token: token}
		out, err := svc.Authenticate(ctx, in, "")
		require.NoError(t, err)
		assert.Equal(t, "https://x/signed", out.URL)
		assert.Equal(t, callback.StatusMustSave, out.Status)
		assert.Equal(t, []string{"u1"}, out.Users)
	})

	t.Run("body token preferred over header", func(t *testing.T) {
		t.Parallel()
		bodyToken, err := codec.Encode(signed)
		require.NoError(t, err)
		headerToken, err := codec.Encode(map[string]any{"payload": map[string]any{"key": "other", "status": 4}})
		require.NoError(t, err)

		out, err := svc.Authenticate(ctx, callback.Callback{Token: bodyToken}, "Bearer "+headerToken)
		require.NoError(t, err)
		assert.Equal(t, "abc", out.Key)
	})

	t.Run("header token with prefix stripped", func(t *testing.T) {
		t.Parallel()
		token, err := codec.Encode(map[string]any{"payload": signed})
		require.NoError(t, err)

		out, err := svc.Authenticate(ctx, callback.Callback{Key: "abc", Status: 2}, "Bearer "+token)
		require.NoError(t, err)
		assert.Equal(t, "abc", out.Key)
		assert.Equal(t, "https://x/signed", out.URL)
	})

	t.Run("header without prefix is ignored", func(t *testing.T) {
		t.Parallel()
		token, err := codec.Encode(map[string]any{"payload": signed})
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, callback.Callback{Key: "abc", Status: 2}, token)
		assert.ErrorIs(t, err, errcode.ErrMissingToken)
	})

	t.Run("header token without payload claim", func(t *testing.T) {
		t.Parallel()
		token, err := codec.Encode(signed)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, callback.Callback{}, "Bearer "+token)
		assert.ErrorIs(t, err, callback.ErrNoPayload)
		assert.ErrorIs(t, err, errcode.ErrInvalidToken)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Authenticate(ctx, callback.Callback{Key: "abc", Status: 2}, "")
		assert.ErrorIs(t, err, errcode.ErrMissingToken)
		assert.ErrorIs(t, err, errcode.ErrAuth)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		forged, err := jwt.NewCodec(jwtSettings("wrong")).Encode(signed)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, callback.Callback{Token: forged}, "")
		assert.ErrorIs(t, err, errcode.ErrInvalidToken)
		assert.ErrorIs(t, err, errcode.ErrAuth)
	})
}

func TestProcess(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	svc := newService(t, jwtSettings(""), rec)

	_, err := svc.Process(context.Background(), callback.Callback{Status: callback.StatusClosed}, "", "f")
	assert.ErrorIs(t, err, callback.ErrMissingKey)
	assert.Empty(t, rec.calls)

	code, err := svc.Process(context.Background(), callback.Callback{Key: "k", Status: callback.StatusClosed}, "", "f")
	require.NoError(t, err)
	assert.Zero(t, code)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "closed", rec.calls[0].method)
}

func TestFuncs(t *testing.T) {
	t.Parallel()

	called := false
	h := callback.Funcs{
		MustSave: func(_ context.Context, cb callback.Callback, fileID string) (int, error) {
			called = true
			assert.Equal(t, "abc", cb.Key)
			return 0, nil
		},
	}
	svc := newService(t, settings.Snapshot{}, h)

	code, err := svc.Dispatch(context.Background(), callback.Callback{Key: "abc", Status: callback.StatusEditing}, "f")
	require.NoError(t, err)
	assert.Zero(t, code)
	assert.False(t, called)

	_, err = svc.Dispatch(context.Background(), callback.Callback{Key: "abc", Status: callback.StatusMustSave}, "f")
	require.NoError(t, err)
	assert.True(t, called)
}
