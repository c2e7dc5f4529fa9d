package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsdk/pkg/redis"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

func setup(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestConnect(t *testing.T) {
	t.Parallel()

	mr, _ := setup(t)
	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://" + mr.Addr() + "/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	require.NoError(t, err)
	_ = client.Close()
}

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{ConnectTimeout: time.Second})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "://bad", ConnectTimeout: time.Second})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err = redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://" + addr,
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestSettingsStore(t *testing.T) {
	t.Parallel()

	mr, client := setup(t)
	store, err := redis.NewSettingsStore(client, "")
	require.NoError(t, err)
	ctx := context.Background()

	val, err := store.Get(ctx, settings.KeyJWTKey)
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, store.Set(ctx, settings.KeyJWTKey, "secret"))
	require.NoError(t, store.Set(ctx, settings.KeyDocumentServerURL, "https://ds.example.com/"))
	assert.Equal(t, "secret", mr.HGet(redis.DefaultSettingsKey, settings.KeyJWTKey))

	val, err = store.Get(ctx, settings.KeyJWTKey)
	require.NoError(t, err)
	assert.Equal(t, "secret", val)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, store.Set(ctx, settings.KeyJWTKey, ""))
	val, err = store.Get(ctx, settings.KeyJWTKey)
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, store.Reset(ctx))
	assert.False(t, mr.Exists(redis.DefaultSettingsKey))
}

func TestSettingsStore_BacksManager(t *testing.T) {
	t.Parallel()

	_, client := setup(t)
	store, err := redis.NewSettingsStore(client, "test:settings")
	require.NoError(t, err)
	ctx := context.Background()

	mgr, err := settings.NewManager(store, settings.EnvConfig{})
	require.NoError(t, err)
	require.NoError(t, mgr.Set(ctx, settings.KeyDocumentServerURL, "https://ds.example.com"))

	snap, err := mgr.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://ds.example.com", snap.DocumentServerURL())
}

func TestSettingsStore_Unavailable(t *testing.T) {
	t.Parallel()

	mr, client := setup(t)
	store, err := redis.NewSettingsStore(client, "k")
	require.NoError(t, err)
	mr.Close()

	_, err = store.Get(context.Background(), "x")
	assert.ErrorIs(t, err, redis.ErrStoreFailed)
	assert.ErrorIs(t, store.Set(context.Background(), "x", "y"), redis.ErrStoreFailed)
}

func TestNewSettingsStore_NilClient(t *testing.T) {
	t.Parallel()

	_, err := redis.NewSettingsStore(nil, "k")
	assert.ErrorIs(t, err, redis.ErrNilClient)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	mr, client := setup(t)
	check := redis.Healthcheck(client)
	require.NoError(t, check(context.Background()))

	mr.Close()
	assert.ErrorIs(t, check(context.Background()), redis.ErrHealthcheckFailed)
}
