// Package redis persists SDK settings in Redis.
//
// Connect opens a client with retries, SettingsStore implements the
// settings.Store interface on top of a single hash and Healthcheck exposes a
// readiness probe for the HTTP server.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store, _ := redis.NewSettingsStore(client, cfg.SettingsKey)
//	mgr, err := settings.NewManager(store, env)
//
// Errors are sentinel values joined with the go-redis cause via errors.Join.
package redis
