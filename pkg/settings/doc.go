// Package settings resolves the document-server endpoints and JWT
// configuration used by the SDK.
//
// The core packages depend only on the read-only Provider interface. Snapshot
// is its concrete implementation: a value type holding every resolved
// setting, safe to share between goroutines.
//
// Manager produces snapshots. For each setting it prefers, in order:
//
//  1. the demo server value, while the demo trial is available;
//  2. the value persisted in a Store (MemoryStore, or the Redis-backed store
//     from pkg/redis);
//  3. the DOCS_INTEGRATION_SDK_* environment value (EnvConfig, via FromEnv).
//
// # Demo trial
//
// The trial is modelled as explicit transitions rather than side effects of
// reads: EnableDemo starts it, DemoStatus is a pure read, ExpireDemo turns the
// demo flag off once DemoTrialPeriod has elapsed, and DisableDemo switches
// back manually. An expired trial is never used by Snapshot, even before
// ExpireDemo runs.
//
// # Usage
//
//	env, err := settings.FromEnv()
//	mgr, err := settings.NewManager(settings.NewMemoryStore(nil), env)
//	snap, err := mgr.Snapshot(ctx)
//	snap.ConvertServiceURL(true) // e.g. "http://docs.internal/ConvertService.ashx"
package settings
