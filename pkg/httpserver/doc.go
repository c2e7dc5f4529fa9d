// Package httpserver runs the host-side HTTP endpoints (editor callbacks,
// file downloads, health probes) with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called. Start and stop hooks run around the server lifetime.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	mux.Handle("GET /healthz", httpserver.LivenessHandler())
//	mux.Handle("GET /readyz", httpserver.ReadinessHandler(log, 0,
//		httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//		httpserver.Check{Name: "docserver", Fn: checker.Probe(false)},
//	))
//	err := srv.Run(ctx, mux)
//
// Errors are wrapped with ErrStart and ErrShutdown.
package httpserver
