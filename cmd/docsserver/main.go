// Command docsserver is a reference host for the document editor: it serves
// editor configs, file downloads and save callbacks for files kept in local
// or S3 storage.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/docsdk/pkg/callback"
	"github.com/dmitrymomot/docsdk/pkg/config"
	"github.com/dmitrymomot/docsdk/pkg/docservice"
	"github.com/dmitrymomot/docsdk/pkg/document"
	"github.com/dmitrymomot/docsdk/pkg/editorconfig"
	"github.com/dmitrymomot/docsdk/pkg/file"
	"github.com/dmitrymomot/docsdk/pkg/healthcheck"
	"github.com/dmitrymomot/docsdk/pkg/httpserver"
	"github.com/dmitrymomot/docsdk/pkg/logger"
	"github.com/dmitrymomot/docsdk/pkg/redis"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "docsserver: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "docsserver"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	env, err := settings.FromEnv()
	if err != nil {
		return err
	}

	store, checks, closeStore, err := openSettingsStore(ctx, cfg.SettingsStore)
	if err != nil {
		return err
	}
	defer closeStore()

	mgr, err := settings.NewManager(store, env, settings.WithLogger(log))
	if err != nil {
		return err
	}
	if _, err := mgr.ExpireDemo(ctx); err != nil {
		return err
	}
	snap, err := mgr.Snapshot(ctx)
	if err != nil {
		return err
	}

	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg.FormatsPath)
	if err != nil {
		return err
	}

	client := docservice.New(snap,
		docservice.WithLogger(log),
		docservice.WithCircuitBreaker(docservice.NewCircuitBreaker(5, 2, 30*time.Second)),
	)
	checker, err := healthcheck.New(client, healthcheck.WithStorage(storage), healthcheck.WithLogger(log))
	if err != nil {
		return err
	}
	checks = append(checks, httpserver.Check{Name: "docserver", Fn: checker.Probe(false)})

	h := newHost(storage, client, cfg.PublicURL, log)
	callbacks, err := callback.NewService(snap, h,
		callback.WithLogger(log),
		callback.WithFileIDFunc(fileIDParam),
	)
	if err != nil {
		return err
	}
	resolver, err := document.NewStorageResolver(storage, h.Path)
	if err != nil {
		return err
	}
	download, err := callbacks.DownloadHandler(resolver)
	if err != nil {
		return err
	}
	builder, err := editorconfig.New(snap, catalog, h, editorconfig.WithLogger(log))
	if err != nil {
		return err
	}

	router := newRouter(routerDeps{
		host:      h,
		callbacks: callbacks,
		download:  download,
		builder:   builder,
		checker:   checker,
		checks:    checks,
		logger:    log,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

// openSettingsStore returns the configured store with its readiness checks
// and a release function.
func openSettingsStore(ctx context.Context, kind string) (settings.Store, []httpserver.Check, func(), error) {
	switch kind {
	case "", storeMemory:
		return settings.NewMemoryStore(nil), nil, func() {}, nil
	case storeRedis:
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return nil, nil, nil, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return nil, nil, nil, err
		}
		store, err := redis.NewSettingsStore(client, rc.SettingsKey)
		if err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}
		checks := []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}}
		return store, checks, func() { _ = client.Close() }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown settings store %q", kind)
	}
}

func openStorage(ctx context.Context, cfg appConfig) (file.Storage, error) {
	switch cfg.StorageDriver {
	case "", storageLocal:
		return file.NewLocalStorage(cfg.StorageDir, cfg.PublicURL+"/download/")
	case storageS3:
		return file.NewS3Storage(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func loadCatalog(path string) (document.Catalog, error) {
	if path == "" {
		return document.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open formats asset: %w", err)
	}
	defer func() { _ = f.Close() }()
	catalog, err := document.LoadCatalog(f)
	if err != nil {
		return nil, err
	}
	slog.Debug("formats catalog loaded", slog.Int("formats", len(catalog)))
	return catalog, nil
}
