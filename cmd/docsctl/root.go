package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/docsdk/pkg/config"
	"github.com/dmitrymomot/docsdk/pkg/docservice"
	"github.com/dmitrymomot/docsdk/pkg/logger"
	"github.com/dmitrymomot/docsdk/pkg/redis"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

type globalFlags struct {
	verbose   bool
	envFile   string
	useRedis  bool
	serverURL string
	jwtKey    string
}

// app holds what every command needs, built from flags and environment.
type app struct {
	manager  *settings.Manager
	snapshot settings.Snapshot
	client   *docservice.Client
	logger   *slog.Logger
	close    func()
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "docsctl",
		Short: "Work with a document server through the docs integration SDK",
		Long: `docsctl reads DOCS_INTEGRATION_SDK_* settings from the environment
(and an optional .env file), optionally merged with values persisted in Redis,
and calls the document server's healthcheck, conversion and command services.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.envFile != "" {
				return config.LoadEnv(flags.envFile)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "load environment from this file")
	root.PersistentFlags().BoolVar(&flags.useRedis, "redis", false, "merge settings stored in Redis (REDIS_URL)")
	root.PersistentFlags().StringVar(&flags.serverURL, "server-url", "", "override the document server URL")
	root.PersistentFlags().StringVar(&flags.jwtKey, "jwt-key", "", "override the JWT secret")

	root.AddCommand(
		newCheckCmd(flags),
		newConvertCmd(flags),
		newCommandCmd(flags),
		newVersionCmd(flags),
		newTokenCmd(flags),
		newSettingsCmd(flags),
		newDemoCmd(flags),
	)
	return root
}

func newApp(ctx context.Context, flags *globalFlags, stderr io.Writer) (*app, error) {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(level),
		logger.WithOutput(stderr),
	)

	env, err := settings.FromEnv()
	if err != nil {
		return nil, err
	}

	var store settings.Store = settings.NewMemoryStore(nil)
	closeFn := func() {}
	if flags.useRedis {
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return nil, err
		}
		rs, err := redis.NewSettingsStore(client, rc.SettingsKey)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		store, closeFn = rs, func() { _ = client.Close() }
	}

	mgr, err := settings.NewManager(store, env, settings.WithLogger(log))
	if err != nil {
		closeFn()
		return nil, err
	}
	snap, err := mgr.Snapshot(ctx)
	if err != nil {
		closeFn()
		return nil, err
	}
	if flags.serverURL != "" {
		snap.ServerURL = flags.serverURL
		snap.ServerInternalURL = ""
	}
	if flags.jwtKey != "" {
		snap.Key = flags.jwtKey
	}

	return &app{
		manager:  mgr,
		snapshot: snap,
		client:   docservice.New(snap, docservice.WithLogger(log)),
		logger:   log,
		close:    closeFn,
	}, nil
}

// withApp builds the app for a command and releases it afterwards.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(*app) error) error {
	a, err := newApp(cmd.Context(), flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readArgOrStdin returns arg, or stdin when arg is "-".
func readArgOrStdin(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	in := cmd.InOrStdin()
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
