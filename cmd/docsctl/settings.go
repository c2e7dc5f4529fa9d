package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/docsdk/pkg/settings"
)

var errNeedsRedis = errors.New("settings are not persisted without --redis")

// settingKeys lists the keys accepted by "settings set".
var settingKeys = []string{
	settings.KeyDocumentServerURL,
	settings.KeyDocumentServerInternalURL,
	settings.KeyJWTKey,
	settings.KeyJWTHeader,
	settings.KeyJWTPrefix,
	settings.KeyJWTLeeway,
	settings.KeyIgnoreSSL,
}

// resolvedSettings is the printable form of a snapshot. The JWT secret is
// only reported as set or not.
type resolvedSettings struct {
	DocumentServerURL         string `json:"documentServerUrl"`
	DocumentServerInternalURL string `json:"documentServerInternalUrl"`
	HealthcheckURL            string `json:"healthcheckUrl"`
	ConvertServiceURL         string `json:"convertServiceUrl"`
	CommandServiceURL         string `json:"commandServiceUrl"`
	JWTEnabled                bool   `json:"jwtEnabled"`
	JWTHeader                 string `json:"jwtHeader"`
	JWTPrefix                 string `json:"jwtPrefix"`
	JWTLeeway                 string `json:"jwtLeeway"`
	IgnoreSSL                 bool   `json:"ignoreSSL"`
	Demo                      bool   `json:"demo"`
}

func newSettingsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change SDK settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(a *app) error {
				s := a.snapshot
				return printJSON(cmd.OutOrStdout(), resolvedSettings{
					DocumentServerURL:         s.DocumentServerURL(),
					DocumentServerInternalURL: s.DocumentServerInternalURL(),
					HealthcheckURL:            s.HealthcheckURL(true),
					ConvertServiceURL:         s.ConvertServiceURL(true),
					CommandServiceURL:         s.CommandServiceURL(true),
					JWTEnabled:                s.JWTKey() != "",
					JWTHeader:                 s.JWTHeader(),
					JWTPrefix:                 s.JWTPrefix(),
					JWTLeeway:                 s.JWTLeeway().String(),
					IgnoreSSL:                 s.IgnoreSSL(),
					Demo:                      s.UseDemo(),
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Persist a setting in Redis (an empty value removes it)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: settingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !flags.useRedis {
				return errNeedsRedis
			}
			if !slices.Contains(settingKeys, args[0]) {
				return fmt.Errorf("unknown setting %q", args[0])
			}
			return withApp(cmd, flags, func(a *app) error {
				return a.manager.Set(cmd.Context(), args[0], args[1])
			})
		},
	})
	return cmd
}

func newDemoCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Manage the demo server trial",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the trial state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(a *app) error {
				state, err := a.manager.DemoStatus(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), state)
				return err
			})
		},
	})

	transitions := []struct {
		use, short string
		run        func(*cobra.Command, *settings.Manager) error
	}{
		{"enable", "Switch to the demo server and start the trial", func(cmd *cobra.Command, m *settings.Manager) error {
			return m.EnableDemo(cmd.Context())
		}},
		{"disable", "Switch back to the configured server", func(cmd *cobra.Command, m *settings.Manager) error {
			return m.DisableDemo(cmd.Context())
		}},
		{"expire", "Turn demo mode off if the trial has elapsed", func(cmd *cobra.Command, m *settings.Manager) error {
			changed, err := m.ExpireDemo(cmd.Context())
			if err == nil && changed {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "demo trial expired")
			}
			return err
		}},
	}
	for _, t := range transitions {
		cmd.AddCommand(&cobra.Command{
			Use:   t.use,
			Short: t.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if !flags.useRedis {
					return errNeedsRedis
				}
				return withApp(cmd, flags, func(a *app) error {
					return t.run(cmd, a.manager)
				})
			},
		})
	}
	return cmd
}
