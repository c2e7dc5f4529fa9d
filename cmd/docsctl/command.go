package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/docsdk/pkg/docservice"
)

func newCommandCmd(flags *globalFlags) *cobra.Command {
	var (
		key   string
		extra string
	)

	cmd := &cobra.Command{
		Use:       "command <method>",
		Short:     "Call the command service (forcesave, drop, info, meta, version)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{docservice.CommandForceSave, docservice.CommandDrop, docservice.CommandInfo, docservice.CommandMeta, docservice.CommandVersion},
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{}
			if extra != "" {
				if err := json.Unmarshal([]byte(extra), &params); err != nil {
					return fmt.Errorf("--data must be a JSON object: %w", err)
				}
			}
			if key != "" {
				params["key"] = key
			}

			return withApp(cmd, flags, func(a *app) error {
				res, err := a.client.Command(cmd.Context(), args[0], params)
				if res != nil {
					if perr := printJSON(cmd.OutOrStdout(), res); perr != nil {
						return perr
					}
				}
				return err
			})
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "document key")
	cmd.Flags().StringVar(&extra, "data", "", "additional JSON fields")
	return cmd
}

func newVersionCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the document server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(a *app) error {
				v, err := a.client.Version(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
				return err
			})
		},
	}
}
