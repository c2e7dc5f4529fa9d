package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/docsdk/pkg/jwt"
)

var errNoSecret = errors.New("no JWT secret configured (set DOCS_INTEGRATION_SDK_JWT_KEY or --jwt-key)")

func newTokenCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign or verify tokens with the configured secret",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode <json|->",
		Short: "Sign a JSON object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readArgOrStdin(cmd, args[0])
			if err != nil {
				return err
			}
			var payload map[string]any
			if err := json.Unmarshal([]byte(raw), &payload); err != nil {
				return fmt.Errorf("payload must be a JSON object: %w", err)
			}

			return withApp(cmd, flags, func(a *app) error {
				codec := jwt.NewCodec(a.snapshot)
				if !codec.Enabled() {
					return errNoSecret
				}
				token, err := codec.Encode(payload)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <token|->",
		Short: "Verify a token and print its claims",
		Long:  "Verify a token and print its claims. A value carrying the configured header prefix is accepted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readArgOrStdin(cmd, args[0])
			if err != nil {
				return err
			}

			return withApp(cmd, flags, func(a *app) error {
				codec := jwt.NewCodec(a.snapshot)
				if !codec.Enabled() {
					return errNoSecret
				}
				token := strings.TrimSpace(raw)
				if t, ok := jwt.ExtractFromHeader(token, a.snapshot.JWTPrefix()); ok {
					token = t
				}
				claims, err := codec.Decode(token)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), claims)
			})
		},
	})
	return cmd
}
