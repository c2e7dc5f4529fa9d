package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/docsdk/pkg/healthcheck"
)

var errCheckFailed = errors.New("document server check failed")

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var secure bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the document server is reachable and supported",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(a *app) error {
				checker, err := healthcheck.New(a.client, healthcheck.WithLogger(a.logger))
				if err != nil {
					return err
				}
				res := checker.Check(cmd.Context(), secure)
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
				if !res.OK() {
					return errCheckFailed
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&secure, "secure", false, "treat the host as served over HTTPS (reject plain HTTP servers)")
	return cmd
}
