package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/docsdk/pkg/docservice"
)

func newConvertCmd(flags *globalFlags) *cobra.Command {
	var req docservice.ConvertRequest

	cmd := &cobra.Command{
		Use:   "convert <document-url>",
		Short: "Convert a document reachable by the document server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.DocumentURI = args[0]
			return withApp(cmd, flags, func(a *app) error {
				if req.Async {
					res, err := a.client.Convert(cmd.Context(), req)
					if err != nil {
						return err
					}
					if err := res.Err(); err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), res)
				}

				uri, err := a.client.ConvertedURI(cmd.Context(), req)
				if err != nil {
					return err
				}
				if uri == "" {
					return fmt.Errorf("conversion has not finished, retry with the same --key")
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), uri)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&req.ToExt, "to", "pdf", "target extension")
	cmd.Flags().StringVar(&req.FromExt, "from", "", "source extension (default: taken from the URL)")
	cmd.Flags().StringVar(&req.RevisionID, "key", "", "document revision key (default: the URL)")
	cmd.Flags().StringVar(&req.Region, "region", "", "locale used for dates and numbers")
	cmd.Flags().BoolVar(&req.Async, "async", false, "start the conversion and print its progress")
	return cmd
}
