package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Josepavese/folio/internal/web"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the portfolio as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(false)
			if err != nil {
				return err
			}
			defer e.logger.Sync()
			p, err := e.profile()
			if err != nil {
				return err
			}
			written, err := web.Export(out, p, nil)
			if err != nil {
				return err
			}
			for _, path := range written {
				e.logger.Debug("exported page", zap.String("path", path))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "site", "output directory")
	return cmd
}
