package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the persisted theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTheme(cmd, opts)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the mode the next session starts in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTheme(cmd, opts)
		},
	}, &cobra.Command{
		Use:   "toggle",
		Short: "Flip the persisted mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(false)
			if err != nil {
				return err
			}
			defer e.logger.Sync()
			store := e.themeStore()
			store.Initialize()
			fmt.Fprintln(cmd.OutOrStdout(), store.Toggle())
			return nil
		},
	})
	return cmd
}

func showTheme(cmd *cobra.Command, opts *rootOptions) error {
	e, err := opts.load(false)
	if err != nil {
		return err
	}
	defer e.logger.Sync()
	fmt.Fprintln(cmd.OutOrStdout(), e.themeStore().Initialize())
	return nil
}
