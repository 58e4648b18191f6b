package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Josepavese/folio/internal/section"
)

func newSectionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the page sections in navigation order",
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

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tANCHOR\tLABEL\tCONTENT")
			for i, id := range section.DefaultAnchors {
				state := "empty"
				if p.HasSection(id) {
					state = "yes"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, id, section.Label(id), state)
			}
			return tw.Flush()
		},
	}
}
