package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/trellis/internal/tui/gallery"
)

func newStoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List the gallery stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tTITLE\tDESCRIPTION")
			for _, story := range gallery.Stories() {
				fmt.Fprintf(writer, "%s\t%s\t%s\n", story.Name, story.Title, story.Description)
			}
			return writer.Flush()
		},
	}

	return cmd
}
