package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/trellis/internal/tui/gallery"
)

type renderOptions struct {
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Print a static rendering of a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Render width (default: terminal width, or 80)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, name string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, flags, cmd.ErrOrStderr(), "render")
	if err != nil {
		return err
	}

	width := opts.width
	if width <= 0 {
		width = outputWidth(cmd.OutOrStdout(), defaultRenderWidth)
	}

	out, err := gallery.Render(gallery.NewEnv(cfg, log), name, width)
	if err != nil {
		return newCommandError("render story", name, err, "Run 'trellis stories' to list the available stories.")
	}
	log.WithFields(map[string]any{"story": name, "width": width}).Debug("story rendered")
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
