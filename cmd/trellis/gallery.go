package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/trellis/internal/tui/gallery"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery [story]",
		Short: "Open the interactive story gallery",
		Long: `Open the interactive story gallery. Ctrl+N and Ctrl+P switch stories,
F1 toggles the full key help and Ctrl+C quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			return runGallery(flags, start)
		},
	}

	return cmd
}

func runGallery(flags *rootFlags, start string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	out, closeLog, err := openLogFile(cfg)
	if err != nil {
		return newCommandError("open gallery", "preparing the log file", err, "Check log.file in your configuration.")
	}
	defer func() { _ = closeLog() }()

	log, err := newLogger(cfg, flags, out, "gallery")
	if err != nil {
		return err
	}

	model, err := gallery.NewModel(gallery.NewEnv(cfg, log), start)
	if err != nil {
		return newCommandError("open gallery", "selecting the first story", err, "Run 'trellis stories' to list the available stories.")
	}

	log.WithFields(map[string]any{"story": model.Story().Name, "theme": cfg.Theme}).Info("gallery started")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	log.Info("gallery closed")
	return nil
}
