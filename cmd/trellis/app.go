package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/trellis/internal/config"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

const defaultRenderWidth = 80

func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		path := flags.configPath
		if path == "" {
			path = config.DefaultPath
		}
		return nil, newCommandError("load configuration", path, err, "Run 'trellis config validate' to check the file.")
	}
	return cfg, nil
}

// newLogger builds the command logger. --verbose wins over log.level.
func newLogger(cfg *config.Config, flags *rootFlags, w io.Writer, component string) (*logger.Logger, error) {
	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        w,
		Component:     component,
	})
}

// openLogFile opens log.file for appending. The gallery owns the terminal, so
// without a file its logs are discarded.
func openLogFile(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.Log.File == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// outputWidth returns the terminal width when w is a terminal.
func outputWidth(w io.Writer, fallback int) int {
	file, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
