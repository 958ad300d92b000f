package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/tui/gallery"
	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trellis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestStoriesCommandListsStories(t *testing.T) {
	stdout, _, err := execute(t, "stories")
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	for _, name := range gallery.StoryNames() {
		require.Contains(t, stdout, name)
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeConfig(t, "theme: light\n")

	stdout, _, err := execute(t, "render", "primitives", "--config", path, "--width", "60")
	require.NoError(t, err)
	require.Contains(t, stdout, "Typography")

	_, _, err = execute(t, "render", "carousel", "--config", path)
	require.ErrorIs(t, err, gallery.ErrUnknownStory)
	require.Contains(t, err.Error(), "trellis stories")
}

func TestRenderCommandRejectsMissingExplicitConfig(t *testing.T) {
	_, _, err := execute(t, "render", "menu", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *trelliserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestConfigValidateCommand(t *testing.T) {
	valid := writeConfig(t, "tabs:\n  activation: manual\n")
	stdout, _, err := execute(t, "config", "validate", valid)
	require.NoError(t, err)
	require.Contains(t, stdout, "is valid")

	invalid := writeConfig(t, "tabs:\n  activation: sometimes\n")
	_, _, err = execute(t, "config", "validate", invalid)

	var validationErr *trelliserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tabs.activation", validationErr.Field)
}

func TestConfigShowAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "theme: dark\n")

	stdout, _, err := execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "theme: dark")
	require.Contains(t, stdout, "activation: automatic")
	require.Contains(t, stdout, "close_on_escape: true")
}

func TestOutputWidthFallsBackForBuffers(t *testing.T) {
	require.Equal(t, 80, outputWidth(&bytes.Buffer{}, 80))
}
