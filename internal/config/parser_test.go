package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `theme: dark
log:
  level: debug
  file: /tmp/trellis.log
menu:
  orientation: vertical
  loop: false
tabs:
  activation: manual
modal:
  close_on_overlay: false
keymap:
  down: ["j", "ctrl+n"]
`

	invalidYAML := `theme: [dark, light]
log:
  level: info
`

	badTheme := `theme: solarized
`

	badKey := `keymap:
  up: ["ctrl+"]
`

	conflicting := `keymap:
  up: ["x"]
  down: ["x"]
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "dark", cfg.Theme)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, focus.Vertical, cfg.MenuOrientation())
				require.False(t, cfg.MenuLoop())
				require.Equal(t, focus.ActivationManual, cfg.TabsActivation())
				require.Equal(t, focus.Horizontal, cfg.TabsOrientation())
				require.True(t, cfg.ModalCloseOnEscape())
				require.False(t, cfg.ModalCloseOnOverlay())
				require.Equal(t, []string{"j", "ctrl+n"}, cfg.KeyMap().Down.Keys())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *trelliserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown theme returns validation error",
			contents: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *trelliserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme", validationErr.Field)
				require.Contains(t, validationErr.Message, "oneof")
			},
		},
		{
			name:     "malformed key name is rejected",
			contents: badKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *trelliserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "keymap.up[0]", validationErr.Field)
				require.Contains(t, validationErr.Message, "keyname")
			},
		},
		{
			name:     "key bound twice is rejected",
			contents: conflicting,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *trelliserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "keymap.down", validationErr.Field)
				require.Contains(t, validationErr.Message, "already bound to up")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := filepath.Join(dir, "trellis.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := ParseConfig(path)

	var parseErr *trelliserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.Zero(t, parseErr.Line)
}

func TestLoad(t *testing.T) {
	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("missing default path yields defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("default path is read when present", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte("theme: light\n"), 0o600))
		t.Chdir(dir)

		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "light", cfg.Theme)
		require.Equal(t, "info", cfg.Log.Level)
	})
}

func TestParseEmptyDocumentUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("inline", nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "default", cfg.ResolvedTheme().Name)
	require.True(t, cfg.MenuLoop())
	require.Equal(t, focus.ActivationAutomatic, cfg.TabsActivation())
}
