package config

import (
	"github.com/alexisbeaulieu97/trellis/internal/focus"
	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

// Config is the gallery and widget policy configuration.
type Config struct {
	Theme  string       `yaml:"theme" validate:"omitempty,oneof=default dark light"`
	Log    LogConfig    `yaml:"log"`
	Menu   MenuConfig   `yaml:"menu"`
	Tabs   TabsConfig   `yaml:"tabs"`
	Modal  ModalConfig  `yaml:"modal"`
	Keymap KeymapConfig `yaml:"keymap"`
}

// LogConfig controls logging. The gallery logs to File because the terminal
// belongs to the UI.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// MenuConfig sets menu bar navigation policy.
type MenuConfig struct {
	Orientation string `yaml:"orientation" validate:"omitempty,oneof=horizontal vertical"`
	Loop        *bool  `yaml:"loop"`
}

// TabsConfig sets tab list navigation policy.
type TabsConfig struct {
	Orientation string `yaml:"orientation" validate:"omitempty,oneof=horizontal vertical"`
	Activation  string `yaml:"activation" validate:"omitempty,oneof=automatic manual"`
}

// ModalConfig selects which dismissal gestures close a modal.
type ModalConfig struct {
	CloseOnEscape  *bool `yaml:"close_on_escape"`
	CloseOnOverlay *bool `yaml:"close_on_overlay"`
}

// KeymapConfig replaces the keys of individual bindings. Empty lists keep
// the defaults.
type KeymapConfig struct {
	Up       []string `yaml:"up" validate:"omitempty,dive,keyname"`
	Down     []string `yaml:"down" validate:"omitempty,dive,keyname"`
	Left     []string `yaml:"left" validate:"omitempty,dive,keyname"`
	Right    []string `yaml:"right" validate:"omitempty,dive,keyname"`
	Home     []string `yaml:"home" validate:"omitempty,dive,keyname"`
	End      []string `yaml:"end" validate:"omitempty,dive,keyname"`
	Activate []string `yaml:"activate" validate:"omitempty,dive,keyname"`
	Escape   []string `yaml:"escape" validate:"omitempty,dive,keyname"`
}

// bindings lists the overrides in a fixed order, keyed by binding name.
func (k KeymapConfig) bindings() []keyBinding {
	return []keyBinding{
		{name: "up", keys: k.Up},
		{name: "down", keys: k.Down},
		{name: "left", keys: k.Left},
		{name: "right", keys: k.Right},
		{name: "home", keys: k.Home},
		{name: "end", keys: k.End},
		{name: "activate", keys: k.Activate},
		{name: "escape", keys: k.Escape},
	}
}

type keyBinding struct {
	name string
	keys []string
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "default"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Menu.Orientation == "" {
		c.Menu.Orientation = "horizontal"
	}
	if c.Menu.Loop == nil {
		c.Menu.Loop = boolPtr(true)
	}
	if c.Tabs.Orientation == "" {
		c.Tabs.Orientation = "horizontal"
	}
	if c.Tabs.Activation == "" {
		c.Tabs.Activation = "automatic"
	}
	if c.Modal.CloseOnEscape == nil {
		c.Modal.CloseOnEscape = boolPtr(true)
	}
	if c.Modal.CloseOnOverlay == nil {
		c.Modal.CloseOnOverlay = boolPtr(true)
	}
}

func boolPtr(v bool) *bool { return &v }

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// ResolvedTheme returns the configured built-in theme.
func (c *Config) ResolvedTheme() components.Theme {
	if theme, ok := components.ThemeByName(c.Theme); ok {
		return theme
	}
	return components.DefaultTheme()
}

func (c *Config) MenuLoop() bool { return boolOr(c.Menu.Loop, true) }

func (c *Config) TabsOrientation() focus.Orientation {
	return orientation(c.Tabs.Orientation)
}

func (c *Config) TabsActivation() focus.Activation {
	if c.Tabs.Activation == "manual" {
		return focus.ActivationManual
	}
	return focus.ActivationAutomatic
}

func (c *Config) MenuOrientation() focus.Orientation {
	return orientation(c.Menu.Orientation)
}

func (c *Config) ModalCloseOnEscape() bool  { return boolOr(c.Modal.CloseOnEscape, true) }
func (c *Config) ModalCloseOnOverlay() bool { return boolOr(c.Modal.CloseOnOverlay, true) }

// KeyMap applies the configured overrides to the default key map.
func (c *Config) KeyMap() focus.KeyMap {
	keys := focus.DefaultKeyMap()
	bindings := c.Keymap.bindings()
	for _, b := range bindings {
		keys = keys.Release(b.keys...)
	}
	for _, b := range bindings {
		keys = keys.Override(b.name, b.keys)
	}
	return keys
}

func orientation(value string) focus.Orientation {
	if value == "vertical" {
		return focus.Vertical
	}
	return focus.Horizontal
}
