package focus

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to navigation keys.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	Enter    key.Binding
	Space    key.Binding
	Escape   key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
}

// DefaultKeyMap returns arrow-key bindings with vi-style aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Space:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "activate")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	}
}

// Resolve translates a bubbletea key message into a KeyEvent.
func (k KeyMap) Resolve(msg tea.KeyMsg) (KeyEvent, bool) {
	switch {
	case key.Matches(msg, k.ShiftTab):
		return KeyEvent{Key: KeyTab, Shift: true}, true
	case key.Matches(msg, k.Tab):
		return KeyEvent{Key: KeyTab}, true
	case key.Matches(msg, k.Up):
		return KeyEvent{Key: KeyArrowUp}, true
	case key.Matches(msg, k.Down):
		return KeyEvent{Key: KeyArrowDown}, true
	case key.Matches(msg, k.Left):
		return KeyEvent{Key: KeyArrowLeft}, true
	case key.Matches(msg, k.Right):
		return KeyEvent{Key: KeyArrowRight}, true
	case key.Matches(msg, k.Home):
		return KeyEvent{Key: KeyHome}, true
	case key.Matches(msg, k.End):
		return KeyEvent{Key: KeyEnd}, true
	case key.Matches(msg, k.Enter):
		return KeyEvent{Key: KeyEnter}, true
	case key.Matches(msg, k.Space):
		return KeyEvent{Key: KeySpace}, true
	case key.Matches(msg, k.Escape):
		return KeyEvent{Key: KeyEscape}, true
	default:
		return KeyEvent{}, false
	}
}

// Override replaces the keys of the named binding. Unknown names and empty
// key lists are ignored.
func (k KeyMap) Override(name string, keys []string) KeyMap {
	if len(keys) == 0 {
		return k
	}
	switch name {
	case "up":
		k.Up.SetKeys(keys...)
	case "down":
		k.Down.SetKeys(keys...)
	case "left":
		k.Left.SetKeys(keys...)
	case "right":
		k.Right.SetKeys(keys...)
	case "home":
		k.Home.SetKeys(keys...)
	case "end":
		k.End.SetKeys(keys...)
	case "activate":
		k.Enter.SetKeys(keys...)
	case "escape":
		k.Escape.SetKeys(keys...)
	}
	return k
}

// Release removes keys from every binding so another binding can take them.
func (k KeyMap) Release(keys ...string) KeyMap {
	if len(keys) == 0 {
		return k
	}
	drop := make(map[string]struct{}, len(keys))
	for _, name := range keys {
		drop[name] = struct{}{}
	}
	for _, b := range []*key.Binding{
		&k.Up, &k.Down, &k.Left, &k.Right, &k.Home, &k.End,
		&k.Enter, &k.Space, &k.Escape, &k.Tab, &k.ShiftTab,
	} {
		kept := make([]string, 0, len(b.Keys()))
		for _, name := range b.Keys() {
			if _, ok := drop[name]; !ok {
				kept = append(kept, name)
			}
		}
		if len(kept) != len(b.Keys()) {
			b.SetKeys(kept...)
		}
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Enter, k.Escape}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Home, k.End},
		{k.Enter, k.Space, k.Escape},
		{k.Tab, k.ShiftTab},
	}
}
