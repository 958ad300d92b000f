package gallery

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
)

// keyMap holds the gallery's own bindings plus the widget key map, for help.
type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding

	widgets focus.KeyMap
}

func newKeyMap(widgets focus.KeyMap) keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("ctrl+n", "pgdown"), key.WithHelp("ctrl+n", "next story")),
		Prev:    key.NewBinding(key.WithKeys("ctrl+p", "pgup"), key.WithHelp("ctrl+p", "previous story")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		widgets: widgets,
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.widgets.ShortHelp(), k.Next, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.widgets.FullHelp(), []key.Binding{k.Next, k.Prev, k.Help, k.Quit})
}
