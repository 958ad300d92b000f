package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles gallery keys and forwards everything else to the scene.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.scene.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchTo(m.index + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTo(m.index - 1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		}
	}

	return m, m.scene.Update(msg)
}
