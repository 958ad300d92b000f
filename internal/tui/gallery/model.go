package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

// Model is the gallery program: one story mounted at a time.
type Model struct {
	env     Env
	stories []Story
	index   int
	scene   *Scene

	keys     keyMap
	help     help.Model
	showHelp bool
	theme    components.Theme

	width  int
	height int
}

// NewModel creates a gallery showing the story named start, or the first
// story when start is empty.
func NewModel(env Env, start string) (Model, error) {
	m := Model{
		env:     env,
		stories: Stories(),
		keys:    newKeyMap(env.Keys),
		help:    help.New(),
		theme:   env.Config.ResolvedTheme(),
		width:   80,
		height:  24,
	}

	if start != "" {
		story, err := FindStory(start)
		if err != nil {
			return Model{}, err
		}
		for i, s := range m.stories {
			if s.Name == story.Name {
				m.index = i
			}
		}
	}
	m.scene = m.stories[m.index].Build(env)
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Story returns the story on screen.
func (m Model) Story() Story {
	return m.stories[m.index]
}

// Scene returns the mounted scene.
func (m Model) Scene() *Scene {
	return m.scene
}

// switchTo tears the current scene down and mounts stories[index].
func (m *Model) switchTo(index int) {
	n := len(m.stories)
	index = ((index % n) + n) % n
	if index == m.index && m.scene != nil {
		return
	}
	if m.scene != nil {
		m.scene.Close()
	}
	m.index = index
	m.scene = m.stories[index].Build(m.env)
	m.env.Log.WithFields(map[string]any{"story": m.stories[index].Name}).Debug("story mounted")
}

func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.theme).
		WithConstraints(components.WithMaxWidth(m.width - 4))
}
