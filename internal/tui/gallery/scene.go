package gallery

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

// Scene is a mounted story: a document, the widgets attached to it and the
// function that lays them out.
type Scene struct {
	doc     *focus.Document
	keys    focus.KeyMap
	widgets []components.Interactive
	layout  func(ctx components.RenderContext) string
	onMsg   func(msg tea.Msg) tea.Cmd
	status  string
	log     *logger.Logger
}

func newScene(env Env) *Scene {
	return &Scene{
		doc:  focus.NewDocument(env.Log),
		keys: env.Keys,
		log:  env.Log,
	}
}

// mount attaches widgets in order. Earlier widgets see keys first, so
// overlays belong at the front.
func (s *Scene) mount(widgets ...components.Interactive) {
	for _, w := range widgets {
		w.Mount(s.doc, nil)
		s.widgets = append(s.widgets, w)
	}
}

// Document exposes the scene's element tree.
func (s *Scene) Document() *focus.Document { return s.doc }

// Status is the last message a story reported.
func (s *Scene) Status() string { return s.status }

func (s *Scene) setStatus(status string) {
	s.status = status
	s.log.WithFields(map[string]any{"status": status}).Debug("story status")
}

// Start focuses the first tabbable element.
func (s *Scene) Start() {
	if s.doc.Active() == nil {
		s.cycleFocus(false)
	}
}

// Update hands msg to the story hook and the widgets. A key stops at the first
// widget that handles it; Tab and Shift+Tab left unhandled move focus through
// the scene's tab order.
func (s *Scene) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if s.onMsg != nil {
		cmds = append(cmds, s.onMsg(msg))
	}

	key, isKey := msg.(tea.KeyMsg)
	for _, w := range s.widgets {
		cmd, handled := w.Update(msg)
		cmds = append(cmds, cmd)
		if handled && isKey {
			return tea.Batch(cmds...)
		}
	}

	if isKey {
		if ev, ok := s.keys.Resolve(key); ok && ev.Key == focus.KeyTab {
			s.cycleFocus(ev.Shift)
		}
	}
	return tea.Batch(cmds...)
}

func (s *Scene) cycleFocus(back bool) bool {
	tabbables := s.doc.Tabbables(s.doc.Root())
	if len(tabbables) == 0 {
		return false
	}

	idx := -1
	if active := s.doc.Active(); active != nil {
		for i, el := range tabbables {
			if el.ElementID() == active.ElementID() {
				idx = i
				break
			}
		}
	}

	last := len(tabbables) - 1
	var next int
	switch {
	case back && idx <= 0:
		next = last
	case back:
		next = idx - 1
	case idx == last:
		next = 0
	default:
		next = idx + 1
	}

	if err := s.doc.Focus(tabbables[next]); err != nil {
		s.log.Error(err, "scene focus failed")
		return false
	}
	return true
}

// View lays the scene out with ctx.
func (s *Scene) View(ctx components.RenderContext) string {
	if s.layout == nil {
		return ""
	}
	return s.layout(ctx)
}

// Close unmounts every widget.
func (s *Scene) Close() {
	for _, w := range s.widgets {
		w.Unmount()
	}
	s.widgets = nil
}
