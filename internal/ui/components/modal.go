package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// CloseReason tells OnClose what dismissed the modal.
type CloseReason int

const (
	CloseReasonProgrammatic CloseReason = iota
	CloseReasonEscape
	CloseReasonOverlay
)

func (r CloseReason) String() string {
	switch r {
	case CloseReasonEscape:
		return "escape"
	case CloseReasonOverlay:
		return "overlay"
	default:
		return "programmatic"
	}
}

const defaultModalWidth = 48

// Modal is a dialog that traps focus while open and gives it back to the
// previously focused element when it closes. Escape and overlay clicks close
// it only when the matching policy is enabled.
type Modal struct {
	BaseComponent
	title    string
	body     ui.Renderable
	controls []Interactive
	width    int

	closeOnEscape  bool
	closeOnOverlay bool
	onClose        func(CloseReason)

	doc     *focus.Document
	parent  *focus.Node
	overlay *focus.Node
	dialog  *focus.Node
	trap    *focus.Trap
	router  *focus.Router
	release func()
	open    bool

	keys focus.KeyMap
	log  *logger.Logger
}

// NewModal creates a closed modal that closes on Escape and on overlay clicks.
func NewModal(title string) *Modal {
	return &Modal{
		BaseComponent:  NewBaseComponent(),
		title:          title,
		closeOnEscape:  true,
		closeOnOverlay: true,
		keys:           focus.DefaultKeyMap(),
	}
}

func (m *Modal) WithBody(body ui.Renderable) *Modal {
	m.body = body
	return m
}

// WithControls sets the interactive children. They are mounted inside the
// dialog while it is open, in tab order.
func (m *Modal) WithControls(controls ...Interactive) *Modal {
	m.controls = controls
	return m
}

func (m *Modal) WithWidth(width int) *Modal {
	m.width = width
	return m
}

func (m *Modal) WithCloseOnEscape(enabled bool) *Modal {
	m.closeOnEscape = enabled
	return m
}

func (m *Modal) WithCloseOnOverlay(enabled bool) *Modal {
	m.closeOnOverlay = enabled
	return m
}

func (m *Modal) WithOnClose(fn func(CloseReason)) *Modal {
	m.onClose = fn
	return m
}

func (m *Modal) WithKeyMap(keys focus.KeyMap) *Modal {
	m.keys = keys
	return m
}

func (m *Modal) WithLogger(log *logger.Logger) *Modal {
	m.log = log
	return m
}

func (m *Modal) IsOpen() bool { return m.open }

// Dialog returns the dialog element while open.
func (m *Modal) Dialog() *focus.Node { return m.dialog }

// Overlay returns the backdrop element while open.
func (m *Modal) Overlay() *focus.Node { return m.overlay }

// Trap exposes the focus trap for inspection.
func (m *Modal) Trap() *focus.Trap { return m.trap }

// Mount records where the modal attaches its overlay when opened.
func (m *Modal) Mount(doc *focus.Document, parent *focus.Node) {
	if doc == nil {
		return
	}
	if parent == nil {
		parent = doc.Root()
	}
	m.doc = doc
	m.parent = parent
	m.trap = focus.NewTrap(doc, m.log)
	m.router = focus.NewRouter(focus.RouterConfig{
		Trap:     m.trap,
		OnEscape: m.escape,
		Logger:   m.log,
	})
}

// Unmount closes the modal without notifying OnClose and forgets the document.
func (m *Modal) Unmount() {
	if m.open {
		m.teardown()
	}
	m.doc = nil
	m.parent = nil
}

// Open shows the dialog, mounts its controls and moves focus inside.
func (m *Modal) Open() error {
	if m.doc == nil {
		return nil
	}
	if m.open {
		return nil
	}
	previous := m.doc.Active()

	m.overlay = focus.NewNode("", focus.KindContainer).WithLabel("overlay")
	m.dialog = focus.NewNode("", focus.KindContainer).WithLabel(m.title)
	m.doc.Append(m.parent, m.overlay)
	m.doc.Append(m.overlay, m.dialog)
	for _, control := range m.controls {
		control.Mount(m.doc, m.dialog)
	}
	m.open = true
	m.release = m.doc.Subscribe(m.overlayPressed)

	m.log.WithFields(map[string]any{"modal": m.title}).Debug("modal opened")
	return m.trap.Activate(m.dialog, previous)
}

// Close dismisses the modal programmatically.
func (m *Modal) Close() {
	m.close(CloseReasonProgrammatic)
}

func (m *Modal) close(reason CloseReason) {
	if !m.open {
		return
	}
	m.teardown()
	m.log.WithFields(map[string]any{"modal": m.title, "reason": reason.String()}).Debug("modal closed")
	if m.onClose != nil {
		m.onClose(reason)
	}
}

// teardown restores focus first and only then removes the overlay.
func (m *Modal) teardown() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
	m.trap.Deactivate()
	for _, control := range m.controls {
		control.Unmount()
	}
	m.doc.Remove(m.overlay)
	m.overlay = nil
	m.dialog = nil
	m.open = false
}

func (m *Modal) escape() bool {
	if !m.closeOnEscape {
		return false
	}
	m.close(CloseReasonEscape)
	return true
}

// PressOverlay simulates a pointer press on the backdrop.
func (m *Modal) PressOverlay() {
	if m.open {
		m.doc.PointerDown(m.overlay)
	}
}

func (m *Modal) overlayPressed(ev focus.Interaction) {
	if ev.Kind != focus.InteractionPointerDown || ev.Target == nil || m.overlay == nil {
		return
	}
	if ev.Target.ElementID() != m.overlay.ElementID() || !m.closeOnOverlay {
		return
	}
	m.close(CloseReasonOverlay)
}

// Update sends keys to the focused control first, then to the trap for Tab
// and to the dismissal policy for Escape. Other messages reach every control.
func (m *Modal) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !m.open {
		return nil, false
	}

	key, isKey := msg.(tea.KeyMsg)
	var cmds []tea.Cmd
	for _, control := range m.controls {
		cmd, handled := control.Update(msg)
		cmds = append(cmds, cmd)
		if handled && isKey {
			return tea.Batch(cmds...), true
		}
	}
	if !isKey {
		return tea.Batch(cmds...), false
	}

	ev, ok := m.keys.Resolve(key)
	if !ok {
		// Keys the dialog does not know stay inside it.
		return tea.Batch(cmds...), true
	}
	handled := m.router.Dispatch(ev)
	if !handled && ev.Key != focus.KeyEscape {
		handled = true
	}
	return tea.Batch(cmds...), handled
}

func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog box, or nothing while closed.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	if !m.open {
		return ""
	}
	theme := ctx.Theme
	width := m.width
	if width <= 0 {
		width = defaultModalWidth
	}
	inner := ctx.WithConstraints(WithMaxWidth(width - 4))

	parts := []string{TypographyStyle(theme, TypographyVariantTitle).Render(m.title)}
	if m.body != nil {
		parts = append(parts, "", render(m.body, inner))
	}
	if len(m.controls) > 0 {
		views := make([]string, 0, len(m.controls))
		for _, control := range m.controls {
			views = append(views, control.ViewWithContext(inner))
		}
		parts = append(parts, "", lipgloss.JoinHorizontal(lipgloss.Top, spaced(views)...))
	}

	style := m.ComputeStyle(theme).
		Border(theme.Borders.Rounded).
		BorderForeground(theme.Palette.Primary.Base).
		Padding(0, 1).
		Width(width - 2)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func spaced(views []string) []string {
	out := make([]string, 0, len(views)*2)
	for i, view := range views {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, view)
	}
	return out
}
