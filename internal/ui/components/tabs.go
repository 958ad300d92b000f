package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// Tab is one entry of a tab list and the panel it selects.
type Tab struct {
	ID       string
	Label    string
	Disabled bool
	Panel    ui.Renderable
}

// tabItems exposes the live tab slice to the focus controller.
type tabItems struct{ t *Tabs }

func (it tabItems) Len() int { return len(it.t.tabs) }

func (it tabItems) Disabled(index int) bool {
	if index < 0 || index >= len(it.t.tabs) {
		return true
	}
	return it.t.tabs[index].Disabled
}

// Tabs is a tab list with a roving tab stop and one visible panel.
type Tabs struct {
	BaseComponent
	tabs     []Tab
	selected int

	orientation focus.Orientation
	activation  focus.Activation
	loop        bool
	onChange    func(index int, id string)

	ctrl  *focus.Controller
	doc   *focus.Document
	list  *focus.Node
	nodes []*focus.Node
	keys  focus.KeyMap
	log   *logger.Logger
}

// NewTabs creates a horizontal tab list with automatic activation. The first
// enabled tab starts selected.
func NewTabs(tabs ...Tab) *Tabs {
	t := &Tabs{
		BaseComponent: NewBaseComponent(),
		selected:      -1,
		loop:          true,
		keys:          focus.DefaultKeyMap(),
	}
	t.setTabs(tabs)
	t.rebuild()
	return t
}

func (t *Tabs) WithOrientation(orientation focus.Orientation) *Tabs {
	t.orientation = orientation
	t.rebuild()
	return t
}

// WithActivation chooses whether arrow keys select tabs (automatic) or only
// move focus until Enter or Space (manual).
func (t *Tabs) WithActivation(activation focus.Activation) *Tabs {
	t.activation = activation
	t.rebuild()
	return t
}

func (t *Tabs) WithLoop(loop bool) *Tabs {
	t.loop = loop
	t.rebuild()
	return t
}

// WithSelected selects the tab with id. Unknown or disabled ids are ignored.
func (t *Tabs) WithSelected(id string) *Tabs {
	for i, tab := range t.tabs {
		if tab.ID == id {
			t.Select(i)
			break
		}
	}
	return t
}

func (t *Tabs) WithOnChange(fn func(index int, id string)) *Tabs {
	t.onChange = fn
	return t
}

func (t *Tabs) WithKeyMap(keys focus.KeyMap) *Tabs {
	t.keys = keys
	return t
}

func (t *Tabs) WithLogger(log *logger.Logger) *Tabs {
	t.log = log
	t.rebuild()
	return t
}

// rebuild recreates the controller after a policy change, keeping the
// current position.
func (t *Tabs) rebuild() {
	current := -1
	if t.ctrl != nil {
		if i, ok := t.ctrl.Current(); ok {
			current = i
		}
	}
	t.ctrl = focus.NewController(tabItems{t}, focus.Options{
		Orientation: t.orientation,
		Activation:  t.activation,
		NoLoop:      !t.loop,
		OnFocus:     t.focusTab,
		OnActivate:  func(i int) { t.Select(i) },
		Logger:      t.log,
	})
	if current >= 0 {
		t.ctrl.SetCurrent(current)
	}
	if t.selected < 0 {
		if i, ok := t.ctrl.Current(); ok {
			t.selected = i
		}
	}
	t.syncTabIndex()
}

func (t *Tabs) setTabs(tabs []Tab) {
	t.tabs = make([]Tab, len(tabs))
	for i, tab := range tabs {
		if tab.ID == "" {
			tab.ID = uuid.NewString()
		}
		t.tabs[i] = tab
	}
}

// SetTabs replaces the tab set. The selection and roving position are kept
// when still valid and otherwise move to the nearest usable tab.
func (t *Tabs) SetTabs(tabs ...Tab) {
	hadFocus := t.FocusWithin()
	selectedID := ""
	if t.selected >= 0 && t.selected < len(t.tabs) {
		selectedID = t.tabs[t.selected].ID
	}

	t.setTabs(tabs)
	t.selected = -1
	for i, tab := range t.tabs {
		if tab.ID == selectedID && !tab.Disabled {
			t.selected = i
		}
	}

	if t.doc != nil {
		doc, parent := t.doc, t.list.Parent()
		t.Unmount()
		t.Mount(doc, parent)
	}
	t.ctrl.Reconcile()
	if t.selected < 0 {
		if i, ok := t.ctrl.Current(); ok {
			t.selected = i
		}
	} else {
		t.ctrl.SetCurrent(t.selected)
	}
	t.syncTabIndex()
	if hadFocus {
		t.Focus()
	}
}

// Select makes index the selected tab and moves the tab stop to it.
func (t *Tabs) Select(index int) bool {
	if (tabItems{t}).Disabled(index) {
		return false
	}
	t.ctrl.SetCurrent(index)
	t.syncTabIndex()
	if t.selected == index {
		return true
	}
	t.selected = index
	t.log.WithFields(map[string]any{"tab": t.tabs[index].ID}).Debug("tab selected")
	if t.onChange != nil {
		t.onChange(index, t.tabs[index].ID)
	}
	return true
}

// Selected returns the selected tab index and id.
func (t *Tabs) Selected() (int, string) {
	if t.selected < 0 || t.selected >= len(t.tabs) {
		return -1, ""
	}
	return t.selected, t.tabs[t.selected].ID
}

// Current returns the tab holding the tab stop.
func (t *Tabs) Current() (int, bool) {
	return t.ctrl.Current()
}

// TabIndex returns the roving tabindex of tab index.
func (t *Tabs) TabIndex(index int) int {
	return t.ctrl.TabIndex(index)
}

// Node returns the element of tab index, or nil before Mount.
func (t *Tabs) Node(index int) *focus.Node {
	if index < 0 || index >= len(t.nodes) {
		return nil
	}
	return t.nodes[index]
}

// Click focuses and selects tab index.
func (t *Tabs) Click(index int) bool {
	if t.doc != nil {
		if n := t.Node(index); n != nil {
			t.doc.PointerDown(n)
		}
	}
	handled := t.ctrl.Click(index)
	t.syncTabIndex()
	return handled
}

// Focus moves focus to the tab stop.
func (t *Tabs) Focus() bool {
	i, ok := t.ctrl.Current()
	n := t.Node(i)
	if !ok || n == nil {
		return false
	}
	return t.doc.Focus(n) == nil
}

func (t *Tabs) Mount(doc *focus.Document, parent *focus.Node) {
	if doc == nil {
		return
	}
	if parent == nil {
		parent = doc.Root()
	}
	t.doc = doc
	t.list = focus.NewNode("", focus.KindContainer).WithLabel("tablist")
	doc.Append(parent, t.list)

	t.nodes = make([]*focus.Node, len(t.tabs))
	for i, tab := range t.tabs {
		t.nodes[i] = focus.NewNode(tab.ID, focus.KindButton).
			WithLabel(tab.Label).
			WithDisabled(tab.Disabled)
		doc.Append(t.list, t.nodes[i])
	}
	t.syncTabIndex()
}

func (t *Tabs) Unmount() {
	if t.doc != nil && t.list != nil {
		t.doc.Remove(t.list)
	}
	t.doc = nil
	t.list = nil
	t.nodes = nil
}

// FocusWithin reports whether focus is on one of the tabs.
func (t *Tabs) FocusWithin() bool {
	if t.doc == nil || t.list == nil {
		return false
	}
	active := t.doc.Active()
	return active != nil && t.doc.Contains(t.list, active)
}

// Update routes navigation keys while a tab has focus.
func (t *Tabs) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !t.FocusWithin() {
		return nil, false
	}
	ev, ok := t.keys.Resolve(key)
	if !ok {
		return nil, false
	}
	handled := t.ctrl.HandleKey(ev)
	t.syncTabIndex()
	return nil, handled
}

// focusTab follows the tab stop with real focus, but only while focus is
// already in the list so programmatic selection does not steal it.
func (t *Tabs) focusTab(index int) {
	n := t.Node(index)
	if n == nil || !t.FocusWithin() {
		return
	}
	if err := t.doc.Focus(n); err != nil {
		t.log.Error(err, "tab focus failed")
	}
}

func (t *Tabs) syncTabIndex() {
	for i, n := range t.nodes {
		n.WithTabIndex(t.ctrl.TabIndex(i))
	}
}

func (t *Tabs) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Tabs) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	labels := make([]string, len(t.tabs))
	for i, tab := range t.tabs {
		labels[i] = t.labelStyle(theme, i).Render(tab.Label)
	}

	var panel string
	if t.selected >= 0 && t.selected < len(t.tabs) {
		panel = render(t.tabs[t.selected].Panel, ctx)
	}

	style := t.ComputeStyle(theme)
	if t.orientation == focus.Vertical {
		list := lipgloss.JoinVertical(lipgloss.Left, labels...)
		list = lipgloss.NewStyle().
			Border(theme.Borders.Normal, false, true, false, false).
			BorderForeground(theme.Palette.Neutral.Base).
			PaddingRight(1).
			Render(list)
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, list, " "+panel))
	}

	list := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	rule := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base).
		Render(HorizontalDivider().WithWidth(max(lipgloss.Width(list), 1)).View())
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, list, rule, panel))
}

func (t *Tabs) labelStyle(theme Theme, index int) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	tab := t.tabs[index]
	if tab.Disabled {
		return style.Inherit(theme.States.Disabled)
	}
	if index == t.selected {
		style = style.Inherit(theme.States.Selected)
	}
	if n := t.Node(index); n != nil && t.doc.IsActive(n) {
		style = style.Underline(true)
	}
	return style
}
