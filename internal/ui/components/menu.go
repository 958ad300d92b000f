package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

// MenuItem is an entry of a menu bar. Top-level items with Items open a
// submenu; submenu items are leaves.
type MenuItem struct {
	ID       string
	Label    string
	Disabled bool
	Items    []MenuItem
}

type menuItems struct{ m *MenuBar }

func (it menuItems) Len() int { return len(it.m.items) }

func (it menuItems) Disabled(index int) bool {
	if index < 0 || index >= len(it.m.items) {
		return true
	}
	return it.m.items[index].Disabled
}

func (it menuItems) HasChildren(index int) bool {
	if index < 0 || index >= len(it.m.items) {
		return false
	}
	return len(it.m.items[index].Items) > 0
}

type submenuItems struct {
	m      *MenuBar
	parent int
}

func (it submenuItems) Len() int { return len(it.m.items[it.parent].Items) }

func (it submenuItems) Disabled(index int) bool {
	children := it.m.items[it.parent].Items
	if index < 0 || index >= len(children) {
		return true
	}
	return children[index].Disabled
}

// MenuBar is a menu with at most one open submenu. Interacting
// outside the bar closes the submenu and Escape hands focus back to its
// trigger.
type MenuBar struct {
	BaseComponent
	items       []MenuItem
	orientation focus.Orientation
	loop        bool
	onSelect    func(id string)

	bar  *focus.Controller
	subs []*focus.Controller

	doc      *focus.Document
	root     *focus.Node
	triggers []*focus.Node
	open     []*focus.Node
	release  func()

	keys focus.KeyMap
	log  *logger.Logger
}

// NewMenuBar creates a looping menu bar.
func NewMenuBar(items ...MenuItem) *MenuBar {
	m := &MenuBar{
		BaseComponent: NewBaseComponent(),
		items:         assignMenuIDs(items),
		loop:          true,
		keys:          focus.DefaultKeyMap(),
	}
	m.build()
	return m
}

func assignMenuIDs(items []MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if len(item.Items) > 0 {
			item.Items = assignMenuIDs(item.Items)
		}
		out[i] = item
	}
	return out
}

// WithOrientation lays the bar out vertically or horizontally. Submenus are
// always vertical and open with the cross-axis arrow.
func (m *MenuBar) WithOrientation(orientation focus.Orientation) *MenuBar {
	m.orientation = orientation
	m.build()
	return m
}

func (m *MenuBar) WithLoop(loop bool) *MenuBar {
	m.loop = loop
	m.build()
	return m
}

// WithOnSelect is called with the id of every activated leaf item.
func (m *MenuBar) WithOnSelect(fn func(id string)) *MenuBar {
	m.onSelect = fn
	return m
}

func (m *MenuBar) WithKeyMap(keys focus.KeyMap) *MenuBar {
	m.keys = keys
	return m
}

func (m *MenuBar) WithLogger(log *logger.Logger) *MenuBar {
	m.log = log
	m.build()
	return m
}

func (m *MenuBar) build() {
	m.bar = focus.NewController(menuItems{m}, focus.Options{
		Orientation:  m.orientation,
		Activation:   focus.ActivationManual,
		NoLoop:       !m.loop,
		Disclosure:   true,
		OnFocus:      m.focusTrigger,
		OnActivate:   m.selectTop,
		OnDisclosure: m.disclosureChanged,
		Logger:       m.log,
	})

	m.subs = make([]*focus.Controller, len(m.items))
	for i, item := range m.items {
		if len(item.Items) == 0 {
			continue
		}
		parent := i
		m.subs[i] = focus.NewController(submenuItems{m: m, parent: parent}, focus.Options{
			Orientation: focus.Vertical,
			Activation:  focus.ActivationManual,
			NoLoop:      !m.loop,
			OnFocus:     m.focusOpenItem,
			OnActivate:  func(j int) { m.selectSub(parent, j) },
			Logger:      m.log,
		})
	}
}

// Items returns the menu definition.
func (m *MenuBar) Items() []MenuItem { return m.items }

// Open returns the index of the open submenu.
func (m *MenuBar) Open() (int, bool) { return m.bar.Open() }

// IsOpen reports whether the submenu of index is open.
func (m *MenuBar) IsOpen(index int) bool { return m.bar.IsOpen(index) }

// Current returns the top-level item holding the tab stop.
func (m *MenuBar) Current() (int, bool) { return m.bar.Current() }

// Trigger returns the element of top-level item index, or nil before Mount.
func (m *MenuBar) Trigger(index int) *focus.Node {
	if index < 0 || index >= len(m.triggers) {
		return nil
	}
	return m.triggers[index]
}

// OpenItem returns the element of item index in the open submenu.
func (m *MenuBar) OpenItem(index int) *focus.Node {
	if index < 0 || index >= len(m.open) {
		return nil
	}
	return m.open[index]
}

// Mount attaches the bar and starts watching for outside interaction.
func (m *MenuBar) Mount(doc *focus.Document, parent *focus.Node) {
	if doc == nil {
		return
	}
	if parent == nil {
		parent = doc.Root()
	}
	m.doc = doc
	m.root = focus.NewNode("", focus.KindContainer).WithLabel("menubar")
	doc.Append(parent, m.root)

	m.triggers = make([]*focus.Node, len(m.items))
	for i, item := range m.items {
		m.triggers[i] = focus.NewNode(item.ID, focus.KindButton).
			WithLabel(item.Label).
			WithDisabled(item.Disabled)
		doc.Append(m.root, m.triggers[i])
	}
	m.syncTabIndex()

	m.release = m.bar.WatchOutside(doc, func(el focus.Element) bool {
		return doc.Contains(m.root, el)
	})
}

// Unmount closes any submenu, releases the outside watcher and detaches the bar.
func (m *MenuBar) Unmount() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
	m.bar.CloseAll()
	if m.doc != nil {
		m.doc.Remove(m.root)
	}
	m.doc = nil
	m.root = nil
	m.triggers = nil
}

// FocusWithin reports whether focus is on a trigger or submenu item.
func (m *MenuBar) FocusWithin() bool {
	if m.doc == nil || m.root == nil {
		return false
	}
	active := m.doc.Active()
	return active != nil && m.doc.Contains(m.root, active)
}

// Focus moves focus to the bar's tab stop.
func (m *MenuBar) Focus() bool {
	return m.bar.Focus()
}

// Click handles a pointer press on top-level item index.
func (m *MenuBar) Click(index int) bool {
	if n := m.Trigger(index); n != nil {
		m.doc.PointerDown(n)
	}
	handled := m.bar.Click(index)
	m.syncTabIndex()
	return handled
}

// ClickItem handles a pointer press on item index of the open submenu.
func (m *MenuBar) ClickItem(index int) bool {
	open, ok := m.bar.Open()
	if !ok || m.subs[open] == nil {
		return false
	}
	if n := m.OpenItem(index); n != nil {
		m.doc.PointerDown(n)
	}
	return m.subs[open].Click(index)
}

// Update routes keys while focus is inside the bar. The open submenu sees
// keys first; what it leaves goes to the bar.
func (m *MenuBar) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.FocusWithin() {
		return nil, false
	}
	ev, ok := m.keys.Resolve(key)
	if !ok {
		return nil, false
	}

	if open, isOpen := m.bar.Open(); isOpen && m.focusInOpen() {
		if m.subs[open].HandleKey(ev) {
			return nil, true
		}
	}
	handled := m.bar.HandleKey(ev)
	m.syncTabIndex()
	return nil, handled
}

func (m *MenuBar) focusInOpen() bool {
	active := m.doc.Active()
	for _, n := range m.open {
		if active != nil && n.ElementID() == active.ElementID() {
			return true
		}
	}
	return false
}

func (m *MenuBar) disclosureChanged(ev focus.DisclosureEvent) {
	m.detachOpen()
	if ev.Kind == focus.DisclosureOpened {
		m.attachOpen(ev.Index)
		if sub := m.subs[ev.Index]; sub != nil {
			sub.Reset()
		}
	}
}

func (m *MenuBar) attachOpen(index int) {
	trigger := m.Trigger(index)
	if trigger == nil {
		return
	}
	for _, item := range m.items[index].Items {
		n := focus.NewNode(item.ID, focus.KindButton).
			WithLabel(item.Label).
			WithDisabled(item.Disabled).
			WithTabIndex(-1)
		m.doc.Append(trigger, n)
		m.open = append(m.open, n)
	}
}

func (m *MenuBar) detachOpen() {
	if m.doc != nil {
		for _, n := range m.open {
			m.doc.Remove(n)
		}
	}
	m.open = nil
}

func (m *MenuBar) focusTrigger(index int) {
	if n := m.Trigger(index); n != nil {
		m.focusNode(n)
	}
}

func (m *MenuBar) focusOpenItem(index int) {
	if n := m.OpenItem(index); n != nil {
		m.focusNode(n)
	}
}

func (m *MenuBar) focusNode(n *focus.Node) {
	if err := m.doc.Focus(n); err != nil {
		m.log.Error(err, "menu focus failed")
	}
}

func (m *MenuBar) selectTop(index int) {
	m.emitSelect(m.items[index].ID)
}

// selectSub activates a submenu item, closes the submenu and returns focus
// to its trigger.
func (m *MenuBar) selectSub(parent, index int) {
	m.emitSelect(m.items[parent].Items[index].ID)
	m.bar.CloseAll()
	m.bar.SetCurrent(parent)
	m.bar.Focus()
	m.syncTabIndex()
}

func (m *MenuBar) emitSelect(id string) {
	m.log.WithFields(map[string]any{"item": id}).Debug("menu item selected")
	if m.onSelect != nil {
		m.onSelect(id)
	}
}

func (m *MenuBar) syncTabIndex() {
	for i, n := range m.triggers {
		n.WithTabIndex(m.bar.TabIndex(i))
	}
}

func (m *MenuBar) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the bar and its open submenu, below the trigger for
// a horizontal bar and beside it for a vertical one.
func (m *MenuBar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	vertical := m.orientation == focus.Vertical
	labels := make([]string, len(m.items))
	offsets := make([]int, len(m.items))
	offset := 0
	for i, item := range m.items {
		label := item.Label
		switch {
		case len(item.Items) > 0 && vertical:
			label += " ▸"
		case len(item.Items) > 0:
			label += " ▾"
		}
		labels[i] = m.itemStyle(theme, item.Disabled, m.Trigger(i)).
			Inherit(m.openStyle(theme, i)).
			Padding(0, 1).
			Render(label)
		offsets[i] = offset
		if vertical {
			offset += lipgloss.Height(labels[i])
		} else {
			offset += lipgloss.Width(labels[i])
		}
	}

	style := m.ComputeStyle(theme)
	var bar string
	if vertical {
		bar = lipgloss.JoinVertical(lipgloss.Left, labels...)
	} else {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	}
	open, ok := m.bar.Open()
	if !ok {
		return style.Render(bar)
	}

	rows := make([]string, len(m.items[open].Items))
	for j, item := range m.items[open].Items {
		prefix := "  "
		if n := m.OpenItem(j); n != nil && m.doc.IsActive(n) {
			prefix = theme.States.Indicator + " "
		}
		rows[j] = m.itemStyle(theme, item.Disabled, m.OpenItem(j)).Render(prefix + item.Label)
	}
	submenu := lipgloss.NewStyle().
		Border(theme.Borders.Rounded).
		BorderForeground(theme.Palette.Neutral.Base)
	if vertical {
		submenu = submenu.MarginTop(offsets[open])
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, bar, submenu.Render(strings.Join(rows, "\n"))))
	}
	submenu = submenu.MarginLeft(offsets[open])
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, bar, submenu.Render(strings.Join(rows, "\n"))))
}

func (m *MenuBar) itemStyle(theme Theme, disabled bool, n *focus.Node) lipgloss.Style {
	switch {
	case disabled:
		return lipgloss.NewStyle().Inherit(theme.States.Disabled)
	case n != nil && m.doc != nil && m.doc.IsActive(n):
		return lipgloss.NewStyle().Inherit(theme.States.Focus)
	default:
		return lipgloss.NewStyle()
	}
}

func (m *MenuBar) openStyle(theme Theme, index int) lipgloss.Style {
	if m.bar.IsOpen(index) {
		return theme.States.Selected
	}
	return lipgloss.NewStyle()
}
