package focus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// menuHarness wires two controllers the way a menu bar does: a horizontal bar
// with a disclosure and a vertical controller per submenu.
type menuHarness struct {
	doc      *Document
	bar      *Controller
	sub      *Controller
	barNodes []*Node
	subNodes []*Node
	menu     *Node
	selected []string
}

func newMenuHarness(t *testing.T) *menuHarness {
	t.Helper()

	h := &menuHarness{doc: NewDocument(nil)}
	barItems := Items{
		{ID: "dashboard", Children: []Item{{ID: "overview"}, {ID: "reports"}}},
		{ID: "settings"},
	}
	subItems := Items(barItems[0].Children)

	h.menu = NewNode("menubar", KindContainer)
	h.doc.Append(h.doc.Root(), h.menu)
	for _, it := range barItems {
		n := NewNode(it.ID, KindButton)
		h.doc.Append(h.menu, n)
		h.barNodes = append(h.barNodes, n)
	}
	for _, it := range subItems {
		n := NewNode(it.ID, KindButton)
		h.doc.Append(h.barNodes[0], n)
		h.subNodes = append(h.subNodes, n)
	}

	h.sub = NewController(subItems, Options{
		Orientation: Vertical,
		Activation:  ActivationManual,
		OnFocus:     func(i int) { require.NoError(t, h.doc.Focus(h.subNodes[i])) },
		OnActivate:  func(i int) { h.selected = append(h.selected, subItems[i].ID) },
	})
	h.bar = NewController(barItems, Options{
		Orientation: Horizontal,
		Activation:  ActivationManual,
		Disclosure:  true,
		OnFocus:     func(i int) { require.NoError(t, h.doc.Focus(h.barNodes[i])) },
		OnActivate:  func(i int) { h.selected = append(h.selected, barItems[i].ID) },
		OnDisclosure: func(ev DisclosureEvent) {
			if ev.Kind == DisclosureOpened {
				h.sub.Reset()
			}
		},
	})
	return h
}

func (h *menuHarness) key(k Key) bool {
	if _, open := h.bar.Open(); open && h.sub.HandleKey(KeyEvent{Key: k}) {
		return true
	}
	return h.bar.HandleKey(KeyEvent{Key: k})
}

func TestControllerMenuScenario(t *testing.T) {
	t.Parallel()

	h := newMenuHarness(t)

	require.True(t, h.bar.Click(0))
	require.True(t, h.bar.IsOpen(0))
	require.True(t, h.doc.IsActive(h.subNodes[0]), "opening focuses Overview")

	require.True(t, h.key(KeyArrowDown))
	require.True(t, h.doc.IsActive(h.subNodes[1]), "ArrowDown focuses Reports")

	require.True(t, h.key(KeyEscape))
	require.False(t, h.bar.IsOpen(0))
	require.True(t, h.doc.IsActive(h.barNodes[0]), "Escape returns focus to Dashboard")

	require.False(t, h.key(KeyEscape), "second Escape bubbles")
}

func TestControllerClickLeafActivates(t *testing.T) {
	t.Parallel()

	h := newMenuHarness(t)
	require.True(t, h.bar.Click(0))
	require.True(t, h.bar.Click(1))
	require.False(t, h.bar.IsOpen(0), "clicking a leaf closes the open submenu")
	require.Equal(t, []string{"settings"}, h.selected)
	require.True(t, h.doc.IsActive(h.barNodes[1]))
}

func TestControllerOutsideInteractionClosesAll(t *testing.T) {
	t.Parallel()

	h := newMenuHarness(t)
	outside := NewNode("search", KindInput)
	h.doc.Append(h.doc.Root(), outside)

	release := h.bar.WatchOutside(h.doc, func(el Element) bool { return h.doc.Contains(h.menu, el) })

	h.bar.Click(0)
	h.doc.PointerDown(h.subNodes[1])
	require.True(t, h.bar.IsOpen(0), "interaction inside keeps the submenu open")

	h.doc.PointerDown(outside)
	require.False(t, h.bar.IsOpen(0))

	h.bar.Click(0)
	require.NoError(t, h.doc.Focus(outside))
	require.False(t, h.bar.IsOpen(0), "focus leaving the widget closes it")

	release()
	h.bar.Click(0)
	h.doc.PointerDown(outside)
	require.True(t, h.bar.IsOpen(0), "released watchers no longer close")
}

func TestControllerTabsScenario(t *testing.T) {
	t.Parallel()

	doc := NewDocument(nil)
	tabs := Items{{ID: "A"}, {ID: "B", Disabled: true}, {ID: "C"}}
	nodes := make([]*Node, len(tabs))
	for i, tab := range tabs {
		nodes[i] = NewNode(tab.ID, KindButton).WithDisabled(tab.Disabled)
		doc.Append(doc.Root(), nodes[i])
	}

	active := 0
	c := NewController(tabs, Options{
		Orientation: Horizontal,
		Activation:  ActivationAutomatic,
		OnFocus:     func(i int) { require.NoError(t, doc.Focus(nodes[i])) },
		OnActivate:  func(i int) { active = i },
	})
	require.True(t, c.Focus())
	require.True(t, doc.IsActive(nodes[0]))

	require.True(t, c.HandleKey(KeyEvent{Key: KeyArrowRight}))
	require.True(t, doc.IsActive(nodes[2]), "B is skipped")
	require.Equal(t, 2, active)
	require.Equal(t, 0, c.TabIndex(2))
	require.Equal(t, -1, c.TabIndex(0))
}

func TestControllerDisabledClickIgnored(t *testing.T) {
	t.Parallel()

	c := NewController(items(false, true), Options{Disclosure: true})
	require.False(t, c.Click(1))
	idx, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestControllerWithoutDisclosure(t *testing.T) {
	t.Parallel()

	c := NewController(items(false, false), Options{})
	require.False(t, c.Toggle(0))
	require.False(t, c.CloseAll())
	require.False(t, c.IsOpen(0))
	_, open := c.Open()
	require.False(t, open)
	require.True(t, c.MoveTo(DirectionLast))
	require.True(t, c.SetCurrent(0))
}

func TestControllerWrapsByDefault(t *testing.T) {
	t.Parallel()

	c := NewController(items(false, false, false), Options{})
	require.True(t, c.MoveTo(DirectionPrevious))
	idx, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, 2, idx)

	stop := NewController(items(false, false, false), Options{NoLoop: true})
	require.False(t, stop.MoveTo(DirectionPrevious))
	idx, ok = stop.Current()
	require.True(t, ok)
	require.Equal(t, 0, idx)
}
