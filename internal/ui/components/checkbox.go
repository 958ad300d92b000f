package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
)

// CheckState is the visible state of a checkbox.
type CheckState int

const (
	CheckStateUnchecked CheckState = iota
	CheckStateChecked
	CheckStateIndeterminate
)

func (s CheckState) String() string {
	switch s {
	case CheckStateChecked:
		return "checked"
	case CheckStateIndeterminate:
		return "mixed"
	default:
		return "unchecked"
	}
}

// Checkbox is a labelled boolean input.
//
// In uncontrolled mode the checkbox keeps its own state, seeded by
// WithDefaultChecked. WithChecked switches it to controlled mode: toggling
// only reports the requested value through OnChange and the owner applies it
// with SetChecked.
type Checkbox struct {
	BaseComponent
	label string

	checked       bool
	indeterminate bool
	controlled    bool
	readOnly      bool
	onChange      func(checked bool)

	node *focus.Node
	doc  *focus.Document
	keys focus.KeyMap
}

// NewCheckbox creates an unchecked, uncontrolled checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		label:         label,
		node:          focus.NewNode("", focus.KindInput).WithLabel(label),
		keys:          focus.DefaultKeyMap(),
	}
}

func (c *Checkbox) WithID(id string) *Checkbox {
	if id != "" {
		c.node.ID = id
	}
	return c
}

// WithDefaultChecked seeds the state of an uncontrolled checkbox.
func (c *Checkbox) WithDefaultChecked(checked bool) *Checkbox {
	if !c.controlled {
		c.checked = checked
	}
	return c
}

// WithChecked makes the checkbox controlled with the given value.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.controlled = true
	c.checked = checked
	return c
}

// WithIndeterminate shows the mixed state until the next change.
func (c *Checkbox) WithIndeterminate(indeterminate bool) *Checkbox {
	c.indeterminate = indeterminate
	return c
}

func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.node.SetDisabled(disabled)
	return c
}

// WithReadOnly keeps the checkbox focusable but ignores toggles.
func (c *Checkbox) WithReadOnly(readOnly bool) *Checkbox {
	c.readOnly = readOnly
	return c
}

func (c *Checkbox) WithOnChange(fn func(checked bool)) *Checkbox {
	c.onChange = fn
	return c
}

func (c *Checkbox) WithKeyMap(keys focus.KeyMap) *Checkbox {
	c.keys = keys
	return c
}

func (c *Checkbox) WithAppliers(appliers ...StyleFunc) *Checkbox {
	c.SetAppliers(appliers...)
	return c
}

// SetChecked applies a value from the owner and clears the mixed state.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
	c.indeterminate = false
}

func (c *Checkbox) Checked() bool       { return c.checked }
func (c *Checkbox) Indeterminate() bool { return c.indeterminate }
func (c *Checkbox) Controlled() bool    { return c.controlled }
func (c *Checkbox) Disabled() bool      { return c.node.Disabled() }
func (c *Checkbox) ReadOnly() bool      { return c.readOnly }
func (c *Checkbox) Node() *focus.Node   { return c.node }

// State combines the checked and mixed flags.
func (c *Checkbox) State() CheckState {
	switch {
	case c.indeterminate:
		return CheckStateIndeterminate
	case c.checked:
		return CheckStateChecked
	default:
		return CheckStateUnchecked
	}
}

func (c *Checkbox) Focused() bool {
	return c.doc != nil && c.doc.IsActive(c.node)
}

// Toggle requests the opposite value; a mixed checkbox becomes checked.
// Disabled and read-only checkboxes ignore it.
func (c *Checkbox) Toggle() bool {
	if c.Disabled() || c.readOnly {
		return false
	}
	next := !c.checked
	if c.indeterminate {
		next = true
	}
	if !c.controlled {
		c.SetChecked(next)
	}
	if c.onChange != nil {
		c.onChange(next)
	}
	return true
}

// Click focuses and toggles the checkbox.
func (c *Checkbox) Click() bool {
	if c.doc != nil {
		c.doc.PointerDown(c.node)
	}
	return c.Toggle()
}

func (c *Checkbox) Mount(doc *focus.Document, parent *focus.Node) {
	if doc == nil {
		return
	}
	if parent == nil {
		parent = doc.Root()
	}
	c.doc = doc
	doc.Append(parent, c.node)
}

func (c *Checkbox) Unmount() {
	if c.doc != nil {
		c.doc.Remove(c.node)
		c.doc = nil
	}
}

// Update toggles on Space while focused.
func (c *Checkbox) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !c.Focused() {
		return nil, false
	}
	ev, ok := c.keys.Resolve(key)
	if !ok || ev.Key != focus.KeySpace {
		return nil, false
	}
	return nil, c.Toggle()
}

func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	var box string
	switch c.State() {
	case CheckStateChecked:
		box = "[x]"
	case CheckStateIndeterminate:
		box = "[-]"
	default:
		box = "[ ]"
	}

	theme := ctx.Theme
	style := c.ComputeStyle(theme)
	switch {
	case c.Disabled():
		style = style.Inherit(theme.States.Disabled)
	case c.Focused():
		style = style.Inherit(theme.States.Focus)
	}
	return style.Render(box + " " + c.label)
}
