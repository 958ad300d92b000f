package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
)

// Textarea is a multi-line text input on top of bubbles/textarea.
//
// Uncontrolled textareas own their value. With WithValue the owner controls
// it: edits are reported through OnChange and the displayed value only
// changes when the owner calls SetValue.
type Textarea struct {
	BaseComponent
	label string
	model textarea.Model

	value      string
	controlled bool
	readOnly   bool
	onChange   func(value string)

	node *focus.Node
	doc  *focus.Document
}

// NewTextarea creates an empty uncontrolled textarea.
func NewTextarea(label string) *Textarea {
	model := textarea.New()
	model.ShowLineNumbers = false
	model.Prompt = "│ "
	model.SetWidth(40)
	model.SetHeight(3)

	return &Textarea{
		BaseComponent: NewBaseComponent(),
		label:         label,
		model:         model,
		node:          focus.NewNode("", focus.KindTextarea).WithLabel(label),
	}
}

func (t *Textarea) WithID(id string) *Textarea {
	if id != "" {
		t.node.ID = id
	}
	return t
}

func (t *Textarea) WithPlaceholder(placeholder string) *Textarea {
	t.model.Placeholder = placeholder
	return t
}

// WithDefaultValue seeds an uncontrolled textarea.
func (t *Textarea) WithDefaultValue(value string) *Textarea {
	if !t.controlled {
		t.model.SetValue(value)
	}
	return t
}

// WithValue makes the textarea controlled.
func (t *Textarea) WithValue(value string) *Textarea {
	t.controlled = true
	t.SetValue(value)
	return t
}

// WithMaxLength caps the number of characters. Zero means unlimited.
func (t *Textarea) WithMaxLength(limit int) *Textarea {
	t.model.CharLimit = max(limit, 0)
	return t
}

func (t *Textarea) WithSize(width, height int) *Textarea {
	t.model.SetWidth(width)
	t.model.SetHeight(height)
	return t
}

func (t *Textarea) WithReadOnly(readOnly bool) *Textarea {
	t.readOnly = readOnly
	return t
}

func (t *Textarea) WithDisabled(disabled bool) *Textarea {
	t.node.SetDisabled(disabled)
	return t
}

func (t *Textarea) WithOnChange(fn func(value string)) *Textarea {
	t.onChange = fn
	return t
}

// SetValue applies a value from the owner.
func (t *Textarea) SetValue(value string) {
	t.model.SetValue(value)
	t.value = t.model.Value()
}

// Value returns the current value.
func (t *Textarea) Value() string {
	if t.controlled {
		return t.value
	}
	return t.model.Value()
}

func (t *Textarea) Controlled() bool  { return t.controlled }
func (t *Textarea) Node() *focus.Node { return t.node }

func (t *Textarea) Focused() bool {
	return t.doc != nil && t.doc.IsActive(t.node)
}

func (t *Textarea) Mount(doc *focus.Document, parent *focus.Node) {
	if doc == nil {
		return
	}
	if parent == nil {
		parent = doc.Root()
	}
	t.doc = doc
	doc.Append(parent, t.node)
}

func (t *Textarea) Unmount() {
	t.model.Blur()
	if t.doc != nil {
		t.doc.Remove(t.node)
		t.doc = nil
	}
}

// Update edits the value while focused. Tab and Escape are left to the
// enclosing widget.
func (t *Textarea) Update(msg tea.Msg) (tea.Cmd, bool) {
	cmd := t.syncFocus()

	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var inner tea.Cmd
		t.model, inner = t.model.Update(msg)
		return tea.Batch(cmd, inner), false
	}
	if !t.Focused() {
		return cmd, false
	}
	switch key.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyEsc:
		return cmd, false
	}
	if t.readOnly {
		return cmd, true
	}

	before := t.Value()
	var inner tea.Cmd
	t.model, inner = t.model.Update(msg)
	after := t.model.Value()

	if after != before {
		if t.onChange != nil {
			t.onChange(after)
		}
		if t.controlled {
			t.model.SetValue(t.value)
		}
	}
	return tea.Batch(cmd, inner), true
}

// syncFocus mirrors document focus into the inner model.
func (t *Textarea) syncFocus() tea.Cmd {
	focused := t.Focused()
	switch {
	case focused && !t.model.Focused():
		return t.model.Focus()
	case !focused && t.model.Focused():
		t.model.Blur()
	}
	return nil
}

func (t *Textarea) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Textarea) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	label := TypographyStyle(theme, TypographyVariantEmphasis)
	switch {
	case t.node.Disabled():
		label = label.Inherit(theme.States.Disabled)
	case t.Focused():
		label = label.Inherit(theme.States.Focus)
	}
	return t.ComputeStyle(theme).Render(label.Render(t.label) + "\n" + t.model.View())
}
