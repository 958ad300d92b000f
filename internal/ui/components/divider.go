package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a separator line, optionally with a centred label.
type Divider struct {
	BaseComponent
	char     string
	width    int
	label    string
	vertical bool
}

// NewDivider creates a horizontal divider that fills the available width.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// HorizontalDivider creates a horizontal divider.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider. Its width is its height in lines.
func VerticalDivider() *Divider {
	d := NewDivider().WithChar("│")
	d.vertical = true
	return d
}

// LabeledDivider creates a horizontal divider with label in the middle.
func LabeledDivider(label string) *Divider {
	return NewDivider().WithLabel(label)
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider across the available width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := ctx.Width(d.width, defaultDividerWidth)
	style := d.ComputeStyle(ctx.Theme)

	if d.vertical {
		lines := make([]string, width)
		for i := range lines {
			lines[i] = d.char
		}
		return style.Render(strings.Join(lines, "\n"))
	}

	if d.label == "" || lipgloss.Width(d.label)+4 > width {
		return style.Render(strings.Repeat(d.char, width))
	}

	label := " " + d.label + " "
	rest := width - lipgloss.Width(label)
	left := rest / 2
	right := rest - left
	return style.Render(strings.Repeat(d.char, left) + label + strings.Repeat(d.char, right))
}

// WithChar sets the line character. Empty values are ignored.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the width; zero means fill the available width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithLabel sets the centred label. Labels that do not fit are dropped.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("-")
}

// ThickDivider creates a heavy divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}
