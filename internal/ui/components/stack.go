package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// Axis is the direction a Stack lays its children out in.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Stack arranges children along one axis with an optional gap.
type Stack struct {
	BaseComponent
	children []ui.Renderable
	axis     Axis
	gap      int
	align    CrossAxisAlignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithAxis(AxisHorizontal)
}

func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children and joins them along the axis.
// Horizontal stacks split a bounded width evenly between children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.axis == AxisHorizontal && ctx.Constraints.MaxWidth > 0 && len(s.children) > 0 {
		available := ctx.Constraints.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			c := ctx.Constraints
			c.MaxWidth = available / len(s.children)
			childCtx = ctx.WithConstraints(c)
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	if len(views) == 0 {
		return style.Render("")
	}
	return style.Render(s.join(views))
}

func (s *Stack) join(views []string) string {
	if s.gap > 0 {
		var sep string
		if s.axis == AxisHorizontal {
			sep = strings.Repeat(" ", s.gap)
		} else {
			sep = strings.Repeat("\n", s.gap-1)
		}
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, sep)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}

	if s.axis == AxisHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(s.align.position(), views...)
}

func (s *Stack) WithAxis(axis Axis) *Stack {
	s.axis = axis
	return s
}

// WithGap sets the blank columns (horizontal) or lines (vertical) between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

func (s *Stack) WithAlign(align CrossAxisAlignment) *Stack {
	s.align = align
	return s
}

func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
