package components

import (
	"strings"
)

// Spacer renders blank space of a fixed size.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: max(width, 0), height: max(height, 0)}
}

// HorizontalSpacer creates a one-line spacer of width columns.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates a spacer of height empty lines.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer.
func (s *Spacer) View() string {
	if s.width == 0 && s.height == 0 {
		return ""
	}
	line := strings.Repeat(" ", s.width)
	if s.height <= 1 {
		return line
	}
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (s *Spacer) Width() int  { return s.width }
func (s *Spacer) Height() int { return s.height }
