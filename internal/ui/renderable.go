// Package ui holds the contracts shared by every terminal component.
package ui

// Renderable is anything that can produce its terminal representation.
type Renderable interface {
	View() string
}
