// Package components provides theme-aware, keyboard-accessible terminal
// components built on lipgloss and bubbletea.
//
// # Rendering
//
// Every component implements ui.Renderable. View renders with the default
// theme; ViewWithContext takes an explicit RenderContext so that themes and
// width constraints flow down without global state:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.VStack(title, components.HorizontalDivider()).ViewWithContext(ctx)
//
// Styling is composed from StyleFunc modifiers that read the theme:
//
//	components.NewText("Saved").WithAppliers(components.Foreground(components.PaletteSuccess))
//
// # Interaction
//
// Interactive components (Button, Checkbox, Textarea, Tabs, MenuBar, Modal)
// own one or more focus.Node values. Mount attaches them to a focus.Document
// and Unmount detaches them and releases every subscription and pending task.
// Keyboard input arrives through Update as bubbletea messages; a component
// only reacts to keys while focus is inside it, and Update reports through
// its return value whether the key was consumed.
//
// Composite widgets delegate navigation to focus.Controller:
//
//   - Tabs: roving tab stop with automatic or manual activation.
//   - MenuBar: horizontal bar with a single open submenu that closes on
//     outside interaction and on Escape.
//   - Modal: focus trap with restoration and host-selected dismissal policies.
package components
