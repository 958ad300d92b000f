package focus

import (
	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

// Key is a normalized navigation key.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
)

// KeyEvent is a key press as seen by the router.
type KeyEvent struct {
	Key   Key
	Shift bool
}

// Orientation selects which arrow pair drives roving focus.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Activation decides whether moving focus also activates the item.
type Activation int

const (
	ActivationAutomatic Activation = iota
	ActivationManual
)

func (a Activation) String() string {
	if a == ActivationManual {
		return "manual"
	}
	return "automatic"
}

// RouterConfig wires a Router to the state it drives. Every field is optional;
// a router without Roving only handles Tab and Escape.
type RouterConfig struct {
	Orientation Orientation
	Activation  Activation
	Roving      *Roving
	Disclosure  *Disclosure
	Trap        *Trap
	Expandable  Expandable
	// OnActivate is called for Enter/Space on a leaf item, and on every focus
	// move under automatic activation.
	OnActivate func(index int)
	// OnEscape handles Escape when no disclosure is open. Returning false
	// lets the key bubble.
	OnEscape func() bool
	Logger   *logger.Logger
}

// Router maps key events onto roving, disclosure and trap operations. Every
// method reports whether it acted, which is when the host should stop the
// key from propagating.
type Router struct {
	cfg RouterConfig
}

// NewRouter creates a router.
func NewRouter(cfg RouterConfig) *Router {
	return &Router{cfg: cfg}
}

// Orientation returns the configured orientation.
func (r *Router) Orientation() Orientation {
	return r.cfg.Orientation
}

// Dispatch routes ev and reports whether it was handled.
func (r *Router) Dispatch(ev KeyEvent) bool {
	handled := r.dispatch(ev)
	if handled {
		r.cfg.Logger.WithFields(map[string]any{"key": int(ev.Key), "shift": ev.Shift}).Debug("key handled")
	}
	return handled
}

func (r *Router) dispatch(ev KeyEvent) bool {
	switch ev.Key {
	case KeyTab:
		if r.cfg.Trap == nil {
			return false
		}
		return r.cfg.Trap.HandleTab(ev.Shift)
	case KeyEscape:
		return r.escape()
	case KeyHome:
		return r.move(DirectionFirst)
	case KeyEnd:
		return r.move(DirectionLast)
	case KeyEnter, KeySpace:
		return r.activate()
	}

	next, prev, cross := r.axisKeys()
	switch ev.Key {
	case next:
		return r.move(DirectionNext)
	case prev:
		return r.move(DirectionPrevious)
	case cross:
		return r.expand()
	default:
		return false
	}
}

// axisKeys returns the keys moving forward and backward along the main axis,
// plus the cross-axis key that opens a submenu.
func (r *Router) axisKeys() (next, prev, cross Key) {
	if r.cfg.Orientation == Vertical {
		return KeyArrowDown, KeyArrowUp, KeyArrowRight
	}
	return KeyArrowRight, KeyArrowLeft, KeyArrowDown
}

func (r *Router) move(dir Direction) bool {
	rv := r.cfg.Roving
	if rv == nil || !rv.HasEnabled() {
		return false
	}
	if !rv.MoveTo(dir) {
		// Already at the target, or at an end without looping. The key still
		// belongs to the widget.
		return true
	}

	current, _ := rv.Current()
	if d := r.cfg.Disclosure; d != nil {
		if _, open := d.Open(); open {
			if r.expandable(current) {
				d.Show(current)
			} else {
				d.CloseAll()
			}
		}
	}
	if r.cfg.Activation == ActivationAutomatic && r.cfg.OnActivate != nil && !r.expandable(current) {
		r.cfg.OnActivate(current)
	}
	return true
}

func (r *Router) activate() bool {
	rv := r.cfg.Roving
	if rv == nil {
		return false
	}
	current, ok := rv.Current()
	if !ok {
		return false
	}
	if r.cfg.Disclosure != nil && r.expandable(current) {
		return r.cfg.Disclosure.Toggle(current)
	}
	if r.cfg.OnActivate == nil {
		return false
	}
	r.cfg.OnActivate(current)
	return true
}

func (r *Router) expand() bool {
	rv := r.cfg.Roving
	d := r.cfg.Disclosure
	if rv == nil || d == nil {
		return false
	}
	current, ok := rv.Current()
	if !ok || !r.expandable(current) {
		return false
	}
	if d.IsOpen(current) {
		return false
	}
	return d.Show(current)
}

// escape closes the open disclosure and hands focus back to its trigger.
// With nothing open the key bubbles unless the host claims it.
func (r *Router) escape() bool {
	if d := r.cfg.Disclosure; d != nil {
		if open, ok := d.Open(); ok {
			d.CloseAll()
			if rv := r.cfg.Roving; rv != nil {
				rv.SetCurrent(open)
				rv.Refocus()
			}
			return true
		}
	}
	if r.cfg.OnEscape != nil {
		return r.cfg.OnEscape()
	}
	return false
}

func (r *Router) expandable(index int) bool {
	if r.cfg.Expandable == nil {
		return false
	}
	return r.cfg.Expandable.HasChildren(index)
}
