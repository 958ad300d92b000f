package focus

import (
	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

// Collection is the view a controller needs of a host widget's items. The
// controller never copies the items; it only keeps indices into them.
type Collection interface {
	Len() int
	Disabled(index int) bool
}

// Expandable is implemented by collections whose items can own a submenu or panel.
type Expandable interface {
	HasChildren(index int) bool
}

// Item is one addressable entry in a composite widget.
type Item struct {
	ID       string
	Disabled bool
	Children []Item
}

// Items adapts a slice of Item to Collection and Expandable.
type Items []Item

func (it Items) Len() int { return len(it) }

func (it Items) Disabled(index int) bool {
	if index < 0 || index >= len(it) {
		return true
	}
	return it[index].Disabled
}

func (it Items) HasChildren(index int) bool {
	if index < 0 || index >= len(it) {
		return false
	}
	return len(it[index].Children) > 0
}

// Direction is a requested roving movement.
type Direction int

const (
	DirectionNext Direction = iota
	DirectionPrevious
	DirectionFirst
	DirectionLast
)

func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrevious:
		return "previous"
	case DirectionFirst:
		return "first"
	case DirectionLast:
		return "last"
	default:
		return "unknown"
	}
}

const none = -1

// Roving tracks which item owns the single tab stop of a composite widget.
// Invariant: current is an enabled index, or none when no item is enabled.
type Roving struct {
	items    Collection
	current  int
	loop     bool
	onChange func(index int)
	log      *logger.Logger
}

// RovingOption configures a Roving index.
type RovingOption func(*Roving)

// WithLoop controls wrapping at the ends for next/previous. Defaults to true.
func WithLoop(loop bool) RovingOption {
	return func(r *Roving) { r.loop = loop }
}

// WithFocusRequest registers the callback invoked when the current item
// changes and the host should move real focus.
func WithFocusRequest(fn func(index int)) RovingOption {
	return func(r *Roving) { r.onChange = fn }
}

// WithRovingLogger attaches a logger for transition tracing.
func WithRovingLogger(log *logger.Logger) RovingOption {
	return func(r *Roving) { r.log = log }
}

// NewRoving creates a roving index positioned on the first enabled item.
func NewRoving(items Collection, opts ...RovingOption) *Roving {
	r := &Roving{items: items, current: none, loop: true}
	for _, opt := range opts {
		opt(r)
	}
	r.current = r.scan(0, 1, false)
	return r
}

// Current returns the current index, or false when there is none.
func (r *Roving) Current() (int, bool) {
	if r.current == none {
		return 0, false
	}
	return r.current, true
}

// SetCurrent makes index current. Disabled or out-of-range indices are rejected.
func (r *Roving) SetCurrent(index int) bool {
	if !r.enabled(index) {
		return false
	}
	r.change(index)
	return true
}

// MoveTo applies a movement. It returns false when nothing changed, which
// includes the all-disabled case.
func (r *Roving) MoveTo(dir Direction) bool {
	n := r.items.Len()
	if n == 0 {
		return false
	}

	var target int
	switch dir {
	case DirectionFirst:
		target = r.scan(0, 1, false)
	case DirectionLast:
		target = r.scan(n-1, -1, false)
	case DirectionNext:
		if r.current == none {
			target = r.scan(0, 1, false)
		} else {
			target = r.scan(r.current+1, 1, r.loop)
		}
	case DirectionPrevious:
		if r.current == none {
			target = r.scan(n-1, -1, false)
		} else {
			target = r.scan(r.current-1, -1, r.loop)
		}
	default:
		return false
	}

	if target == none || target == r.current {
		return false
	}
	r.log.WithFields(map[string]any{"direction": dir.String(), "from": r.current, "to": target}).Debug("roving index moved")
	r.change(target)
	return true
}

// Refocus asks the host to focus the current item again without moving.
func (r *Roving) Refocus() bool {
	if r.current == none {
		return false
	}
	if r.onChange != nil {
		r.onChange(r.current)
	}
	return true
}

// Reconcile restores the invariant after the collection changed: a current
// item that disappeared or became disabled hands over to the next enabled item.
func (r *Roving) Reconcile() {
	if r.enabled(r.current) {
		return
	}
	start := r.current
	if start < 0 || start >= r.items.Len() {
		start = 0
	}
	next := r.scan(start, 1, true)
	if next == none {
		r.current = none
		return
	}
	r.change(next)
}

// TabIndex returns the roving tabindex for index: 0 for the current item, -1 otherwise.
func (r *Roving) TabIndex(index int) int {
	if index == r.current && r.current != none {
		return 0
	}
	return -1
}

// HasEnabled reports whether any item can become current.
func (r *Roving) HasEnabled() bool {
	return r.scan(0, 1, false) != none
}

func (r *Roving) change(index int) {
	changed := index != r.current
	r.current = index
	if changed && r.onChange != nil {
		r.onChange(index)
	}
}

func (r *Roving) enabled(index int) bool {
	return index >= 0 && index < r.items.Len() && !r.items.Disabled(index)
}

// scan walks from start in step direction and returns the first enabled
// index. With wrap it visits every index once.
func (r *Roving) scan(start, step int, wrap bool) int {
	n := r.items.Len()
	if n == 0 {
		return none
	}
	if wrap {
		idx := wrapIndex(start, n)
		for i := 0; i < n; i++ {
			if !r.items.Disabled(idx) {
				return idx
			}
			idx = wrapIndex(idx+step, n)
		}
		return none
	}
	for idx := start; idx >= 0 && idx < n; idx += step {
		if !r.items.Disabled(idx) {
			return idx
		}
	}
	return none
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
