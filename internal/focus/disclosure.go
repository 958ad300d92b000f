package focus

import (
	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

// DisclosureEventKind tells listeners what happened to the open entry.
type DisclosureEventKind int

const (
	DisclosureOpened DisclosureEventKind = iota
	DisclosureClosed
)

func (k DisclosureEventKind) String() string {
	if k == DisclosureOpened {
		return "opened"
	}
	return "closed"
}

// DisclosureEvent is emitted once per transition. Replacing an open entry is a
// single Opened event; Replaced carries the entry that was implicitly closed.
type DisclosureEvent struct {
	Kind     DisclosureEventKind
	Index    int
	Replaced int
}

// HasReplaced reports whether the transition closed another entry.
func (e DisclosureEvent) HasReplaced() bool {
	return e.Kind == DisclosureOpened && e.Replaced != none
}

// Disclosure tracks the single open submenu or panel of a widget.
// Invariant: at most one entry is open.
type Disclosure struct {
	items     Collection
	open      int
	listeners []func(DisclosureEvent)
	log       *logger.Logger
}

// NewDisclosure creates a disclosure with nothing open.
func NewDisclosure(items Collection, log *logger.Logger) *Disclosure {
	return &Disclosure{items: items, open: none, log: log}
}

// OnChange registers a listener for transitions.
func (d *Disclosure) OnChange(fn func(DisclosureEvent)) {
	d.listeners = append(d.listeners, fn)
}

// Open returns the open index, if any.
func (d *Disclosure) Open() (int, bool) {
	if d.open == none {
		return 0, false
	}
	return d.open, true
}

// IsOpen reports whether index is the open entry.
func (d *Disclosure) IsOpen(index int) bool {
	return d.open != none && d.open == index
}

// Toggle closes index if it is open, otherwise opens it in place of whatever
// was open. Disabled and out-of-range entries are ignored.
func (d *Disclosure) Toggle(index int) bool {
	if !d.usable(index) {
		return false
	}
	if d.open == index {
		d.open = none
		d.emit(DisclosureEvent{Kind: DisclosureClosed, Index: index, Replaced: none})
		return true
	}
	return d.Show(index)
}

// Show opens index, replacing any open entry. Showing the already open entry is a no-op.
func (d *Disclosure) Show(index int) bool {
	if !d.usable(index) {
		return false
	}
	if d.open == index {
		return false
	}
	previous := d.open
	d.open = index
	d.emit(DisclosureEvent{Kind: DisclosureOpened, Index: index, Replaced: previous})
	return true
}

// CloseAll closes the open entry. It reports whether anything was open.
func (d *Disclosure) CloseAll() bool {
	if d.open == none {
		return false
	}
	index := d.open
	d.open = none
	d.emit(DisclosureEvent{Kind: DisclosureClosed, Index: index, Replaced: none})
	return true
}

// Reconcile closes the open entry if it no longer exists or became disabled.
func (d *Disclosure) Reconcile() {
	if d.open != none && !d.usable(d.open) {
		d.CloseAll()
	}
}

func (d *Disclosure) usable(index int) bool {
	return index >= 0 && index < d.items.Len() && !d.items.Disabled(index)
}

func (d *Disclosure) emit(ev DisclosureEvent) {
	d.log.WithFields(map[string]any{"index": ev.Index, "replaced": ev.Replaced}).Debug("disclosure " + ev.Kind.String())
	for _, fn := range d.listeners {
		fn(ev)
	}
}
