package focus

import (
	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

// InteractionSource is the outside-interaction port. Subscribers must release
// their subscription on teardown.
type InteractionSource interface {
	Subscribe(fn func(Interaction)) (unsubscribe func())
}

// Host is the element tree a focus trap operates on. Document implements it.
type Host interface {
	InteractionSource
	Observe(fn func()) (unobserve func())
	Active() Element
	Focus(el Element) error
	Attached(el Element) bool
	Contains(container, el Element) bool
	Tabbables(container Element) []Element
	MakeFocusable(el Element)
}

// Trap constrains Tab cycling to a container and restores focus on release.
type Trap struct {
	host      Host
	container Element
	previous  Element
	tabbables []Element
	active    bool

	unsubscribe func()
	unobserve   func()

	log *logger.Logger
}

// NewTrap creates an inactive trap bound to host.
func NewTrap(host Host, log *logger.Logger) *Trap {
	return &Trap{host: host, log: log}
}

// Active reports whether the trap is engaged.
func (t *Trap) Active() bool {
	return t.active
}

// Container returns the trapped container, or nil while inactive.
func (t *Trap) Container() Element {
	if !t.active {
		return nil
	}
	return t.container
}

// Tabbables returns the current ordered list of focusable descendants.
func (t *Trap) Tabbables() []Element {
	out := make([]Element, len(t.tabbables))
	copy(out, t.tabbables)
	return out
}

// Activate records previous for restoration and moves focus into container:
// the first tabbable descendant, or the container itself when there is none.
// Activating an engaged trap releases it first without restoring focus.
func (t *Trap) Activate(container, previous Element) error {
	if t.active {
		t.release()
	}
	t.container = container
	t.previous = previous
	t.active = true
	t.tabbables = t.host.Tabbables(container)

	t.unsubscribe = t.host.Subscribe(t.onInteraction)
	t.unobserve = t.host.Observe(t.Refresh)

	t.log.WithFields(map[string]any{"container": elementID(container), "tabbables": len(t.tabbables)}).Debug("focus trap activated")
	return t.focusInitial()
}

// HandleTab cycles focus forward or, with shift, backward, wrapping at both
// ends. It reports whether the key was consumed.
func (t *Trap) HandleTab(shift bool) bool {
	if !t.active {
		return false
	}
	if len(t.tabbables) == 0 {
		_ = t.focusInitial()
		return true
	}

	idx := t.indexOf(t.host.Active())
	last := len(t.tabbables) - 1

	var target int
	switch {
	case shift && idx <= 0:
		target = last
	case shift:
		target = idx - 1
	case idx < 0 || idx == last:
		target = 0
	default:
		target = idx + 1
	}

	if err := t.host.Focus(t.tabbables[target]); err != nil {
		t.log.Error(err, "focus trap cycle failed")
	}
	return true
}

// Refresh recomputes the tabbable list after the container changed and pulls
// focus back in if the focused element left the container.
func (t *Trap) Refresh() {
	if !t.active {
		return
	}
	t.tabbables = t.host.Tabbables(t.container)
	if !t.host.Attached(t.container) {
		return
	}
	if active := t.host.Active(); active == nil || !t.host.Contains(t.container, active) {
		_ = t.focusInitial()
	}
}

// Deactivate releases the trap and restores focus to the element focused
// before activation. A detached previous element is silently skipped.
func (t *Trap) Deactivate() {
	if !t.active {
		return
	}
	previous := t.previous
	t.release()

	if previous == nil {
		return
	}
	if !t.host.Attached(previous) {
		t.log.WithFields(map[string]any{"target": elementID(previous)}).Debug("focus restore skipped")
		return
	}
	if err := t.host.Focus(previous); err != nil {
		t.log.WithFields(map[string]any{"target": elementID(previous), "error": err.Error()}).Debug("focus restore skipped")
	}
}

func (t *Trap) release() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
	if t.unobserve != nil {
		t.unobserve()
		t.unobserve = nil
	}
	t.active = false
	t.container = nil
	t.previous = nil
	t.tabbables = nil
}

func (t *Trap) onInteraction(ev Interaction) {
	if !t.active || ev.Kind != InteractionFocusIn || ev.Target == nil {
		return
	}
	if t.host.Contains(t.container, ev.Target) {
		return
	}
	t.log.WithFields(map[string]any{"escaped_to": elementID(ev.Target)}).Debug("focus escaped trap")
	_ = t.focusInitial()
}

func (t *Trap) focusInitial() error {
	if len(t.tabbables) > 0 {
		return t.host.Focus(t.tabbables[0])
	}
	t.host.MakeFocusable(t.container)
	return t.host.Focus(t.container)
}

func (t *Trap) indexOf(el Element) int {
	if el == nil {
		return none
	}
	for i, candidate := range t.tabbables {
		if candidate.ElementID() == el.ElementID() {
			return i
		}
	}
	return none
}
