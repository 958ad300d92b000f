package focus

import (
	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

// Options configures a Controller.
type Options struct {
	Orientation Orientation
	Activation  Activation
	// NoLoop stops next/previous at the ends instead of wrapping.
	NoLoop bool
	// Disclosure enables open/close tracking for expandable items.
	Disclosure bool

	// OnFocus is asked to move real focus to the item at index.
	OnFocus func(index int)
	// OnActivate fires for activated leaf items.
	OnActivate func(index int)
	// OnDisclosure fires for every disclosure transition.
	OnDisclosure func(DisclosureEvent)
	// OnEscape claims Escape when nothing is open.
	OnEscape func() bool

	Logger *logger.Logger
}

// Controller is the composite-widget focus controller a host widget owns:
// a roving index, an optional disclosure state and a key router over them.
type Controller struct {
	items      Collection
	roving     *Roving
	disclosure *Disclosure
	router     *Router
	opts       Options
}

// NewController builds a controller over items.
func NewController(items Collection, opts Options) *Controller {
	c := &Controller{items: items, opts: opts}

	c.roving = NewRoving(items,
		WithLoop(!opts.NoLoop),
		WithFocusRequest(c.requestFocus),
		WithRovingLogger(opts.Logger),
	)

	if opts.Disclosure {
		c.disclosure = NewDisclosure(items, opts.Logger)
		if opts.OnDisclosure != nil {
			c.disclosure.OnChange(opts.OnDisclosure)
		}
	}

	expandable, _ := items.(Expandable)
	c.router = NewRouter(RouterConfig{
		Orientation: opts.Orientation,
		Activation:  opts.Activation,
		Roving:      c.roving,
		Disclosure:  c.disclosure,
		Expandable:  expandable,
		OnActivate:  opts.OnActivate,
		OnEscape:    opts.OnEscape,
		Logger:      opts.Logger,
	})
	return c
}

// HandleKey routes a key event and reports whether it was consumed.
func (c *Controller) HandleKey(ev KeyEvent) bool {
	return c.router.Dispatch(ev)
}

// Current returns the roving current index.
func (c *Controller) Current() (int, bool) {
	return c.roving.Current()
}

// TabIndex returns the roving tabindex for index.
func (c *Controller) TabIndex(index int) int {
	return c.roving.TabIndex(index)
}

// SetCurrent moves the roving index without activating.
func (c *Controller) SetCurrent(index int) bool {
	return c.roving.SetCurrent(index)
}

// MoveTo applies a roving movement.
func (c *Controller) MoveTo(dir Direction) bool {
	return c.roving.MoveTo(dir)
}

// Focus asks the host to focus the current item.
func (c *Controller) Focus() bool {
	return c.roving.Refocus()
}

// Reset positions the roving index on the first enabled item.
func (c *Controller) Reset() bool {
	if !c.roving.HasEnabled() {
		return false
	}
	if !c.roving.MoveTo(DirectionFirst) {
		return c.roving.Refocus()
	}
	return true
}

// Open returns the open disclosure index.
func (c *Controller) Open() (int, bool) {
	if c.disclosure == nil {
		return 0, false
	}
	return c.disclosure.Open()
}

// IsOpen reports whether index is open.
func (c *Controller) IsOpen(index int) bool {
	return c.disclosure != nil && c.disclosure.IsOpen(index)
}

// Toggle toggles the disclosure of index.
func (c *Controller) Toggle(index int) bool {
	if c.disclosure == nil {
		return false
	}
	return c.disclosure.Toggle(index)
}

// CloseAll closes any open disclosure.
func (c *Controller) CloseAll() bool {
	if c.disclosure == nil {
		return false
	}
	return c.disclosure.CloseAll()
}

// Click handles pointer activation of index: it becomes current, gains focus,
// and is toggled when expandable or activated otherwise. Disabled items are ignored.
func (c *Controller) Click(index int) bool {
	if !c.roving.SetCurrent(index) {
		return false
	}
	c.roving.Refocus()

	if c.disclosure != nil {
		if e, ok := c.items.(Expandable); ok && e.HasChildren(index) {
			return c.disclosure.Toggle(index)
		}
		c.disclosure.CloseAll()
	}
	if c.opts.OnActivate != nil {
		c.opts.OnActivate(index)
	}
	return true
}

// Reconcile restores invariants after the item collection changed.
func (c *Controller) Reconcile() {
	c.roving.Reconcile()
	if c.disclosure != nil {
		c.disclosure.Reconcile()
	}
}

// WatchOutside closes the open disclosure whenever a pointer-down or focus
// move lands outside the widget. The returned release must be called on teardown.
func (c *Controller) WatchOutside(src InteractionSource, inside func(Element) bool) func() {
	return WatchOutside(src, inside, func(Interaction) {
		c.CloseAll()
	})
}

func (c *Controller) requestFocus(index int) {
	if c.opts.OnFocus != nil {
		c.opts.OnFocus(index)
	}
}

// WatchOutside subscribes to src and calls onOutside for interactions whose
// target is not inside the widget.
func WatchOutside(src InteractionSource, inside func(Element) bool, onOutside func(Interaction)) func() {
	if src == nil {
		return func() {}
	}
	return src.Subscribe(func(ev Interaction) {
		if ev.Target != nil && inside(ev.Target) {
			return
		}
		onOutside(ev)
	})
}
