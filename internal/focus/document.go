package focus

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

var (
	// ErrDetached is returned when focusing an element that is not part of the document.
	ErrDetached = errors.New("element is not attached to the document")
	// ErrNotFocusable is returned when focusing an element that cannot receive focus.
	ErrNotFocusable = errors.New("element is not focusable")
)

// Kind classifies a node the same way an HTML tag decides default focusability.
type Kind int

const (
	KindGeneric Kind = iota
	KindContainer
	KindAnchor
	KindButton
	KindInput
	KindSelect
	KindTextarea
)

// Element is the capability the controllers depend on. Concrete widgets only
// need to say whether they can take focus and whether they sit in tab order.
type Element interface {
	ElementID() string
	Focusable() bool
	Tabbable() bool
}

// Node is one element in a Document tree.
type Node struct {
	ID       string
	Kind     Kind
	Label    string
	Href     string
	disabled bool

	tabIndex    int
	hasTabIndex bool

	parent   *Node
	children []*Node
	doc      *Document
}

// NewNode creates a detached node. An empty id is replaced with a generated one.
func NewNode(id string, kind Kind) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	return &Node{ID: id, Kind: kind}
}

// WithLabel sets the accessible label.
func (n *Node) WithLabel(label string) *Node {
	n.Label = label
	return n
}

// WithHref sets the link target; anchors without one are not focusable.
func (n *Node) WithHref(href string) *Node {
	n.Href = href
	return n
}

// WithTabIndex sets an explicit tabindex.
func (n *Node) WithTabIndex(index int) *Node {
	n.tabIndex = index
	n.hasTabIndex = true
	return n
}

// WithDisabled sets the disabled flag without notifying observers.
func (n *Node) WithDisabled(disabled bool) *Node {
	n.disabled = disabled
	return n
}

// SetDisabled toggles the disabled flag and notifies document observers.
// Disabling the active element leaves the document without one.
func (n *Node) SetDisabled(disabled bool) {
	if n.disabled == disabled {
		return
	}
	n.disabled = disabled
	if n.doc == nil {
		return
	}
	if disabled && n.doc.active == n {
		n.doc.active = nil
	}
	n.doc.notifyMutation()
}

// Disabled reports whether the node is disabled.
func (n *Node) Disabled() bool {
	return n.disabled
}

// TabIndex returns the explicit tabindex, if any.
func (n *Node) TabIndex() (int, bool) {
	return n.tabIndex, n.hasTabIndex
}

// ClearTabIndex removes an explicit tabindex.
func (n *Node) ClearTabIndex() {
	n.tabIndex = 0
	n.hasTabIndex = false
}

// ElementID implements Element.
func (n *Node) ElementID() string {
	if n == nil {
		return ""
	}
	return n.ID
}

// Focusable implements Element. Anchors need an href, form controls must be
// enabled, and any node with an explicit tabindex can take focus.
func (n *Node) Focusable() bool {
	if n == nil || n.disabled {
		return false
	}
	if n.hasTabIndex {
		return true
	}
	switch n.Kind {
	case KindAnchor:
		return n.Href != ""
	case KindButton, KindInput, KindSelect, KindTextarea:
		return true
	default:
		return false
	}
}

// Tabbable implements Element: focusable and not removed from tab order.
func (n *Node) Tabbable() bool {
	if !n.Focusable() {
		return false
	}
	return !n.hasTabIndex || n.tabIndex >= 0
}

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Interaction is a pointer or focus event observed by the document.
type Interaction struct {
	Kind   InteractionKind
	Target Element
}

// InteractionKind identifies the interaction type.
type InteractionKind int

const (
	InteractionPointerDown InteractionKind = iota
	InteractionFocusIn
)

type subscription struct {
	id int
	fn func(Interaction)
}

type observer struct {
	id int
	fn func()
}

// Document is the in-memory element tree that stands in for the DOM. It owns
// the single active element and broadcasts interactions and mutations.
type Document struct {
	root   *Node
	active *Node

	subs      []subscription
	observers []observer
	nextID    int

	log *logger.Logger
}

// NewDocument creates an empty document with a container root.
func NewDocument(log *logger.Logger) *Document {
	d := &Document{log: log}
	root := NewNode("root", KindContainer)
	root.doc = d
	d.root = root
	return d
}

// Root returns the root container.
func (d *Document) Root() *Node {
	return d.root
}

// Append attaches child (and its subtree) under parent, moving it if it
// already had a parent.
func (d *Document) Append(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = parent
	parent.children = append(parent.children, child)
	if d.attachedNode(parent) {
		setDocument(child, d)
	}
	d.notifyMutation()
}

// Remove detaches node and its subtree. If the active element was inside the
// subtree the document is left without an active element.
func (d *Document) Remove(node *Node) {
	if node == nil || node == d.root || node.parent == nil {
		return
	}
	if d.active != nil && isAncestor(node, d.active) {
		d.active = nil
	}
	node.parent.removeChild(node)
	node.parent = nil
	setDocument(node, nil)
	d.notifyMutation()
}

// Attached reports whether el is a node reachable from the root.
func (d *Document) Attached(el Element) bool {
	n, ok := el.(*Node)
	if !ok || n == nil {
		return false
	}
	return d.attachedNode(n)
}

func (d *Document) attachedNode(n *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == d.root {
			return true
		}
	}
	return false
}

// Contains reports whether el is ancestor itself or one of its descendants.
func (d *Document) Contains(ancestor, el Element) bool {
	a, ok := ancestor.(*Node)
	if !ok || a == nil {
		return false
	}
	n, ok := el.(*Node)
	if !ok || n == nil {
		return false
	}
	return isAncestor(a, n)
}

// Active returns the focused element, or nil when nothing has focus.
func (d *Document) Active() Element {
	if d.active == nil {
		return nil
	}
	return d.active
}

// ActiveNode is Active with the concrete type.
func (d *Document) ActiveNode() *Node {
	return d.active
}

// IsActive reports whether el currently has focus.
func (d *Document) IsActive(el Element) bool {
	n, ok := el.(*Node)
	return ok && n != nil && n == d.active
}

// Focus moves focus to el and broadcasts a focus-in interaction.
func (d *Document) Focus(el Element) error {
	n, ok := el.(*Node)
	if !ok || n == nil {
		return trelliserrors.NewFocusError(elementID(el), ErrNotFocusable)
	}
	if !d.attachedNode(n) {
		return trelliserrors.NewFocusError(n.ID, ErrDetached)
	}
	if !n.Focusable() {
		return trelliserrors.NewFocusError(n.ID, ErrNotFocusable)
	}
	if d.active == n {
		return nil
	}
	d.active = n
	d.log.WithFields(map[string]any{"target": n.ID}).Debug("focus moved")
	d.dispatch(Interaction{Kind: InteractionFocusIn, Target: n})
	return nil
}

// Blur clears the active element.
func (d *Document) Blur() {
	d.active = nil
}

// PointerDown broadcasts a pointer-down on el. Focusable targets also take
// focus, matching what a click does.
func (d *Document) PointerDown(el Element) {
	d.dispatch(Interaction{Kind: InteractionPointerDown, Target: el})
	if n, ok := el.(*Node); ok && n != nil && n.Focusable() && d.attachedNode(n) {
		_ = d.Focus(n)
	}
}

// Subscribe registers fn for every interaction. The returned function
// releases the subscription and is safe to call more than once.
func (d *Document) Subscribe(fn func(Interaction)) func() {
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range d.subs {
			if s.id == id {
				d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Observe registers fn for tree mutations.
func (d *Document) Observe(fn func()) func() {
	d.nextID++
	id := d.nextID
	d.observers = append(d.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range d.observers {
			if o.id == id {
				d.observers = append(d.observers[:i:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

// Tabbables lists the tabbable descendants of container. Positive tabindex
// values come first in ascending order, then document order.
func (d *Document) Tabbables(container Element) []Element {
	c, ok := container.(*Node)
	if !ok || c == nil {
		return nil
	}
	var nodes []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, child := range n.children {
			if child.Tabbable() {
				nodes = append(nodes, child)
			}
			walk(child)
		}
	}
	walk(c)

	sort.SliceStable(nodes, func(i, j int) bool {
		return tabOrder(nodes[i]) < tabOrder(nodes[j])
	})

	out := make([]Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// MakeFocusable gives el a synthetic tabindex of -1 when it cannot take focus
// on its own, so a container can hold focus without entering tab order.
func (d *Document) MakeFocusable(el Element) {
	n, ok := el.(*Node)
	if !ok || n == nil || n.Focusable() {
		return
	}
	n.WithTabIndex(-1)
}

// Find looks up an attached node by id.
func (d *Document) Find(id string) *Node {
	var found *Node
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if n.ID == id {
			found = n
			return true
		}
		for _, child := range n.children {
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(d.root)
	return found
}

func (d *Document) dispatch(ev Interaction) {
	subs := make([]subscription, len(d.subs))
	copy(subs, d.subs)
	for _, s := range subs {
		s.fn(ev)
	}
}

func (d *Document) notifyMutation() {
	observers := make([]observer, len(d.observers))
	copy(observers, d.observers)
	for _, o := range observers {
		o.fn()
	}
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			return
		}
	}
}

func setDocument(n *Node, d *Document) {
	n.doc = d
	for _, child := range n.children {
		setDocument(child, d)
	}
}

func isAncestor(ancestor, n *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// tabOrder sorts positive tabindex values ahead of everything else.
func tabOrder(n *Node) int {
	if n.hasTabIndex && n.tabIndex > 0 {
		return n.tabIndex
	}
	return int(^uint(0) >> 1)
}

func elementID(el Element) string {
	if el == nil {
		return ""
	}
	return el.ElementID()
}
