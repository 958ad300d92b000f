package components

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/task"
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantDanger
	ButtonVariantWarning
	ButtonVariantGhost
)

type ButtonSize int

const (
	ButtonSizeSmall ButtonSize = iota
	ButtonSizeMedium
	ButtonSizeLarge
)

// ButtonDoneMsg reports that a button's click action finished. Err is the
// action's own error; the button never swallows it.
type ButtonDoneMsg struct {
	ButtonID string
	Err      error
}

// Button is a focusable push button. When its click action is asynchronous the
// button shows a spinner and ignores activation until the action settles.
type Button struct {
	BaseComponent
	label   string
	variant ButtonVariant
	size    ButtonSize

	node *focus.Node
	doc  *focus.Document
	keys focus.KeyMap

	onClick task.Func
	ctx     context.Context
	runner  *task.Runner
	spinner spinner.Model
	loading bool

	log *logger.Logger
}

// NewButton creates a medium primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
		size:          ButtonSizeMedium,
		node:          focus.NewNode("", focus.KindButton).WithLabel(label),
		keys:          focus.DefaultKeyMap(),
		ctx:           context.Background(),
		runner:        task.NewRunner(context.Background()),
		spinner:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// WithID replaces the generated element id.
func (b *Button) WithID(id string) *Button {
	if id != "" {
		b.node.ID = id
	}
	return b
}

func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

func (b *Button) WithDisabled(disabled bool) *Button {
	b.node.SetDisabled(disabled)
	return b
}

// WithOnClick sets the click action. It runs as a bubbletea command and its
// context is cancelled when the button is unmounted.
func (b *Button) WithOnClick(fn task.Func) *Button {
	b.onClick = fn
	return b
}

// WithContext scopes click actions to ctx. Call before the first click.
func (b *Button) WithContext(ctx context.Context) *Button {
	b.ctx = ctx
	b.runner = task.NewRunner(ctx)
	return b
}

func (b *Button) WithKeyMap(keys focus.KeyMap) *Button {
	b.keys = keys
	return b
}

func (b *Button) WithLogger(log *logger.Logger) *Button {
	b.log = log
	return b
}

func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// ID returns the element id.
func (b *Button) ID() string { return b.node.ID }

// Node returns the button's element.
func (b *Button) Node() *focus.Node { return b.node }

func (b *Button) Label() string { return b.label }

func (b *Button) Disabled() bool { return b.node.Disabled() }

// Loading reports whether a click action is pending.
func (b *Button) Loading() bool { return b.loading }

// Focused reports whether the button holds focus.
func (b *Button) Focused() bool {
	return b.doc != nil && b.doc.IsActive(b.node)
}

// Mount attaches the button under parent.
func (b *Button) Mount(doc *focus.Document, parent *focus.Node) {
	if doc == nil {
		return
	}
	if parent == nil {
		parent = doc.Root()
	}
	if b.runner.Closed() {
		b.runner = task.NewRunner(b.ctx)
	}
	b.doc = doc
	doc.Append(parent, b.node)
}

// Unmount detaches the button and cancels a pending action. Its result will
// not update the button.
func (b *Button) Unmount() {
	b.runner.Close()
	b.loading = false
	if b.doc != nil {
		b.doc.Remove(b.node)
		b.doc = nil
	}
}

// Click activates the button. Disabled or busy buttons ignore it.
func (b *Button) Click() tea.Cmd {
	if b.Disabled() || b.loading || b.onClick == nil {
		return nil
	}
	if b.doc != nil {
		b.doc.PointerDown(b.node)
	}
	return b.press()
}

func (b *Button) press() tea.Cmd {
	cmd, ok := b.runner.Start(b.onClick)
	if !ok {
		return nil
	}
	b.loading = true
	b.log.WithFields(map[string]any{"button": b.node.ID}).Debug("button action started")
	return tea.Batch(cmd, b.spinner.Tick)
}

// Update handles activation keys while focused, spinner ticks and the
// completion of the click action.
func (b *Button) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case task.DoneMsg:
		if !b.runner.Finish(msg) {
			return nil, false
		}
		b.loading = false
		if msg.Err != nil {
			b.log.WithFields(map[string]any{"button": b.node.ID}).Error(msg.Err, "button action failed")
		}
		done := ButtonDoneMsg{ButtonID: b.node.ID, Err: msg.Err}
		return func() tea.Msg { return done }, true

	case spinner.TickMsg:
		if !b.loading || msg.ID != b.spinner.ID() {
			return nil, false
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return cmd, true

	case tea.KeyMsg:
		if !b.Focused() || b.Disabled() {
			return nil, false
		}
		ev, ok := b.keys.Resolve(msg)
		if !ok || (ev.Key != focus.KeyEnter && ev.Key != focus.KeySpace) {
			return nil, false
		}
		if b.loading || b.onClick == nil {
			return nil, true
		}
		return b.press(), true
	}
	return nil, false
}

func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Button) ViewWithContext(ctx RenderContext) string {
	content := b.label
	if b.loading {
		content = b.spinner.View() + " " + b.label
	}
	return b.computeStyle(ctx.Theme).Render(content)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.size); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	switch {
	case b.Disabled():
		style = style.Inherit(theme.States.Disabled).Faint(true)
	case b.Focused():
		style = style.Bold(true).Underline(true)
	}
	if b.loading {
		style = style.Faint(true)
	}
	return style
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// DangerButton creates a destructive-action button.
func DangerButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDanger)
}

// GhostButton creates an outlined button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}
