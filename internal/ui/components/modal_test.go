package components

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/focus"
)

type modalFixture struct {
	doc     *focus.Document
	trigger *focus.Node
	cancel  *Button
	confirm *Button
	modal   *Modal
	reasons []CloseReason
}

func newModalFixture(t *testing.T, configure func(*Modal)) *modalFixture {
	t.Helper()
	f := &modalFixture{}
	f.doc, f.trigger = newDoc()
	require.NoError(t, f.doc.Focus(f.trigger))

	f.cancel = SecondaryButton("Cancel").WithID("cancel")
	f.confirm = PrimaryButton("Confirm").WithID("confirm")
	f.modal = NewModal("Delete project?").
		WithBody(NewText("This cannot be undone.")).
		WithControls(f.cancel, f.confirm).
		WithOnClose(func(r CloseReason) { f.reasons = append(f.reasons, r) })
	if configure != nil {
		configure(f.modal)
	}
	f.modal.Mount(f.doc, nil)
	return f
}

func (f *modalFixture) press(key string) bool {
	_, handled := f.modal.Update(keyMsg(key))
	return handled
}

func TestModalTrapsTabAndRestoresFocus(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t, nil)
	require.NoError(t, f.modal.Open())
	assert.True(t, f.cancel.Focused(), "opening focuses the first control")

	require.True(t, f.press("tab"))
	assert.True(t, f.confirm.Focused())
	require.True(t, f.press("tab"))
	assert.True(t, f.cancel.Focused(), "Tab from the last control wraps to the first")
	require.True(t, f.press("shift+tab"))
	assert.True(t, f.confirm.Focused(), "Shift+Tab from the first wraps to the last")

	require.True(t, f.press("esc"))
	assert.False(t, f.modal.IsOpen())
	assert.True(t, f.doc.IsActive(f.trigger), "focus returns to the trigger")
	assert.Equal(t, []CloseReason{CloseReasonEscape}, f.reasons)
	assert.False(t, f.doc.Attached(f.confirm.Node()))
	assert.Empty(t, f.modal.View())
}

func TestModalEscapePolicy(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t, func(m *Modal) { m.WithCloseOnEscape(false) })
	require.NoError(t, f.modal.Open())

	assert.False(t, f.press("esc"), "Escape bubbles when the modal does not close on it")
	assert.True(t, f.modal.IsOpen())
	assert.Empty(t, f.reasons)
}

func TestModalOverlayPolicy(t *testing.T) {
	t.Parallel()

	blocked := newModalFixture(t, func(m *Modal) { m.WithCloseOnOverlay(false) })
	require.NoError(t, blocked.modal.Open())
	blocked.modal.PressOverlay()
	assert.True(t, blocked.modal.IsOpen())

	f := newModalFixture(t, nil)
	require.NoError(t, f.modal.Open())
	f.doc.PointerDown(f.modal.Dialog())
	assert.True(t, f.modal.IsOpen(), "pressing the dialog itself is not an overlay press")

	f.modal.PressOverlay()
	assert.False(t, f.modal.IsOpen())
	assert.Equal(t, []CloseReason{CloseReasonOverlay}, f.reasons)
	assert.True(t, f.doc.IsActive(f.trigger))
}

func TestModalPullsEscapedFocusBack(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t, nil)
	require.NoError(t, f.modal.Open())
	require.True(t, f.press("tab"))

	require.NoError(t, f.doc.Focus(f.trigger))
	assert.True(t, f.cancel.Focused(), "focus leaving the dialog is pulled back to the first control")
}

func TestModalWithoutControlsFocusesDialog(t *testing.T) {
	t.Parallel()

	doc, trigger := newDoc()
	require.NoError(t, doc.Focus(trigger))
	modal := NewModal("Notice").WithBody(NewText("Saved."))
	modal.Mount(doc, nil)

	require.NoError(t, modal.Open())
	assert.True(t, doc.IsActive(modal.Dialog()))

	_, handled := modal.Update(keyMsg("tab"))
	assert.True(t, handled)
	assert.True(t, doc.IsActive(modal.Dialog()))

	modal.Close()
	assert.True(t, doc.IsActive(trigger))
}

func TestModalSkipsRestoreOfDetachedTrigger(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t, nil)
	require.NoError(t, f.modal.Open())

	f.doc.Remove(f.trigger)
	f.modal.Close()
	assert.Nil(t, f.doc.Active(), "detached triggers are not refocused")
	assert.Equal(t, []CloseReason{CloseReasonProgrammatic}, f.reasons)
}

func TestModalReopenAndRouteControlKeys(t *testing.T) {
	t.Parallel()

	pressed := 0
	f := newModalFixture(t, nil)
	f.confirm.WithOnClick(func(ctx context.Context) error {
		pressed++
		return nil
	})

	require.NoError(t, f.modal.Open())
	f.modal.Close()
	require.NoError(t, f.modal.Open())
	require.True(t, f.press("tab"))

	cmd, handled := f.modal.Update(keyMsg("enter"))
	require.True(t, handled)
	require.True(t, f.confirm.Loading())

	for _, msg := range collect(cmd) {
		f.modal.Update(msg)
	}
	assert.Equal(t, 1, pressed)
	assert.False(t, f.confirm.Loading())
	assert.True(t, f.press("x"), "unknown keys stay inside the dialog")
}

func TestModalRenders(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t, func(m *Modal) { m.WithWidth(40) })
	require.NoError(t, f.modal.Open())
	out := f.modal.View()
	assert.Contains(t, out, "Delete project?")
	assert.Contains(t, out, "This cannot be undone.")
	assert.Contains(t, out, "Confirm")
}
