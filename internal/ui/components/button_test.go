package components

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/task"
)

func doneMsg(t *testing.T, msgs []tea.Msg) task.DoneMsg {
	t.Helper()
	for _, msg := range msgs {
		if done, ok := msg.(task.DoneMsg); ok {
			return done
		}
	}
	require.FailNow(t, "no task.DoneMsg produced")
	return task.DoneMsg{}
}

func TestButtonAsyncClickReportsError(t *testing.T) {
	t.Parallel()

	doc, _ := newDoc()
	boom := errors.New("save failed")
	btn := NewButton("Save").WithID("save").WithOnClick(func(context.Context) error { return boom })
	btn.Mount(doc, nil)

	cmd := btn.Click()
	require.NotNil(t, cmd)
	assert.True(t, btn.Loading())
	assert.True(t, btn.Focused(), "clicking focuses the button")
	assert.Nil(t, btn.Click(), "busy buttons ignore activation")

	done := doneMsg(t, collect(cmd))
	follow, handled := btn.Update(done)
	require.True(t, handled)
	assert.False(t, btn.Loading())

	result, ok := follow().(ButtonDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "save", result.ButtonID)
	assert.ErrorIs(t, result.Err, boom)
}

func TestButtonUnmountCancelsPendingAction(t *testing.T) {
	t.Parallel()

	doc, _ := newDoc()
	btn := NewButton("Sync").WithOnClick(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	btn.Mount(doc, nil)

	cmd := btn.Click()
	require.NotNil(t, cmd)
	btn.Unmount()
	assert.False(t, btn.Loading())
	assert.False(t, doc.Attached(btn.Node()))

	done := doneMsg(t, collect(cmd))
	assert.True(t, done.Cancelled)
	_, handled := btn.Update(done)
	assert.False(t, handled, "results after unmount are dropped")
	assert.False(t, btn.Loading())
}

func TestButtonRemountAcceptsNewClicks(t *testing.T) {
	t.Parallel()

	doc, _ := newDoc()
	btn := NewButton("Retry").WithOnClick(func(context.Context) error { return nil })
	btn.Mount(doc, nil)
	btn.Unmount()

	btn.Mount(doc, nil)
	cmd := btn.Click()
	require.NotNil(t, cmd)

	_, handled := btn.Update(doneMsg(t, collect(cmd)))
	assert.True(t, handled)
}

func TestButtonKeyboardActivation(t *testing.T) {
	t.Parallel()

	doc, outside := newDoc()
	clicks := 0
	btn := NewButton("Go").WithOnClick(func(context.Context) error {
		clicks++
		return nil
	})
	btn.Mount(doc, nil)

	_, handled := btn.Update(keyMsg("enter"))
	assert.False(t, handled, "unfocused buttons ignore keys")

	require.NoError(t, doc.Focus(btn.Node()))
	cmd, handled := btn.Update(keyMsg("enter"))
	require.True(t, handled)
	require.True(t, btn.Loading())

	_, handled = btn.Update(keyMsg("space"))
	assert.True(t, handled, "keys are consumed while busy")

	btn.Update(doneMsg(t, collect(cmd)))
	assert.Equal(t, 1, clicks)

	_, handled = btn.Update(keyMsg("x"))
	assert.False(t, handled)

	require.NoError(t, doc.Focus(outside))
	_, handled = btn.Update(keyMsg("space"))
	assert.False(t, handled)
}

func TestButtonDisabledIgnoresInteraction(t *testing.T) {
	t.Parallel()

	doc, _ := newDoc()
	btn := NewButton("Delete").
		WithVariant(ButtonVariantDanger).
		WithDisabled(true).
		WithOnClick(func(context.Context) error { return nil })
	btn.Mount(doc, nil)

	assert.Nil(t, btn.Click())
	assert.False(t, btn.Loading())
	assert.Error(t, doc.Focus(btn.Node()))
	assert.Contains(t, btn.View(), "Delete")
}

func TestButtonDisabledWhileFocusedDropsFocus(t *testing.T) {
	t.Parallel()

	doc, _ := newDoc()
	clicks := 0
	btn := NewButton("Publish").WithOnClick(func(context.Context) error {
		clicks++
		return nil
	})
	btn.Mount(doc, nil)
	require.NoError(t, doc.Focus(btn.Node()))

	btn.WithDisabled(true)
	assert.False(t, btn.Focused())
	assert.Nil(t, doc.ActiveNode())

	cmd, handled := btn.Update(keyMsg("enter"))
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.False(t, btn.Loading())
	assert.Equal(t, 0, clicks)
}

func TestButtonVariantsRender(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithTheme(DarkTheme())
	for _, btn := range []*Button{
		PrimaryButton("Primary"),
		SecondaryButton("Secondary"),
		DangerButton("Danger"),
		GhostButton("Ghost").WithSize(ButtonSizeLarge),
		NewButton("Small").WithSize(ButtonSizeSmall),
	} {
		assert.Contains(t, btn.ViewWithContext(ctx), btn.Label())
	}
}
