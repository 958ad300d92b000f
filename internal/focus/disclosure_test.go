package focus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisclosureToggleOpensAndCloses(t *testing.T) {
	t.Parallel()

	var events []DisclosureEvent
	d := NewDisclosure(items(false, false), nil)
	d.OnChange(func(ev DisclosureEvent) { events = append(events, ev) })

	require.True(t, d.Toggle(0))
	require.True(t, d.IsOpen(0))
	require.True(t, d.Toggle(0))
	_, open := d.Open()
	require.False(t, open)

	require.Equal(t, []DisclosureEvent{
		{Kind: DisclosureOpened, Index: 0, Replaced: none},
		{Kind: DisclosureClosed, Index: 0, Replaced: none},
	}, events)
}

func TestDisclosureReplacingIsSingleTransition(t *testing.T) {
	t.Parallel()

	var events []DisclosureEvent
	d := NewDisclosure(items(false, false), nil)
	d.OnChange(func(ev DisclosureEvent) { events = append(events, ev) })

	d.Toggle(0)
	d.Toggle(1)

	require.True(t, d.IsOpen(1))
	require.False(t, d.IsOpen(0))
	require.Len(t, events, 2)
	require.Equal(t, DisclosureOpened, events[1].Kind)
	require.Equal(t, 1, events[1].Index)
	require.True(t, events[1].HasReplaced())
	require.Equal(t, 0, events[1].Replaced)
}

func TestDisclosureAtMostOneOpen(t *testing.T) {
	t.Parallel()

	coll := items(false, false, false, false)
	d := NewDisclosure(coll, nil)
	sequence := []int{0, 2, 2, 1, 3, 3, 0, 1}
	for _, idx := range sequence {
		d.Toggle(idx)
		openCount := 0
		for i := range coll {
			if d.IsOpen(i) {
				openCount++
			}
		}
		require.LessOrEqual(t, openCount, 1)
	}
}

func TestDisclosureIgnoresDisabled(t *testing.T) {
	t.Parallel()

	d := NewDisclosure(items(false, true), nil)
	require.False(t, d.Toggle(1))
	require.False(t, d.Show(1))
	require.False(t, d.Toggle(9))
	_, open := d.Open()
	require.False(t, open)
}

func TestDisclosureCloseAll(t *testing.T) {
	t.Parallel()

	d := NewDisclosure(items(false), nil)
	require.False(t, d.CloseAll())
	d.Show(0)
	require.False(t, d.Show(0))
	require.True(t, d.CloseAll())
	require.False(t, d.IsOpen(0))
}

func TestDisclosureReconcileClosesDisabledEntry(t *testing.T) {
	t.Parallel()

	coll := items(false, false)
	d := NewDisclosure(coll, nil)
	d.Show(1)
	coll[1].Disabled = true
	d.Reconcile()
	_, open := d.Open()
	require.False(t, open)
}
