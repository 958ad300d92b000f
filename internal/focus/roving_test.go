package focus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func items(disabled ...bool) Items {
	out := make(Items, len(disabled))
	for i, d := range disabled {
		out[i] = Item{ID: string(rune('a' + i)), Disabled: d}
	}
	return out
}

func current(t *testing.T, r *Roving) int {
	t.Helper()
	idx, ok := r.Current()
	require.True(t, ok)
	return idx
}

func TestRovingStartsOnFirstEnabled(t *testing.T) {
	t.Parallel()

	r := NewRoving(items(true, false, false))
	require.Equal(t, 1, current(t, r))
	require.Equal(t, 0, r.TabIndex(1))
	require.Equal(t, -1, r.TabIndex(0))
	require.Equal(t, -1, r.TabIndex(2))
}

func TestRovingNextSkipsDisabledAndWraps(t *testing.T) {
	t.Parallel()

	r := NewRoving(items(false, true, false))
	require.True(t, r.MoveTo(DirectionNext))
	require.Equal(t, 2, current(t, r))
	require.True(t, r.MoveTo(DirectionNext))
	require.Equal(t, 0, current(t, r))
	require.True(t, r.MoveTo(DirectionPrevious))
	require.Equal(t, 2, current(t, r))
}

func TestRovingCycleReturnsToStart(t *testing.T) {
	t.Parallel()

	collections := []Items{
		items(false),
		items(false, false, false, false),
		items(false, true, false, true, false),
		items(true, true, false),
	}

	for _, coll := range collections {
		for start := range coll {
			if coll[start].Disabled {
				continue
			}
			r := NewRoving(coll)
			require.True(t, r.SetCurrent(start))

			enabled := 0
			for _, it := range coll {
				if !it.Disabled {
					enabled++
				}
			}
			for i := 0; i < enabled; i++ {
				r.MoveTo(DirectionNext)
				require.False(t, coll[current(t, r)].Disabled)
			}
			require.Equal(t, start, current(t, r))
		}
	}
}

func TestRovingAllDisabledIsNoop(t *testing.T) {
	t.Parallel()

	var requested []int
	r := NewRoving(items(true, true), WithFocusRequest(func(i int) { requested = append(requested, i) }))

	_, ok := r.Current()
	require.False(t, ok)
	for _, dir := range []Direction{DirectionNext, DirectionPrevious, DirectionFirst, DirectionLast} {
		require.False(t, r.MoveTo(dir))
	}
	require.False(t, r.Refocus())
	require.Empty(t, requested)
	require.False(t, r.HasEnabled())
}

func TestRovingEmptyCollection(t *testing.T) {
	t.Parallel()

	r := NewRoving(Items{})
	_, ok := r.Current()
	require.False(t, ok)
	require.False(t, r.MoveTo(DirectionNext))
	require.False(t, r.SetCurrent(0))
}

func TestRovingFirstLast(t *testing.T) {
	t.Parallel()

	r := NewRoving(items(true, false, false, true))
	require.True(t, r.MoveTo(DirectionLast))
	require.Equal(t, 2, current(t, r))
	require.False(t, r.MoveTo(DirectionLast))
	require.True(t, r.MoveTo(DirectionFirst))
	require.Equal(t, 1, current(t, r))
}

func TestRovingWithoutLoopStopsAtEnds(t *testing.T) {
	t.Parallel()

	r := NewRoving(items(false, false), WithLoop(false))
	require.False(t, r.MoveTo(DirectionPrevious))
	require.True(t, r.MoveTo(DirectionNext))
	require.False(t, r.MoveTo(DirectionNext))
	require.Equal(t, 1, current(t, r))
}

func TestRovingSetCurrentRejectsDisabled(t *testing.T) {
	t.Parallel()

	var requested []int
	r := NewRoving(items(false, true, false), WithFocusRequest(func(i int) { requested = append(requested, i) }))

	require.False(t, r.SetCurrent(1))
	require.False(t, r.SetCurrent(5))
	require.False(t, r.SetCurrent(-1))
	require.True(t, r.SetCurrent(2))
	require.True(t, r.SetCurrent(2))
	require.Equal(t, []int{2}, requested, "focus is requested only on change")
}

func TestRovingReconcileAfterCollectionChange(t *testing.T) {
	t.Parallel()

	coll := items(false, false, false)
	r := NewRoving(coll)
	require.True(t, r.SetCurrent(1))

	coll[1].Disabled = true
	r.Reconcile()
	require.Equal(t, 2, current(t, r))

	coll[0].Disabled = true
	coll[2].Disabled = true
	r.Reconcile()
	_, ok := r.Current()
	require.False(t, ok)
}
