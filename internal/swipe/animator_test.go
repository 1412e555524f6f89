package swipe

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetItems_StaggeredLeaveTasks(t *testing.T) {
	t.Parallel()

	l := NewComparable([]string{"a", "b", "c", "d", "e"}, DefaultConfig(), nil)
	tasks := l.SetItems([]string{"a", "c", "e"})

	require.Len(t, tasks, 2)
	assert.Equal(t, 1, tasks[0].Index)
	assert.Equal(t, "b", tasks[0].Item)
	assert.Equal(t, time.Duration(0), tasks[0].Delay)
	assert.Equal(t, 3, tasks[1].Index)
	assert.Equal(t, "d", tasks[1].Item)
	assert.Equal(t, 100*time.Millisecond, tasks[1].Delay)
	assert.Equal(t, []string{"a", "c", "e"}, l.Items())
}

func TestSetItems_InsertionsAreNotRemovals(t *testing.T) {
	t.Parallel()

	l := NewComparable([]string{"a", "b", "c"}, DefaultConfig(), nil)
	tasks := l.SetItems([]string{"a", "x", "b", "c", "y"})
	assert.Empty(t, tasks)

	tasks = l.SetItems([]string{"x", "b", "y"})
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Item)
	assert.Equal(t, "c", tasks[1].Item)
}

func TestSetItems_RowStateFollowsItem(t *testing.T) {
	t.Parallel()

	l := NewComparable([]string{"a", "b", "c"}, cfgWith(30, 50), nil)
	_, err := l.PanMove(2, -20)
	require.NoError(t, err)
	_, err = l.PanEnd(2, -20)
	require.NoError(t, err)
	_, err = l.PanMove(0, 45)
	require.NoError(t, err)

	l.SetItems([]string{"b", "c"})

	assert.Equal(t, -20.0, l.Row(1).Offset)
	assert.Equal(t, PhaseReturning, l.Phase(1))
	assert.Equal(t, PhaseAtRest, l.Phase(0))
	idx, ok := l.LastAnimatedIndex()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestSetItems_RemovedLastAnimatedRowClearsMarker(t *testing.T) {
	t.Parallel()

	l := NewComparable([]string{"a", "b", "c"}, cfgWith(30, 50), nil)
	_, err := l.PanEnd(1, 60)
	require.NoError(t, err)

	tasks := l.SetItems([]string{"a", "c"})
	require.Len(t, tasks, 1)
	_, ok := l.LastAnimatedIndex()
	assert.False(t, ok)
}

func TestSetItems_EqualItems(t *testing.T) {
	t.Parallel()

	l := NewComparable([]string{"x", "y", "x"}, cfgWith(30, 50), nil)
	_, err := l.PanMove(1, -20)
	require.NoError(t, err)

	tasks := l.SetItems([]string{"y", "x"})
	require.Len(t, tasks, 1)
	assert.Equal(t, 0, tasks[0].Index)
	assert.Equal(t, "x", tasks[0].Item)

	// The surviving "y" keeps its drag state at its new index.
	assert.Equal(t, -20.0, l.Row(0).Offset)
	assert.Equal(t, PhaseDragging, l.Phase(0))
}

func TestSetItems_NeverMoreTasksThanRemovedRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prev []string
		next []string
	}{
		{"duplicates at both ends", []string{"a", "b", "a", "b"}, []string{"b", "a", "b"}},
		{"run of equal items", []string{"a", "a", "a", "b"}, []string{"a", "a", "b"}},
		{"interleaved", []string{"x", "y", "x", "y", "x"}, []string{"y", "x", "y", "x"}},
		{"remove all", []string{"a", "a"}, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := NewComparable(tt.prev, DefaultConfig(), nil)
			tasks := l.SetItems(tt.next)
			assert.Len(t, tasks, len(tt.prev)-len(tt.next))
		})
	}
}

func TestSetItems_LeaveTaskKeepsRowState(t *testing.T) {
	t.Parallel()

	l := NewComparable([]string{"a", "b", "c"}, cfgWith(30, 40), nil)
	_, err := l.PanMove(1, 55)
	require.NoError(t, err)
	_, err = l.PanEnd(1, 55)
	require.NoError(t, err)

	tasks := l.SetItems([]string{"a", "c"})
	require.Len(t, tasks, 1)
	assert.Equal(t, 40.0, tasks[0].Row.Offset)
	assert.Equal(t, DefaultLeftColor, tasks[0].Row.Color)
}

func TestLeaveTask_Phases(t *testing.T) {
	t.Parallel()

	task := LeaveTask[string]{Index: 0, Item: "x", Delay: 200 * time.Millisecond}

	assert.Equal(t, 400*time.Millisecond, task.Duration())

	assert.Equal(t, LeaveWaiting, task.PhaseAt(0))
	assert.Equal(t, 1.0, task.OpacityAt(0))
	assert.Equal(t, 1.0, task.HeightAt(199*time.Millisecond))

	// Fade takes no time: opacity is 0 as soon as the delay is over.
	assert.Equal(t, LeaveCollapsing, task.PhaseAt(200*time.Millisecond))
	assert.Equal(t, 0.0, task.OpacityAt(200*time.Millisecond))
	assert.Equal(t, 1.0, task.HeightAt(200*time.Millisecond))

	assert.InDelta(t, 0.5, task.HeightAt(300*time.Millisecond), 1e-9)

	assert.Equal(t, LeaveDone, task.PhaseAt(400*time.Millisecond))
	assert.Equal(t, 0.0, task.HeightAt(400*time.Millisecond))
	assert.Equal(t, 0.0, task.OpacityAt(time.Second))
}

func TestSlideOffsetAt(t *testing.T) {
	t.Parallel()

	for _, from := range []float64{50, -37, 3} {
		assert.Equal(t, from, SlideOffsetAt(from, 0))
		assert.Equal(t, 0.0, SlideOffsetAt(from, SlideDuration))
		assert.Equal(t, 0.0, SlideOffsetAt(from, time.Second))

		prev := math.Abs(from)
		for ms := 10; ms < 200; ms += 10 {
			cur := math.Abs(SlideOffsetAt(from, time.Duration(ms)*time.Millisecond))
			assert.LessOrEqual(t, cur, prev, "from %v at %dms", from, ms)
			prev = cur
		}
		// Same side of zero throughout.
		mid := SlideOffsetAt(from, 100*time.Millisecond)
		assert.GreaterOrEqual(t, mid*from, 0.0)
	}
}

func TestSlideComplete(t *testing.T) {
	t.Parallel()

	l := NewComparable([]string{"a", "b"}, cfgWith(30, 50), nil)
	_, err := l.PanMove(1, 20)
	require.NoError(t, err)
	_, err = l.PanEnd(1, 20)
	require.NoError(t, err)

	// A different row completing does not clear the marker.
	l.SlideComplete(0)
	idx, ok := l.LastAnimatedIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 20.0, l.Row(1).Offset)

	l.SlideComplete(1)
	_, ok = l.LastAnimatedIndex()
	assert.False(t, ok)
	assert.Equal(t, 0.0, l.Row(1).Offset)
	assert.Equal(t, PhaseAtRest, l.Phase(1))

	assert.NotPanics(t, func() { l.SlideComplete(42) })
}

func TestRowLifecycle(t *testing.T) {
	t.Parallel()

	l := NewComparable([]string{"a", "b"}, cfgWith(30, 50), nil)
	assert.Equal(t, PhaseAtRest, l.Phase(0))

	_, err := l.PanMove(0, 10)
	require.NoError(t, err)
	assert.Equal(t, PhaseDragging, l.Phase(0))

	action, err := l.PanEnd(0, 10)
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action)
	assert.Equal(t, PhaseReturning, l.Phase(0))

	l.SlideComplete(0)
	assert.Equal(t, PhaseAtRest, l.Phase(0))
}
