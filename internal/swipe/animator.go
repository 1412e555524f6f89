package swipe

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// LeavePhase is the stage of a row's leave animation.
type LeavePhase int

const (
	LeaveWaiting    LeavePhase = iota // stagger delay, row still drawn as is
	LeaveFading                       // opacity going to 0
	LeaveCollapsing                   // height and opacity collapsing to 0
	LeaveDone                         // removed from layout
)

// LeaveTask describes the leave animation of one removed row.
type LeaveTask[T any] struct {
	Index int // position in the previously rendered sequence
	Item  T
	Row   RowState // last visual state, kept while the row waits its turn
	Delay time.Duration
}

// Duration is the total time until the row is removed from layout.
func (t LeaveTask[T]) Duration() time.Duration {
	return t.Delay + FadeDuration + CollapseDuration
}

// PhaseAt returns the phase elapsed after the task was scheduled.
func (t LeaveTask[T]) PhaseAt(elapsed time.Duration) LeavePhase {
	switch {
	case elapsed < t.Delay:
		return LeaveWaiting
	case elapsed < t.Delay+FadeDuration:
		return LeaveFading
	case elapsed < t.Duration():
		return LeaveCollapsing
	default:
		return LeaveDone
	}
}

// OpacityAt returns the row opacity in [0,1].
func (t LeaveTask[T]) OpacityAt(elapsed time.Duration) float64 {
	switch t.PhaseAt(elapsed) {
	case LeaveWaiting:
		return 1
	case LeaveFading:
		return 1 - progress(elapsed-t.Delay, FadeDuration)
	default:
		return 0
	}
}

// HeightAt returns the row height as a fraction of its full height.
func (t LeaveTask[T]) HeightAt(elapsed time.Duration) float64 {
	switch t.PhaseAt(elapsed) {
	case LeaveWaiting, LeaveFading:
		return 1
	case LeaveCollapsing:
		return 1 - progress(elapsed-t.Delay-FadeDuration, CollapseDuration)
	default:
		return 0
	}
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

// SetItems replaces the current sequence with next and returns a leave task
// for every row that is no longer present, staggered by position among the
// leaving rows. Row state of surviving rows follows them to their new index.
// State of removed rows is dropped; if the last animated row left, the
// marker is cleared since no slide-back will complete for it.
func (l *List[T]) SetItems(next []T) []LeaveTask[T] {
	moved, removed := diffSequences(l.items, next, l.equal)

	tasks := make([]LeaveTask[T], 0, len(removed))
	for k, idx := range removed {
		tasks = append(tasks, LeaveTask[T]{
			Index: idx,
			Item:  l.items[idx],
			Row:   l.Row(idx),
			Delay: time.Duration(k) * LeaveStagger,
		})
	}

	rows := make(map[int]RowState, len(l.rows))
	for oldIdx, st := range l.rows {
		if newIdx, ok := moved[oldIdx]; ok {
			rows[newIdx] = st
		}
	}
	l.rows = rows

	if l.lastAnimated != noIndex {
		if newIdx, ok := moved[l.lastAnimated]; ok {
			l.lastAnimated = newIdx
		} else {
			l.lastAnimated = noIndex
		}
	}

	l.items = append([]T(nil), next...)
	return tasks
}

// diffSequences matches prev against next with a longest common subsequence
// over equal. Items of prev outside the subsequence are removed; items of next
// outside it are insertions. Equal items are matched in order, so duplicates
// never pull a match past rows that are still present.
func diffSequences[T any](prev, next []T, equal func(a, b T) bool) (moved map[int]int, removed []int) {
	n, m := len(prev), len(next)
	// lcs[i][j] is the LCS length of prev[i:] and next[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if equal(prev[i], next[j]) {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	moved = make(map[int]int, n)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case equal(prev[i], next[j]) && lcs[i][j] == lcs[i+1][j+1]+1:
			moved[i] = j
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			removed = append(removed, i)
			i++
		default:
			j++
		}
	}
	for ; i < n; i++ {
		removed = append(removed, i)
	}
	return moved, removed
}

// Spring parameters for the slide-back easing. Critically damped, so the
// offset never overshoots 0.
const (
	slideFPS       = 60
	slideFrequency = 30.0
	slideDamping   = 1.0
)

// SlideOffsetAt returns the offset of a row sliding back to rest from the
// offset from, elapsed after the slide started. It reaches exactly 0 at
// SlideDuration.
func SlideOffsetAt(from float64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return from
	}
	if elapsed >= SlideDuration {
		return 0
	}
	spring := harmonica.NewSpring(harmonica.FPS(slideFPS), slideFrequency, slideDamping)
	frames := int(elapsed / (time.Second / slideFPS))
	pos, vel := from, 0.0
	for i := 0; i < frames; i++ {
		pos, vel = spring.Update(pos, vel, 0)
	}
	return pos
}

// SlideComplete finishes the slide-back of the row at index: its offset is
// reset to 0 and the last animated marker is cleared when it points at this
// row. Unknown indices are ignored.
func (l *List[T]) SlideComplete(index int) {
	st, ok := l.rows[index]
	if ok {
		st.Offset = 0
		st.Animating = false
		st.Dragging = false
		l.rows[index] = st
	}
	if l.lastAnimated == index {
		l.lastAnimated = noIndex
	}
}
