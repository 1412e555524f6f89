// Package swipe implements the gesture-to-action state machine behind a
// swipe-to-act list: threshold normalization, drag feedback, drag-end action
// resolution, taps and the row removal/slide-back animation bookkeeping.
//
// A List is driven from a single event loop. It holds no locks and must not
// be used from more than one goroutine.
package swipe

import "math"

// Action is the outcome of a gesture.
type Action int

const (
	ActionNone Action = iota
	ActionSwipeLeft
	ActionSwipeRight
	ActionTap
)

func (a Action) String() string {
	switch a {
	case ActionSwipeLeft:
		return "swipe-left"
	case ActionSwipeRight:
		return "swipe-right"
	case ActionTap:
		return "tap"
	default:
		return "none"
	}
}

// RowPhase is the conceptual per-row gesture state.
type RowPhase int

const (
	PhaseAtRest RowPhase = iota
	PhaseDragging
	PhaseReturning
)

func (p RowPhase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseReturning:
		return "returning"
	default:
		return "at-rest"
	}
}

// RowState is the visual state of one row.
type RowState struct {
	Offset    float64 // horizontal offset, bounded by the swipe limit
	Color     string  // feedback color derived from the last move tick
	Dragging  bool
	Animating bool // slide-back pending or running
}

// List tracks gesture state for an ordered sequence of items. The index of an
// item in the current sequence is its only identity.
type List[T any] struct {
	cfg    Config
	warner Warner
	equal  func(a, b T) bool

	items        []T
	rows         map[int]RowState
	currentColor string
	lastAnimated int

	SwipeLeft  Emitter[T]
	SwipeRight Emitter[T]
	Tapped     Emitter[T]
}

// New creates a List over items. equal is used to diff item sequences in
// SetItems. cfg is normalized immediately and warnings are sent to w.
func New[T any](items []T, equal func(a, b T) bool, cfg Config, w Warner) *List[T] {
	l := &List[T]{
		warner:       w,
		equal:        equal,
		items:        append([]T(nil), items...),
		rows:         make(map[int]RowState),
		lastAnimated: noIndex,
	}
	l.SetConfig(cfg)
	return l
}

// NewComparable creates a List whose items are diffed with ==.
func NewComparable[T comparable](items []T, cfg Config, w Warner) *List[T] {
	return New(items, func(a, b T) bool { return a == b }, cfg, w)
}

// SetConfig normalizes and applies a new configuration.
func (l *List[T]) SetConfig(cfg Config) {
	l.cfg = Normalize(cfg, l.warner)
	if l.currentColor == "" {
		l.currentColor = l.cfg.DefaultSwipeColor
	}
}

// Config returns the normalized configuration in effect.
func (l *List[T]) Config() Config {
	return l.cfg
}

// Len returns the number of items in the current sequence.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the current sequence.
func (l *List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Item returns the item at index.
func (l *List[T]) Item(index int) (T, error) {
	if err := l.checkIndex("item", index); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

// Row returns the visual state of the row at index. Rows that never moved are at rest.
func (l *List[T]) Row(index int) RowState {
	if st, ok := l.rows[index]; ok {
		return st
	}
	return RowState{Color: l.cfg.DefaultSwipeColor}
}

// Phase returns the gesture phase of the row at index.
func (l *List[T]) Phase(index int) RowPhase {
	st := l.Row(index)
	switch {
	case st.Dragging:
		return PhaseDragging
	case st.Animating:
		return PhaseReturning
	default:
		return PhaseAtRest
	}
}

// CurrentSwipeColor returns the color written by the most recent move tick on any row.
func (l *List[T]) CurrentSwipeColor() string {
	return l.currentColor
}

// LastAnimatedIndex returns the row that most recently finished a drag, if any.
func (l *List[T]) LastAnimatedIndex() (int, bool) {
	return l.lastAnimated, l.lastAnimated != noIndex
}

// ClampOffset bounds deltaX to ±limit. The raw delta is compared against the
// limit as given, without unit conversion.
func ClampOffset(deltaX, limit float64) float64 {
	if math.Abs(deltaX) < limit {
		return deltaX
	}
	if deltaX > 0 {
		return limit
	}
	return -limit
}

// ColorFor returns the feedback color for deltaX under cfg.
func ColorFor(deltaX float64, cfg Config) string {
	switch {
	case deltaX > cfg.SwipeThreshold:
		return cfg.LeftColor
	case deltaX < -cfg.SwipeThreshold:
		return cfg.RightColor
	default:
		return cfg.DefaultSwipeColor
	}
}

// Resolve maps a final drag distance to an action without side effects.
func Resolve(deltaX float64, cfg Config) Action {
	switch {
	case deltaX > cfg.SwipeThreshold:
		return ActionSwipeLeft
	case deltaX < -cfg.SwipeThreshold:
		return ActionSwipeRight
	default:
		return ActionNone
	}
}

// PanMove handles one continuous drag tick. deltaX is the cumulative
// displacement since the gesture started.
func (l *List[T]) PanMove(index int, deltaX float64) (RowState, error) {
	if err := l.checkIndex("pan_move", index); err != nil {
		return RowState{}, err
	}
	st := RowState{
		Offset:   ClampOffset(deltaX, l.cfg.SwipeLimit),
		Color:    ColorFor(deltaX, l.cfg),
		Dragging: true,
	}
	l.rows[index] = st
	l.currentColor = st.Color
	return st, nil
}

// PanEnd resolves the end of a drag on index. An action past the threshold is
// published with the item at index; the index is recorded as the last
// animated row in every case. The feedback color is left as is.
func (l *List[T]) PanEnd(index int, deltaX float64) (Action, error) {
	if err := l.checkIndex("pan_end", index); err != nil {
		return ActionNone, err
	}
	action := Resolve(deltaX, l.cfg)
	switch action {
	case ActionSwipeLeft:
		l.SwipeLeft.Emit(l.items[index])
	case ActionSwipeRight:
		l.SwipeRight.Emit(l.items[index])
	}

	st := l.Row(index)
	st.Dragging = false
	st.Animating = true
	l.rows[index] = st
	l.lastAnimated = index
	return action, nil
}

// Tap publishes the item at index on Tapped.
func (l *List[T]) Tap(index int) error {
	if err := l.checkIndex("tap", index); err != nil {
		return err
	}
	l.Tapped.Emit(l.items[index])
	return nil
}

func (l *List[T]) checkIndex(op string, index int) error {
	if index < 0 || index >= len(l.items) {
		return &IndexError{Op: op, Index: index, Len: len(l.items)}
	}
	return nil
}
