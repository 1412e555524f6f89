package swipe

import "time"

// Offset bounds and defaults, expressed in percent.
const (
	MinOffset        = 0.0
	MaxOffset        = 100.0
	DefaultThreshold = 30.0
	DefaultLimit     = 40.0
)

// Feedback defaults.
const (
	DefaultLeftColor  = "green"
	DefaultRightColor = "red"
	DefaultSwipeColor = "gray"
	DefaultLeftIcon   = "check"
	DefaultRightIcon  = "not_interested"
)

// Animation timings.
const (
	LeaveStagger     = 100 * time.Millisecond
	FadeDuration     = 0 * time.Millisecond
	CollapseDuration = 200 * time.Millisecond
	SlideDuration    = 200 * time.Millisecond
)

// noIndex marks an unset lastAnimatedIndex.
const noIndex = -1
