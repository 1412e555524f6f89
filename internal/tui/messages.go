package tui

import (
	"time"

	"github.com/davidzwa/swipelist/internal/config"
	"github.com/davidzwa/swipelist/internal/source"
	"github.com/davidzwa/swipelist/internal/swipe"
)

// Message types for Bubble Tea update loop.

// frameMsg advances slide-back and leave animations.
type frameMsg struct{ At time.Time }

// configChangedMsg carries a reloaded config file.
type configChangedMsg struct {
	Settings config.Settings
	Err      error
}

// listEvent is an action published by the swipe list, queued until the
// gesture that caused it has been handled.
type listEvent struct {
	Action swipe.Action
	Item   source.Item
}
