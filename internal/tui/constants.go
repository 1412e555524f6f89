package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	// frameInterval paces animation ticks (~60fps).
	frameInterval = 16 * time.Millisecond

	// keyboardStep is the drag distance, in cells, of one left/right key press.
	keyboardStep = 8

	// headerLines is the number of lines above the first row.
	// Keep this in sync with renderHeader.
	headerLines = 3

	defaultWidth = 80

	// actionLogSize is how many emitted actions the log pane keeps.
	actionLogSize = 5

	// Color constants.
	grayColor   = "241"
	accentColor = "69"
	errorColor  = "196"
)
