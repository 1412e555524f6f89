package swipe

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// WarningCode identifies a configuration problem that was corrected.
type WarningCode string

const (
	SlideThresholdNotFound          WarningCode = "SLIDE_THRESHOLD_NOT_FOUND"
	ZeroSlideThresholdNotAllowed    WarningCode = "ZERO_SLIDE_THRESHOLD_NOT_ALLOWED"
	MaxOffsetExceeded               WarningCode = "MAX_OFFSET_EXCEEDED"
	InvalidSlideThresholdNotAllowed WarningCode = "INVALID_SLIDE_THRESHOLD_NOT_ALLOWED"
	LimitTooLow                     WarningCode = "LIMIT_TOO_LOW"
)

var warningMessages = map[WarningCode]string{
	SlideThresholdNotFound:          "No swipe threshold was provided.",
	ZeroSlideThresholdNotAllowed:    "A swipe threshold of zero or less is not allowed.",
	MaxOffsetExceeded:               "The swipe threshold exceeds the maximum offset of 100%.",
	InvalidSlideThresholdNotAllowed: "The swipe threshold is not a valid number.",
	LimitTooLow:                     "The swipe limit is lower than the swipe threshold; using 100% minus the threshold.",
}

// Message returns the human readable text for the code.
func (c WarningCode) Message() string {
	if msg, ok := warningMessages[c]; ok {
		return msg
	}
	return string(c)
}

// Warning is a single diagnostic produced while normalizing configuration.
type Warning struct {
	Code   WarningCode
	Suffix string // optional explanation appended to the message
}

func (w Warning) String() string {
	if w.Suffix == "" {
		return w.Code.Message()
	}
	return w.Code.Message() + " " + w.Suffix
}

// defaultThresholdSuffix is appended to threshold warnings that fall back to the default.
func defaultThresholdSuffix() string {
	return fmt.Sprintf("Adding default slide threshold of %g%%.", DefaultThreshold)
}

// Warner receives configuration warnings.
type Warner interface {
	Warn(w Warning)
}

// WarnerFunc adapts a function to the Warner interface.
type WarnerFunc func(w Warning)

func (f WarnerFunc) Warn(w Warning) { f(w) }

// LogWarner writes warnings to a logrus logger. A nil Logger uses the standard logger.
type LogWarner struct {
	Logger *logrus.Logger
}

func (l LogWarner) Warn(w Warning) {
	logger := l.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithField("warning", string(w.Code)).Warn(w.String())
}

// Collector records warnings in order.
type Collector struct {
	Warnings []Warning
}

func (c *Collector) Warn(w Warning) {
	c.Warnings = append(c.Warnings, w)
}

// Codes returns the recorded codes in emission order.
func (c *Collector) Codes() []WarningCode {
	codes := make([]WarningCode, 0, len(c.Warnings))
	for _, w := range c.Warnings {
		codes = append(codes, w.Code)
	}
	return codes
}

// silenced drops every warning when silence is set.
func silenced(w Warner, silence bool) Warner {
	if silence || w == nil {
		return WarnerFunc(func(Warning) {})
	}
	return w
}
