package swipe

import "math"

// Config controls thresholds, feedback colors and row layout.
// Threshold and limit are percentages; see Normalize for the accepted ranges.
type Config struct {
	SwipeThreshold  float64 `json:"swipe_threshold" yaml:"swipe_threshold"`
	SwipeLimit      float64 `json:"swipe_limit" yaml:"swipe_limit"`
	SilenceWarnings bool    `json:"silence_warnings" yaml:"silence_warnings"`

	LeftColor         string `json:"left_color" yaml:"left_color" validate:"omitempty,swipecolor"`
	RightColor        string `json:"right_color" yaml:"right_color" validate:"omitempty,swipecolor"`
	DefaultSwipeColor string `json:"default_swipe_color" yaml:"default_swipe_color" validate:"omitempty,swipecolor"`
	LeftIcon          string `json:"left_icon" yaml:"left_icon"`
	RightIcon         string `json:"right_icon" yaml:"right_icon"`

	// Layout toggles, used by the renderer only.
	MultiLine bool `json:"multi_line" yaml:"multi_line"`
	Icon      bool `json:"icon" yaml:"icon"`
	Avatar    bool `json:"avatar" yaml:"avatar"`
}

// DefaultConfig returns a configuration that is already normalized.
func DefaultConfig() Config {
	return Config{
		SwipeThreshold:    DefaultThreshold,
		SwipeLimit:        DefaultLimit,
		LeftColor:         DefaultLeftColor,
		RightColor:        DefaultRightColor,
		DefaultSwipeColor: DefaultSwipeColor,
		LeftIcon:          DefaultLeftIcon,
		RightIcon:         DefaultRightIcon,
		MultiLine:         true,
	}
}

// Normalize corrects an out-of-range threshold or limit and reports each
// correction to w unless cfg.SilenceWarnings is set. It never fails.
//
// After Normalize, 0 < SwipeThreshold <= MaxOffset and SwipeLimit >= SwipeThreshold.
// MaxOffset itself is a valid threshold, MinOffset is not.
func Normalize(cfg Config, w Warner) Config {
	w = silenced(w, cfg.SilenceWarnings)

	if math.IsNaN(cfg.SwipeThreshold) || math.IsInf(cfg.SwipeThreshold, 0) {
		w.Warn(Warning{Code: InvalidSlideThresholdNotAllowed, Suffix: defaultThresholdSuffix()})
		cfg.SwipeThreshold = DefaultThreshold
	}

	if cfg.SwipeThreshold <= MinOffset || cfg.SwipeThreshold > MaxOffset {
		if cfg.SwipeThreshold > MaxOffset {
			w.Warn(Warning{Code: MaxOffsetExceeded, Suffix: defaultThresholdSuffix()})
		}
		if cfg.SwipeThreshold <= MinOffset {
			w.Warn(Warning{Code: ZeroSlideThresholdNotAllowed, Suffix: defaultThresholdSuffix()})
		}
		cfg.SwipeThreshold = DefaultThreshold
	}

	// NaN compares false against everything, so test it explicitly.
	if math.IsNaN(cfg.SwipeLimit) || math.IsInf(cfg.SwipeLimit, 0) || cfg.SwipeLimit < cfg.SwipeThreshold {
		cfg.SwipeLimit = 100 - cfg.SwipeThreshold
		w.Warn(Warning{Code: LimitTooLow})
	}

	cfg.LeftColor = orDefault(cfg.LeftColor, DefaultLeftColor)
	cfg.RightColor = orDefault(cfg.RightColor, DefaultRightColor)
	cfg.DefaultSwipeColor = orDefault(cfg.DefaultSwipeColor, DefaultSwipeColor)
	cfg.LeftIcon = orDefault(cfg.LeftIcon, DefaultLeftIcon)
	cfg.RightIcon = orDefault(cfg.RightIcon, DefaultRightIcon)

	return cfg
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
