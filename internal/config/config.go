// Package config loads swipe list settings from a YAML file and command line
// overrides, and watches the file for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/davidzwa/swipelist/internal/swipe"
	"github.com/davidzwa/swipelist/internal/validate"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "~/.config/swipelist/config.yaml"

// File mirrors the YAML config file. Pointer fields distinguish absent keys from zero values.
type File struct {
	SwipeThreshold  *float64 `yaml:"swipe_threshold"`
	SwipeLimit      *float64 `yaml:"swipe_limit"`
	SilenceWarnings bool     `yaml:"silence_warnings"`

	LeftColor         string `yaml:"left_color" validate:"omitempty,swipecolor"`
	RightColor        string `yaml:"right_color" validate:"omitempty,swipecolor"`
	DefaultSwipeColor string `yaml:"default_swipe_color" validate:"omitempty,swipecolor"`
	LeftIcon          string `yaml:"left_icon"`
	RightIcon         string `yaml:"right_icon"`

	MultiLine *bool `yaml:"multi_line"`
	Icon      bool  `yaml:"icon"`
	Avatar    bool  `yaml:"avatar"`

	// Items is an optional path to an item file.
	Items string `yaml:"items"`
}

// Overrides holds values set on the command line. Nil fields are not set.
type Overrides struct {
	SwipeThreshold  *float64
	SwipeLimit      *float64
	SilenceWarnings *bool
	Items           string
}

// Settings is the merged result of file and overrides. Swipe is not yet normalized.
type Settings struct {
	Path       string
	FileExists bool
	Swipe      swipe.Config
	ItemsPath  string
}

// Load reads the config file at path and applies overrides. A missing file
// yields defaults. Invalid colors are dropped with a warning so that the
// defaults apply; only unreadable or malformed files return an error.
func Load(path string, ov Overrides, w swipe.Warner) (Settings, error) {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return Settings{}, err
	}

	s := Settings{Path: expanded, Swipe: swipe.DefaultConfig()}

	var f File
	data, err := os.ReadFile(expanded)
	switch {
	case err == nil:
		s.FileExists = true
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", expanded, err)
		}
		heal(&f)
	case errors.Is(err, os.ErrNotExist):
		logrus.Debugf("config file %s not found; using defaults", expanded)
	default:
		return Settings{}, fmt.Errorf("read %s: %w", expanded, err)
	}

	silence := f.SilenceWarnings
	if ov.SilenceWarnings != nil {
		silence = *ov.SilenceWarnings
	}

	apply(&s.Swipe, f)
	s.Swipe.SilenceWarnings = silence

	if f.SwipeThreshold == nil && ov.SwipeThreshold == nil && s.FileExists && !silence && w != nil {
		w.Warn(swipe.Warning{
			Code:   swipe.SlideThresholdNotFound,
			Suffix: fmt.Sprintf("Adding default slide threshold of %g%%.", swipe.DefaultThreshold),
		})
	}

	if ov.SwipeThreshold != nil {
		s.Swipe.SwipeThreshold = *ov.SwipeThreshold
	}
	if ov.SwipeLimit != nil {
		s.Swipe.SwipeLimit = *ov.SwipeLimit
	}

	s.ItemsPath = f.Items
	if ov.Items != "" {
		s.ItemsPath = ov.Items
	}
	if s.ItemsPath != "" {
		if s.ItemsPath, err = ExpandTilde(s.ItemsPath); err != nil {
			return Settings{}, err
		}
		if !filepath.IsAbs(s.ItemsPath) && f.Items != "" && ov.Items == "" {
			// Relative item paths in the file are relative to the file.
			s.ItemsPath = filepath.Join(filepath.Dir(expanded), s.ItemsPath)
		}
	}

	return s, nil
}

func apply(c *swipe.Config, f File) {
	if f.SwipeThreshold != nil {
		c.SwipeThreshold = *f.SwipeThreshold
	}
	if f.SwipeLimit != nil {
		c.SwipeLimit = *f.SwipeLimit
	}
	if f.LeftColor != "" {
		c.LeftColor = f.LeftColor
	}
	if f.RightColor != "" {
		c.RightColor = f.RightColor
	}
	if f.DefaultSwipeColor != "" {
		c.DefaultSwipeColor = f.DefaultSwipeColor
	}
	if f.LeftIcon != "" {
		c.LeftIcon = f.LeftIcon
	}
	if f.RightIcon != "" {
		c.RightIcon = f.RightIcon
	}
	if f.MultiLine != nil {
		c.MultiLine = *f.MultiLine
	}
	c.Icon = f.Icon
	c.Avatar = f.Avatar
}

// heal clears fields that fail validation so defaults take their place.
func heal(f *File) {
	err := validate.Struct(*f)
	if err == nil {
		return
	}
	for _, field := range validate.FieldErrors(err) {
		switch field {
		case "LeftColor":
			logrus.Warnf("Invalid left_color %q in config; using default.", f.LeftColor)
			f.LeftColor = ""
		case "RightColor":
			logrus.Warnf("Invalid right_color %q in config; using default.", f.RightColor)
			f.RightColor = ""
		case "DefaultSwipeColor":
			logrus.Warnf("Invalid default_swipe_color %q in config; using default.", f.DefaultSwipeColor)
			f.DefaultSwipeColor = ""
		}
	}
}

// ExpandTilde expands a leading tilde to the user's home directory.
func ExpandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
