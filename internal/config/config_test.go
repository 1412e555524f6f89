package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidzwa/swipelist/internal/swipe"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func ptr[T any](v T) *T { return &v }

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	c := &swipe.Collector{}
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), Overrides{}, c)
	require.NoError(t, err)

	assert.False(t, s.FileExists)
	assert.Equal(t, swipe.DefaultConfig(), s.Swipe)
	assert.Empty(t, c.Warnings)
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
swipe_threshold: 25
swipe_limit: 45
left_color: "#00ff00"
right_color: "196"
default_swipe_color: grey
left_icon: archive
multi_line: false
avatar: true
items: items.yaml
`)

	c := &swipe.Collector{}
	s, err := Load(path, Overrides{}, c)
	require.NoError(t, err)

	assert.True(t, s.FileExists)
	assert.Equal(t, 25.0, s.Swipe.SwipeThreshold)
	assert.Equal(t, 45.0, s.Swipe.SwipeLimit)
	assert.Equal(t, "#00ff00", s.Swipe.LeftColor)
	assert.Equal(t, "196", s.Swipe.RightColor)
	assert.Equal(t, "grey", s.Swipe.DefaultSwipeColor)
	assert.Equal(t, "archive", s.Swipe.LeftIcon)
	assert.Equal(t, swipe.DefaultRightIcon, s.Swipe.RightIcon)
	assert.False(t, s.Swipe.MultiLine)
	assert.True(t, s.Swipe.Avatar)
	assert.Equal(t, filepath.Join(dir, "items.yaml"), s.ItemsPath)
	assert.Empty(t, c.Warnings)
}

func TestLoad_ThresholdNotFound(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", "swipe_limit: 60\n")

	c := &swipe.Collector{}
	s, err := Load(path, Overrides{}, c)
	require.NoError(t, err)
	assert.Equal(t, swipe.DefaultThreshold, s.Swipe.SwipeThreshold)
	assert.Equal(t, []swipe.WarningCode{swipe.SlideThresholdNotFound}, c.Codes())

	// Silenced in the file.
	path = writeFile(t, t.TempDir(), "config.yaml", "silence_warnings: true\n")
	c = &swipe.Collector{}
	s, err = Load(path, Overrides{}, c)
	require.NoError(t, err)
	assert.True(t, s.Swipe.SilenceWarnings)
	assert.Empty(t, c.Warnings)

	// Provided on the command line.
	path = writeFile(t, t.TempDir(), "config.yaml", "swipe_limit: 60\n")
	c = &swipe.Collector{}
	_, err = Load(path, Overrides{SwipeThreshold: ptr(20.0)}, c)
	require.NoError(t, err)
	assert.Empty(t, c.Warnings)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", "swipe_threshold: 25\nswipe_limit: 45\nsilence_warnings: false\n")

	s, err := Load(path, Overrides{
		SwipeThreshold:  ptr(150.0),
		SwipeLimit:      ptr(10.0),
		SilenceWarnings: ptr(true),
		Items:           "/tmp/other.json",
	}, nil)
	require.NoError(t, err)

	// Values are passed through unnormalized.
	assert.Equal(t, 150.0, s.Swipe.SwipeThreshold)
	assert.Equal(t, 10.0, s.Swipe.SwipeLimit)
	assert.True(t, s.Swipe.SilenceWarnings)
	assert.Equal(t, "/tmp/other.json", s.ItemsPath)
}

func TestLoad_InvalidColorsHealToDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", "swipe_threshold: 30\nleft_color: not-a-color\nright_color: blue\n")

	s, err := Load(path, Overrides{}, nil)
	require.NoError(t, err)
	assert.Equal(t, swipe.DefaultLeftColor, s.Swipe.LeftColor)
	assert.Equal(t, "blue", s.Swipe.RightColor)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", "swipe_threshold: [oops\n")
	_, err := Load(path, Overrides{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestExpandTilde(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandTilde("~/x/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "config.yaml"), got)

	got, err = ExpandTilde("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
