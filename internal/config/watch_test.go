package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	t.Parallel()

	d := newDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.trigger(func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	t.Parallel()

	d := newDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	d.trigger(func() { calls.Add(1) })
	d.cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatch_NotifiesOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "swipe_threshold: 30\n")

	changed := make(chan struct{}, 4)
	w, err := Watch(path, 20*time.Millisecond, func() { changed <- struct{}{} })
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("swipe_threshold: 40\n"), 0o600))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification")
	}
}

func TestWatch_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", "swipe_threshold: 30\n")
	w, err := Watch(path, 0, func() {})
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatch_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Watch(filepath.Join(t.TempDir(), "nope", "config.yaml"), 0, func() {})
	require.Error(t, err)
}
