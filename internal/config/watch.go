package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher calls a function whenever the config file changes.
type Watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	debounce  *debouncer
	onChange  func()
	stopCh    chan struct{}
	stopOnce  sync.Once
	done      chan struct{}
}

// Watch starts watching the config file at path. The parent directory is
// watched so that editors that replace the file on save are noticed.
// onChange runs on a timer goroutine after events settle for window.
func Watch(path string, window time.Duration, onChange func()) (*Watcher, error) {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return nil, err
	}
	expanded = filepath.Clean(expanded)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(expanded)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(expanded), err)
	}

	w := &Watcher{
		path:      expanded,
		fsWatcher: fsw,
		debounce:  newDebouncer(window),
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
	go w.loop()
	logrus.Debugf("watching config file %s", expanded)
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				w.debounce.trigger(w.onChange)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("config watcher error")
		case <-w.stopCh:
			return
		}
	}
}

// Close stops watching. Pending callbacks are cancelled.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.debounce.cancel()
		err = w.fsWatcher.Close()
		<-w.done
	})
	return err
}
