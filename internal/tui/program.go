package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/davidzwa/swipelist/internal/config"
	"github.com/davidzwa/swipelist/internal/source"
	"github.com/davidzwa/swipelist/internal/swipe"
)

// Options configures Run.
type Options struct {
	Items     []source.Item
	Settings  config.Settings
	Overrides config.Overrides
	// Warner receives configuration warnings, including those from reloads.
	Warner swipe.Warner
	// LogOutput receives log lines while the TUI owns the terminal. Nil discards them.
	LogOutput io.Writer
	// Watch reloads the config file whenever it changes on disk.
	Watch bool
}

// Run starts the Bubble Tea TUI program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	reload := func() (config.Settings, error) {
		return config.Load(opts.Settings.Path, opts.Overrides, opts.Warner)
	}

	model := NewModel(opts.Items, opts.Settings.Swipe, opts.Warner).WithReloader(reload)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	// Keep log lines from corrupting the view.
	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(out)
	defer logrus.SetOutput(prevOut)

	if opts.Watch && opts.Settings.Path != "" {
		w, err := config.Watch(opts.Settings.Path, config.DefaultDebounce, func() {
			s, err := reload()
			p.Send(configChangedMsg{Settings: s, Err: err})
		})
		if err != nil {
			logrus.WithError(err).Warn("config watching disabled")
		} else {
			defer func() { _ = w.Close() }()
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
