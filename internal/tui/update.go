package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.help.Width = x.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tea.MouseMsg:
		return m.handleMouse(x)

	case frameMsg:
		m.now = x.At
		m.advanceAnimations()
		if m.animating() {
			return m, m.tick()
		}
		m.ticking = false
		return m, nil

	case configChangedMsg:
		if x.Err != nil {
			logrus.WithError(x.Err).Warn("config reload failed; keeping current settings")
			m.lastErr = x.Err.Error()
			return m, nil
		}
		m.list.SetConfig(x.Settings.Swipe)
		m.lastErr = ""
		logrus.Debugf("config reloaded from %s", x.Settings.Path)
		return m, nil
	}

	return m, nil
}
