package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/davidzwa/swipelist/internal/source"
	"github.com/davidzwa/swipelist/internal/swipe"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.reloader == nil {
			return m, nil
		}
		s, err := m.reloader()
		return m.Update(configChangedMsg{Settings: s, Err: err})

	case key.Matches(msg, m.keys.Up):
		if !m.drag.active && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if !m.drag.active && m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if len(m.items) == 0 || (m.drag.active && !m.drag.keyboard) {
			return m, nil
		}
		if !m.drag.active {
			m.beginDrag(m.cursor, 0, true)
		}
		step := float64(keyboardStep)
		if key.Matches(msg, m.keys.Left) {
			step = -step
		}
		m.panMove(m.drag.deltaX + step)
		return m, nil

	case key.Matches(msg, m.keys.Release):
		if m.drag.active && m.drag.keyboard {
			cmd := m.panEnd(m.drag.deltaX)
			return m, cmd
		}
		if !m.drag.active {
			m.tap(m.cursor)
		}
		return m, nil

	case key.Matches(msg, m.keys.Tap):
		if !m.drag.active {
			m.tap(m.cursor)
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.drag.active && m.drag.keyboard {
			cmd := m.panEnd(0)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// handleMouse turns left-button press, motion and release into pan and tap gestures.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.drag.active {
			return m, nil
		}
		idx, ok := m.rowAt(msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = idx
		m.beginDrag(idx, msg.X, false)
		return m, nil

	case tea.MouseActionMotion:
		if !m.drag.active || m.drag.keyboard {
			return m, nil
		}
		m.panMove(float64(msg.X - m.drag.startX))
		return m, nil

	case tea.MouseActionRelease:
		if !m.drag.active || m.drag.keyboard {
			return m, nil
		}
		delta := float64(msg.X - m.drag.startX)
		if !m.drag.moved && delta == 0 {
			idx := m.drag.index
			m.drag = drag{}
			m.tap(idx)
			return m, nil
		}
		cmd := m.panEnd(delta)
		return m, cmd
	}
	return m, nil
}

func (m *Model) beginDrag(index, startX int, keyboard bool) {
	id := m.items[index].ID
	m.drag = drag{active: true, keyboard: keyboard, itemID: id, index: index, startX: startX}
	// Grabbing a row that is still sliding back stops the slide.
	delete(m.slides, id)
}

func (m *Model) panMove(deltaX float64) {
	if deltaX != 0 {
		m.drag.moved = true
	}
	m.drag.deltaX = deltaX
	if _, err := m.list.PanMove(m.drag.index, deltaX); err != nil {
		logrus.WithError(err).Debug("pan move ignored")
	}
}

// panEnd releases the active drag. Rows that did not trigger an action slide back.
func (m *Model) panEnd(deltaX float64) tea.Cmd {
	idx, id := m.drag.index, m.drag.itemID
	m.drag = drag{}

	action, err := m.list.PanEnd(idx, deltaX)
	if err != nil {
		logrus.WithError(err).Debug("pan end ignored")
		return nil
	}
	if action == swipe.ActionNone {
		m.slides[id] = slide{from: m.list.Row(idx).Offset, start: m.clock()}
	}
	m.drainEvents()
	return m.startAnimating()
}

func (m *Model) tap(index int) {
	if err := m.list.Tap(index); err != nil {
		logrus.WithError(err).Debug("tap ignored")
		return
	}
	m.drainEvents()
}

// drainEvents applies queued list events: swipes remove their item.
func (m *Model) drainEvents() {
	events := *m.events
	*m.events = nil
	for _, ev := range events {
		m.logAction(ev)
		switch ev.Action {
		case swipe.ActionSwipeLeft, swipe.ActionSwipeRight:
			m.remove(ev.Item.ID)
		case swipe.ActionNone, swipe.ActionTap:
		}
	}
}

// remove drops the item with id and starts leave animations for every row
// the list reports as gone.
func (m *Model) remove(id string) {
	next := make([]source.Item, 0, len(m.items))
	for _, it := range m.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	m.items = next
	delete(m.slides, id)

	now := m.clock()
	for _, task := range m.list.SetItems(m.items) {
		m.leaving = append(m.leaving, leaving{task: task, start: now})
	}

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) logAction(ev listEvent) {
	var line string
	switch ev.Action {
	case swipe.ActionSwipeLeft:
		line = fmt.Sprintf("%s %s", m.list.Config().LeftIcon, ev.Item.Title)
	case swipe.ActionSwipeRight:
		line = fmt.Sprintf("%s %s", m.list.Config().RightIcon, ev.Item.Title)
	default:
		line = fmt.Sprintf("tap %s", ev.Item.Title)
	}
	logrus.WithField("action", ev.Action.String()).Info(ev.Item.Title)
	m.actions = append(m.actions, line)
	if len(m.actions) > actionLogSize {
		m.actions = m.actions[len(m.actions)-actionLogSize:]
	}
}

func (m *Model) startAnimating() tea.Cmd {
	if !m.animating() || m.ticking {
		return nil
	}
	m.ticking = true
	return m.tick()
}

// advanceAnimations finishes slides and leave animations that ran their course at m.now.
func (m *Model) advanceAnimations() {
	for id, s := range m.slides {
		if m.now.Sub(s.start) < swipe.SlideDuration {
			continue
		}
		if idx := m.indexOf(id); idx >= 0 {
			m.list.SlideComplete(idx)
		}
		delete(m.slides, id)
	}

	kept := make([]leaving, 0, len(m.leaving))
	for _, l := range m.leaving {
		if l.task.PhaseAt(m.now.Sub(l.start)) != swipe.LeaveDone {
			kept = append(kept, l)
		}
	}
	m.leaving = kept
}

func (m Model) indexOf(id string) int {
	for i, it := range m.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
