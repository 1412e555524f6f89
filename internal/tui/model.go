package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidzwa/swipelist/internal/config"
	"github.com/davidzwa/swipelist/internal/source"
	"github.com/davidzwa/swipelist/internal/swipe"
)

// drag is an in-progress pan gesture on one row.
type drag struct {
	active   bool
	keyboard bool
	itemID   string
	index    int
	startX   int
	deltaX   float64
	moved    bool
}

// slide is a row returning to rest.
type slide struct {
	from  float64
	start time.Time
}

// leaving is a removed row playing its leave animation.
type leaving struct {
	task  swipe.LeaveTask[source.Item]
	start time.Time
}

// Model is the root Bubble Tea model. It owns the item slice and removes
// items in response to swipe actions; the swipe list only reports them.
type Model struct {
	list  *swipe.List[source.Item]
	items []source.Item

	// queued list events, filled by emitter subscriptions
	events *[]listEvent

	drag     drag
	slides   map[string]slide
	leaving  []leaving
	ticking  bool
	now      time.Time
	clock    func() time.Time
	cursor   int
	actions  []string
	lastErr  string
	reloader func() (config.Settings, error)

	width    int
	height   int
	quitting bool

	help     help.Model
	showHelp bool
	keys     keyMap
}

// NewModel constructs a Model over items with cfg. Configuration warnings go to w.
func NewModel(items []source.Item, cfg swipe.Config, w swipe.Warner) Model {
	events := &[]listEvent{}
	lst := swipe.New(items, source.SameItem, cfg, w)
	lst.SwipeLeft.Subscribe(func(it source.Item) {
		*events = append(*events, listEvent{Action: swipe.ActionSwipeLeft, Item: it})
	})
	lst.SwipeRight.Subscribe(func(it source.Item) {
		*events = append(*events, listEvent{Action: swipe.ActionSwipeRight, Item: it})
	})
	lst.Tapped.Subscribe(func(it source.Item) {
		*events = append(*events, listEvent{Action: swipe.ActionTap, Item: it})
	})

	return Model{
		list:   lst,
		items:  append([]source.Item(nil), items...),
		events: events,
		slides: make(map[string]slide),
		clock:  time.Now,
		now:    time.Now(),
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// WithClock replaces the time source used to start animations.
func (m Model) WithClock(clock func() time.Time) Model {
	m.clock = clock
	m.now = clock()
	return m
}

// WithReloader sets the function used to reload configuration on demand.
func (m Model) WithReloader(fn func() (config.Settings, error)) Model {
	m.reloader = fn
	return m
}

// Items returns the items currently owned by the model.
func (m Model) Items() []source.Item {
	return append([]source.Item(nil), m.items...)
}

// Actions returns the action log, oldest first.
func (m Model) Actions() []string {
	return append([]string(nil), m.actions...)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// tick schedules the next animation frame.
func (m Model) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{At: t}
	})
}

// animating reports whether any row is sliding back or leaving.
func (m Model) animating() bool {
	return len(m.slides) > 0 || len(m.leaving) > 0
}
