package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davidzwa/swipelist/internal/swipe"
)

func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString(m.renderRows(width))
	b.WriteString("\n")
	b.WriteString(m.renderActions())
	if m.lastErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(errorColor)).Render("config: " + m.lastErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHeader draws the title and status lines followed by a blank line.
// It must produce exactly headerLines lines.
func (m Model) renderHeader(width int) string {
	cfg := m.list.Config()
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor)).Render("swipelist")
	count := lipgloss.NewStyle().Foreground(lipgloss.Color(grayColor)).Render(fmt.Sprintf("%d items", len(m.items)))
	pad := width - lipgloss.Width(title) - lipgloss.Width(count)
	if pad < 1 {
		pad = 1
	}

	swatch := lipgloss.NewStyle().Foreground(termColor(m.list.CurrentSwipeColor())).Render("■")
	status := lipgloss.NewStyle().Foreground(lipgloss.Color(grayColor)).Render(
		fmt.Sprintf("threshold %g%% • limit %g • ", cfg.SwipeThreshold, cfg.SwipeLimit),
	) + swatch

	return title + strings.Repeat(" ", pad) + count + "\n" + status + "\n\n"
}

func (m Model) renderRows(width int) string {
	if len(m.items) == 0 && len(m.leaving) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(grayColor)).Render("Nothing left. Press q to quit.") + "\n"
	}

	cfg := m.list.Config()
	var b strings.Builder
	for _, s := range m.layout() {
		var lines []string
		if s.live {
			it := m.items[s.index]
			lines = renderRow(it, cfg, m.list.Row(s.index), m.offsetFor(s.index), s.index == m.cursor, width)
		} else {
			lines = m.renderLeaving(m.leaving[s.index], width)
		}
		for i := 0; i < s.height && i < len(lines); i++ {
			b.WriteString(lines[i])
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLeaving draws a removed row. It stays where the drag left it while
// waiting for its turn, then blanks out and collapses.
func (m Model) renderLeaving(l leaving, width int) []string {
	elapsed := m.now.Sub(l.start)
	if l.task.OpacityAt(elapsed) > 0 {
		return renderRow(l.task.Item, m.list.Config(), l.task.Row, l.task.Row.Offset, false, width)
	}
	blank := strings.Repeat(" ", width)
	return []string{blank, blank}
}

// offsetFor returns the horizontal shift of a live row at the current frame.
func (m Model) offsetFor(index int) float64 {
	if s, ok := m.slides[m.items[index].ID]; ok {
		return swipe.SlideOffsetAt(s.from, m.now.Sub(s.start))
	}
	return m.list.Row(index).Offset
}

func (m Model) renderActions() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(grayColor))
	if len(m.actions) == 0 {
		return label.Render("No actions yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(label.Render("Recent actions:"))
	b.WriteString("\n")
	for _, a := range m.actions {
		b.WriteString("  ")
		b.WriteString(a)
		b.WriteString("\n")
	}
	return b.String()
}
