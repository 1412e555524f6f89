package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/davidzwa/swipelist/internal/source"
	"github.com/davidzwa/swipelist/internal/swipe"
)

func TestGlyph(t *testing.T) {
	assert.Equal(t, "✓", glyph("check"))
	assert.Equal(t, "⊘", glyph("not_interested"))
	assert.Equal(t, "🗑", glyph("🗑"))
}

func TestTermColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("8"), termColor("gray"))
	assert.Equal(t, lipgloss.Color("8"), termColor(" Grey "))
	assert.Equal(t, lipgloss.Color("#ff0000"), termColor("#ff0000"))
	assert.Equal(t, lipgloss.Color("42"), termColor("42"))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc  ", fit("abc", 5))
	assert.Equal(t, 4, runewidth.StringWidth(fit("abcdefgh", 4)))
	assert.Equal(t, "", fit("abc", 0))
}

func TestRowContent(t *testing.T) {
	it := source.Item{ID: "1", Title: "Team lunch", Description: "Thursday", Icon: "*"}

	cfg := swipe.DefaultConfig()
	lines := rowContent(it, cfg, true)
	assert.Equal(t, []string{"> Team lunch", "  Thursday"}, lines)

	cfg.MultiLine = false
	cfg.Avatar = true
	cfg.Icon = true
	lines = rowContent(it, cfg, false)
	assert.Equal(t, []string{"  (TL) * Team lunch · Thursday"}, lines)
}

func TestRenderRowKeepsWidth(t *testing.T) {
	it := source.Item{ID: "1", Title: "Alpha", Description: "first"}
	cfg := swipe.DefaultConfig()
	state := swipe.RowState{Color: cfg.LeftColor}

	for _, offset := range []float64{0, 12, -12, 500} {
		for _, line := range renderRow(it, cfg, state, offset, false, 40) {
			assert.Equal(t, 40, lipgloss.Width(line), "offset %v", offset)
		}
	}
}
