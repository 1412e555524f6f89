package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/davidzwa/swipelist/internal/source"
	"github.com/davidzwa/swipelist/internal/swipe"
	"github.com/davidzwa/swipelist/internal/validate"
)

// iconGlyphs maps icon ids to terminal glyphs. Unknown ids are drawn as given.
//
//nolint:gochecknoglobals // Read-only lookup table.
var iconGlyphs = map[string]string{
	"check":          "✓",
	"not_interested": "⊘",
	"archive":        "▤",
	"delete":         "✗",
	"star":           "★",
	"snooze":         "◷",
}

func glyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return icon
}

// termColor resolves a configured color to a lipgloss color.
func termColor(c string) lipgloss.Color {
	if code, ok := validate.NamedColors[strings.ToLower(strings.TrimSpace(c))]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color(c)
}

// rowContent returns the plain text lines of a row.
func rowContent(it source.Item, cfg swipe.Config, focused bool) []string {
	prefix := "  "
	if focused {
		prefix = "> "
	}
	var lead strings.Builder
	if cfg.Avatar {
		lead.WriteString("(" + runewidth.FillRight(it.Initials(), 2) + ") ")
	}
	if cfg.Icon && it.Icon != "" {
		lead.WriteString(it.Icon + " ")
	}

	if !cfg.MultiLine {
		line := prefix + lead.String() + it.Title
		if it.Description != "" {
			line += " · " + it.Description
		}
		return []string{line}
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix+lead.String()))
	return []string{prefix + lead.String() + it.Title, indent + it.Description}
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// renderRow draws a row shifted by offset cells. The uncovered side shows the
// feedback color and the icon of the action the drag is heading for.
func renderRow(it source.Item, cfg swipe.Config, state swipe.RowState, offset float64, focused bool, width int) []string {
	lines := rowContent(it, cfg, focused)
	shift := int(math.Round(offset))
	if shift > width {
		shift = width
	}
	if shift < -width {
		shift = -width
	}

	textStyle := lipgloss.NewStyle()
	if focused {
		textStyle = textStyle.Foreground(lipgloss.Color(accentColor)).Bold(true)
	}

	underlay := lipgloss.NewStyle().Background(termColor(state.Color)).Foreground(lipgloss.Color("15")).Bold(true)
	icon := cfg.LeftIcon
	if shift < 0 {
		icon = cfg.RightIcon
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case shift > 0:
			band := fit(" "+glyph(icon), shift)
			if i > 0 {
				band = fit("", shift)
			}
			out[i] = underlay.Render(band) + textStyle.Render(fit(line, width-shift))
		case shift < 0:
			n := -shift
			band := fit(" "+glyph(icon), n)
			if i > 0 {
				band = fit("", n)
			}
			out[i] = textStyle.Render(fit(line, width-n)) + underlay.Render(band)
		default:
			out[i] = textStyle.Render(fit(line, width))
		}
	}
	return out
}
