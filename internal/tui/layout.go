package tui

import (
	"math"
	"sort"
)

// slot is one vertical band of the list area: a live row or a leaving row.
type slot struct {
	live   bool
	index  int // item index for live rows, leaving index otherwise
	height int
}

func (m Model) rowHeight() int {
	if m.list.Config().MultiLine {
		return 2
	}
	return 1
}

// layout returns the rows top to bottom. Leaving rows keep their previous
// position until they collapse.
func (m Model) layout() []slot {
	rh := m.rowHeight()
	slots := make([]slot, 0, len(m.items)+len(m.leaving))
	for i := range m.items {
		slots = append(slots, slot{live: true, index: i, height: rh})
	}

	order := make([]int, len(m.leaving))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return m.leaving[order[a]].task.Index < m.leaving[order[b]].task.Index
	})

	for _, li := range order {
		l := m.leaving[li]
		h := int(math.Round(l.task.HeightAt(m.now.Sub(l.start)) * float64(rh)))
		if h <= 0 {
			continue
		}
		pos := min(l.task.Index, len(slots))
		slots = append(slots, slot{})
		copy(slots[pos+1:], slots[pos:])
		slots[pos] = slot{live: false, index: li, height: h}
	}
	return slots
}

// rowAt maps a screen line to the live row drawn there.
func (m Model) rowAt(y int) (int, bool) {
	top := headerLines
	for _, s := range m.layout() {
		if y >= top && y < top+s.height {
			return s.index, s.live
		}
		top += s.height
	}
	return 0, false
}
