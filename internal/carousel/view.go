package carousel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the part of the track under the viewport. Only the cards
// that intersect the viewport are rendered.
func (m Model[T]) View() string {
	if !m.canMove() {
		return ""
	}
	iw, cw := m.dims.Item, m.dims.Container
	n := len(m.items)

	first := floorDiv(m.offset, iw)
	last := floorDiv(m.offset+cw-1, iw)
	centered := m.nearest(m.offset)

	cards := make([]string, 0, last-first+1)
	for physical := first; physical <= last; physical++ {
		if physical < 0 || physical >= Copies*n {
			cards = append(cards, blankCard(iw, m.dims.Height))
			continue
		}
		logical := physical % n
		cards = append(cards, m.render(m.items[logical], logical == centered))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	skip := m.offset - first*iw

	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		cut := ansi.Cut(line, skip, skip+cw)
		if w := ansi.StringWidth(cut); w < cw {
			cut += strings.Repeat(" ", cw-w)
		}
		lines[i] = cut
	}

	view := strings.Join(lines, "\n")
	if m.zone != nil {
		view = m.zone.Mark(m.ZoneID(), view)
	}
	return view
}

func blankCard(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, max(height, 1))
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
