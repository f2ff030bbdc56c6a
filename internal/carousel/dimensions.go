package carousel

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Dimensions is the measured geometry shared by every motion handler.
// Item is zero when there is nothing to measure.
type Dimensions struct {
	Container int // visible track width
	Item      int // width of one card
	Height    int // height of one card
}

// measure reads the card geometry from the first rendered card.
func (m *Model[T]) measure() {
	if len(m.items) == 0 {
		m.dims.Item = 0
		m.dims.Height = 0
		return
	}
	card := m.render(m.items[0], false)
	m.dims.Item = lipgloss.Width(card)
	m.dims.Height = lipgloss.Height(card)
}

// SetSize sets the visible track width and re-measures. An idle carousel is
// re-centered at once; a moving one is corrected by its next snap.
func (m *Model[T]) SetSize(width int) tea.Cmd {
	if !m.mounted {
		return nil
	}
	m.dims.Container = max(width, 0)
	m.measure()
	m.log.Debug("measured",
		zap.Int("container", m.dims.Container),
		zap.Int("item", m.dims.Item))
	return m.recenter()
}

// SetItems replaces the items, resets the index to 0 and re-measures.
// A drag or snap in progress is abandoned.
func (m *Model[T]) SetItems(items []T) tea.Cmd {
	if !m.mounted {
		return nil
	}
	m.items = slices.Clone(items)
	m.cancelProgrammatic()
	m.drag = dragState{}
	m.index = 0
	m.offset = 0
	m.setMotion(Idle)
	m.measure()
	return tea.Batch(m.setPaused(false), m.recenter())
}

func (m *Model[T]) recenter() tea.Cmd {
	if m.motion != Idle {
		return nil
	}
	return m.snapTo(m.index, false)
}
