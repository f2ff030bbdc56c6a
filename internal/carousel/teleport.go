package carousel

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// scrollBy applies a wheel movement. Near either end of the track the
// viewport is moved by one item-set width and snapped; otherwise the snap
// waits until the wheel has been quiet for the settle delay.
func (m *Model[T]) scrollBy(delta int) tea.Cmd {
	if !m.canMove() || delta == 0 {
		return nil
	}
	if m.motion == Dragging || m.motion == ProgrammaticScrolling {
		return nil
	}

	m.offset += delta
	notify := m.notifyInteraction()

	if m.teleport() {
		return tea.Batch(notify, m.snapTo(m.nearest(m.offset), true))
	}

	m.setMotion(Settling)
	return tea.Batch(notify, m.timers.arm(timerSettle, m.cfg.SettleDelay))
}

// teleport shifts the offset by one item-set width when the viewport is
// within half a card of either end of the track. The centered card and the
// reported index are unchanged by the shift.
//
// A set no wider than the viewport plus one card already rests inside the
// edge zone, so there the settle snap alone brings the track back.
func (m *Model[T]) teleport() bool {
	set := len(m.items) * m.dims.Item
	if set < m.dims.Container+m.dims.Item {
		return false
	}
	total := Copies * set
	half := m.dims.Item / 2

	var shift int
	switch {
	case m.offset < half:
		shift = set
	case m.offset+m.dims.Container > total-half:
		shift = -set
	default:
		return false
	}

	m.setMotion(ProgrammaticScrolling)
	m.offset += shift
	m.log.Debug("teleport", zap.Int("shift", shift), zap.Int("offset", m.offset))
	return true
}

// settle snaps to the nearest card once wheel scrolling has stopped.
func (m *Model[T]) settle() tea.Cmd {
	if m.motion != Settling {
		return nil
	}
	return m.snapTo(m.nearest(m.offset), true)
}
