package carousel

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// GoTo centers logical index i, wrapped into range, with an animated snap.
// It is ignored while the pointer is dragging the track.
func (m *Model[T]) GoTo(i int) tea.Cmd {
	if !m.mounted || m.motion == Dragging {
		return nil
	}
	return m.snapTo(i, true)
}

// Next centers the following item.
func (m *Model[T]) Next() tea.Cmd { return m.GoTo(m.index + 1) }

// Prev centers the preceding item.
func (m *Model[T]) Prev() tea.Cmd { return m.GoTo(m.index - 1) }

// Enlarge emits an EnlargeMsg for the current item. It is ignored while
// the pointer is dragging the track; the release decides what was clicked.
func (m *Model[T]) Enlarge() tea.Cmd {
	if len(m.items) == 0 || m.motion == Dragging {
		return nil
	}
	return m.enlargeCmd(m.index)
}

// centerOffset is the offset that centers logical in the middle copy.
func (m *Model[T]) centerOffset(logical int) int {
	physical := logical + MiddleCopy*len(m.items)
	return physical*m.dims.Item + m.dims.Item/2 - m.dims.Container/2
}

// nearest returns the logical index of the card whose span contains the
// viewport center at offset.
func (m *Model[T]) nearest(offset int) int {
	center := offset + m.dims.Container/2
	return wrap(floorDiv(center, m.dims.Item), len(m.items))
}

// snapTo moves the track so logical is centered. The reported index changes
// immediately; ProgrammaticScrolling is held until the move is complete.
func (m *Model[T]) snapTo(logical int, smooth bool) tea.Cmd {
	if !m.canMove() {
		return nil
	}
	logical = wrap(logical, len(m.items))
	target := m.centerOffset(logical)

	m.timers.cancel(timerSettle)
	m.setMotion(ProgrammaticScrolling)
	m.index = logical
	m.log.Debug("snap",
		zap.Int("index", logical),
		zap.Int("from", m.offset),
		zap.Int("to", target),
		zap.Bool("smooth", smooth))

	if !smooth || m.offset == target {
		m.anim.stop()
		m.timers.cancel(timerFrame)
		m.offset = target
		return m.timers.arm(timerSnap, 0)
	}

	m.anim.start(m.offset, target)
	return tea.Batch(
		m.timers.arm(timerSnap, m.cfg.SnapDuration),
		m.timers.arm(timerFrame, frameInterval),
	)
}

func (m *Model[T]) stepAnimation() tea.Cmd {
	if !m.anim.active {
		return nil
	}
	m.offset = m.anim.step()
	return m.timers.arm(timerFrame, frameInterval)
}

// finishSnap pins the animation target and returns to Idle.
func (m *Model[T]) finishSnap() {
	if m.anim.active {
		m.offset = m.anim.target
		m.anim.stop()
	}
	m.timers.cancel(timerFrame)
	if m.motion == ProgrammaticScrolling {
		m.setMotion(Idle)
	}
}

// cancelProgrammatic abandons any snap, animation or pending settle.
func (m *Model[T]) cancelProgrammatic() {
	m.anim.stop()
	m.timers.cancel(timerSnap)
	m.timers.cancel(timerFrame)
	m.timers.cancel(timerSettle)
}

func (m *Model[T]) enlargeCmd(logical int) tea.Cmd {
	msg := EnlargeMsg{
		Carousel: m.id,
		Index:    logical,
		ID:       m.items[logical].ItemID(),
	}
	return func() tea.Msg {
		return msg
	}
}
