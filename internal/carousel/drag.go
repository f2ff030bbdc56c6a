package carousel

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// dragState is recorded when the pointer goes down on the track.
type dragState struct {
	startX  int // absolute pointer column at press
	localX  int // pointer column relative to the track at press
	initial int // offset at press
	moved   bool
}

// dragStart takes over the track. Any programmatic motion is dropped where
// it is, so tracking starts from what is on screen.
func (m *Model[T]) dragStart(x, localX int) tea.Cmd {
	if len(m.items) == 0 || m.dims.Item == 0 {
		return nil
	}
	m.cancelProgrammatic()
	m.drag = dragState{startX: x, localX: localX, initial: m.offset}
	m.setMotion(Dragging)
	return tea.Batch(m.notifyInteraction(), m.setPaused(true))
}

func (m *Model[T]) dragMove(x int) {
	if m.motion != Dragging {
		return
	}
	if x != m.drag.startX {
		m.drag.moved = true
	}
	m.offset = m.drag.initial - (x - m.drag.startX)
}

// dragEnd settles on the card nearest the viewport center. A press that
// never moved is also a click on the card under the pointer.
func (m *Model[T]) dragEnd(x int) tea.Cmd {
	if m.motion != Dragging {
		return nil
	}
	m.dragMove(x)

	var enlarge tea.Cmd
	if !m.drag.moved {
		enlarge = m.enlargeAt(m.drag.localX)
	}

	target := m.nearest(m.offset)
	m.log.Debug("drag end",
		zap.Int("delta", x-m.drag.startX),
		zap.Int("offset", m.offset),
		zap.Int("target", target))
	m.setMotion(Idle)

	return tea.Batch(
		m.notifyInteraction(),
		m.setPaused(false),
		m.snapTo(target, true),
		enlarge,
	)
}

// enlargeAt emits an EnlargeMsg for the card at track column localX.
func (m *Model[T]) enlargeAt(localX int) tea.Cmd {
	if !m.canMove() || localX < 0 || localX >= m.dims.Container {
		return nil
	}
	physical := floorDiv(m.offset+localX, m.dims.Item)
	if physical < 0 || physical >= Copies*len(m.items) {
		return nil
	}
	return m.enlargeCmd(physical % len(m.items))
}
