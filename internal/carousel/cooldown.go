package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type cooldown struct {
	active bool
	until  time.Time
}

// notifyInteraction starts or restarts the interaction window.
func (m *Model[T]) notifyInteraction() tea.Cmd {
	m.cool.active = true
	m.cool.until = m.now().Add(m.cfg.Cooldown)
	return m.timers.arm(timerCooldown, m.cfg.Cooldown)
}

// Interacting reports whether the user is dragging or interacted recently.
func (m Model[T]) Interacting() bool {
	return m.motion == Dragging || m.cool.active
}

// InteractingUntil returns when the current interaction window ends, or the
// zero time when there is none.
func (m Model[T]) InteractingUntil() time.Time {
	if !m.cool.active {
		return time.Time{}
	}
	return m.cool.until
}
