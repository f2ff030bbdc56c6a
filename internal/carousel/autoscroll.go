package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type scheduler struct {
	narrow  bool
	paused  bool
	visible bool
}

func (s scheduler) period(cfg Config) time.Duration {
	if s.narrow {
		return cfg.AutoAdvanceNarrow
	}
	return cfg.AutoAdvance
}

// SetNarrow selects the auto-advance period for the viewport class.
func (m *Model[T]) SetNarrow(narrow bool) tea.Cmd {
	if !m.mounted || m.sched.narrow == narrow {
		return nil
	}
	m.sched.narrow = narrow
	return m.restartScheduler()
}

func (m *Model[T]) setPaused(paused bool) tea.Cmd {
	if m.sched.paused == paused {
		return nil
	}
	m.sched.paused = paused
	return m.restartScheduler()
}

func (m *Model[T]) restartScheduler() tea.Cmd {
	m.timers.cancel(timerAdvance)
	if !m.mounted || m.sched.paused {
		return nil
	}
	period := m.sched.period(m.cfg)
	m.log.Debug("auto-advance", zap.Duration("period", period))
	return m.timers.arm(timerAdvance, period)
}

// advance re-arms the period and moves one card forward when nobody is
// using the carousel. Periods that pass in the background are simply lost.
func (m *Model[T]) advance() tea.Cmd {
	next := m.timers.arm(timerAdvance, m.sched.period(m.cfg))
	if !m.sched.visible || m.Interacting() || m.motion == Settling {
		return next
	}
	return tea.Batch(next, m.snapTo(m.index+1, true))
}
