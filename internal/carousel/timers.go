package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type timerKind int

const (
	timerSnap     timerKind = iota // clears ProgrammaticScrolling once a snap is done
	timerFrame                     // next animation frame
	timerSettle                    // wheel debounce
	timerCooldown                  // end of the interaction window
	timerAdvance                   // auto-advance period
	timerKinds
)

// tickMsg is delivered by every carousel timer.
type tickMsg struct {
	carousel int64
	kind     timerKind
	gen      uint64
}

// timers tracks one live generation per timer kind. Only a tick carrying the
// current generation of an armed kind is acted on.
type timers struct {
	owner int64
	gen   [timerKinds]uint64
	armed [timerKinds]bool
}

// prime marks kind as armed with a fresh generation without building a command.
func (t *timers) prime(kind timerKind) {
	t.gen[kind]++
	t.armed[kind] = true
}

// tick builds the command for the current generation of kind.
func (t *timers) tick(kind timerKind, d time.Duration) tea.Cmd {
	msg := tickMsg{carousel: t.owner, kind: kind, gen: t.gen[kind]}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// arm replaces any pending timer of kind.
func (t *timers) arm(kind timerKind, d time.Duration) tea.Cmd {
	t.prime(kind)
	return t.tick(kind, d)
}

func (t *timers) cancel(kind timerKind) {
	t.gen[kind]++
	t.armed[kind] = false
}

func (t *timers) cancelAll() {
	for kind := range timerKinds {
		t.cancel(kind)
	}
}

func (t *timers) pending(kind timerKind) bool {
	return t.armed[kind]
}

// fire consumes msg and reports whether it is the live tick of its kind.
func (t *timers) fire(msg tickMsg) bool {
	if msg.carousel != t.owner || msg.kind < 0 || msg.kind >= timerKinds {
		return false
	}
	if !t.armed[msg.kind] || msg.gen != t.gen[msg.kind] {
		return false
	}
	t.armed[msg.kind] = false
	return true
}
