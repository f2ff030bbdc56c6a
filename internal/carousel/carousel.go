// Package carousel implements an endlessly looping strip of equally sized
// cards that advances on its own, follows mouse drags 1:1, scrolls with the
// wheel and always comes to rest with one card centered.
//
// The track holds Copies concatenated copies of the item list. The viewport
// rests in the middle copy, so any single gesture has a full item-set of
// slack on both sides; positions are reported modulo the item count.
//
// All state lives in Model and is mutated only from Update and the exported
// pointer methods, which bubbletea calls from a single goroutine. Timers are
// tea.Tick commands tagged with a per-kind generation; re-arming or
// cancelling a timer bumps its generation so late ticks are ignored.
package carousel

import (
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/ui/render"
)

const (
	// Copies is the number of times the item list is repeated on the track.
	// Three is the minimum that keeps one full set on each side of the copy
	// the viewport rests in.
	Copies = 3

	// MiddleCopy is the copy every snap targets.
	MiddleCopy = 1
)

// Item is anything the carousel can show. Only its identity is ever read.
type Item interface {
	ItemID() string
}

// CardRenderer renders one card. All cards must render to the same width;
// focused is true for the card under the viewport center.
type CardRenderer[T Item] func(item T, focused bool) string

// Options configures a new carousel.
type Options[T Item] struct {
	Config Config
	Render CardRenderer[T]

	// Zone, when set, restricts presses and wheel events to the rendered
	// track. Without it every mouse event is taken to be on the track.
	Zone *zone.Manager

	Logger *zap.Logger
	Now    func() time.Time
}

// EnlargeMsg asks the parent to show a card in a larger view. It is emitted
// when a card is clicked without being dragged.
type EnlargeMsg struct {
	Carousel int64
	Index    int
	ID       string
}

var nextID atomic.Int64

// Model is the carousel state owner.
type Model[T Item] struct {
	id     int64
	cfg    Config
	items  []T
	render CardRenderer[T]
	zone   *zone.Manager
	log    *zap.Logger
	now    func() time.Time

	dims    Dimensions
	offset  int
	index   int
	motion  Motion
	anim    animation
	drag    dragState
	cool    cooldown
	sched   scheduler
	timers  timers
	mounted bool
}

// New creates a mounted carousel. Call SetSize before anything can move and
// return Init from the parent's Init to start auto-advance.
func New[T Item](items []T, opts Options[T]) Model[T] {
	id := nextID.Add(1)
	m := Model[T]{
		id:      id,
		cfg:     opts.Config.withDefaults(),
		items:   slices.Clone(items),
		render:  opts.Render,
		zone:    opts.Zone,
		log:     opts.Logger,
		now:     opts.Now,
		anim:    newAnimation(),
		sched:   scheduler{visible: true},
		timers:  timers{owner: id},
		mounted: true,
	}
	if m.render == nil {
		m.render = plainCard[T]
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.log = m.log.With(zap.Int64("carousel", id))
	m.timers.prime(timerAdvance)
	m.measure()
	return m
}

// Init returns the first auto-advance tick.
func (m Model[T]) Init() tea.Cmd {
	if !m.mounted || m.sched.paused {
		return nil
	}
	return m.timers.tick(timerAdvance, m.sched.period(m.cfg))
}

// Unmount stops every timer. Ticks already in flight are dropped and no
// further input is processed.
func (m *Model[T]) Unmount() {
	m.timers.cancelAll()
	m.anim.stop()
	m.cool.active = false
	m.motion = Idle
	m.mounted = false
	m.log.Debug("unmounted")
}

// ID identifies this carousel in the messages it emits.
func (m Model[T]) ID() int64 { return m.id }

// ZoneID is the bubblezone id of the rendered track.
func (m Model[T]) ZoneID() string { return fmt.Sprintf("carousel-%d", m.id) }

// Len returns the number of logical items.
func (m Model[T]) Len() int { return len(m.items) }

// Items returns the logical items.
func (m Model[T]) Items() []T { return m.items }

// Index returns the current logical index, or 0 when there are no items.
func (m Model[T]) Index() int { return m.index }

// Current returns the item at the current index.
func (m Model[T]) Current() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.index], true
}

// Offset returns the raw track offset in columns.
func (m Model[T]) Offset() int { return m.offset }

// Motion returns the active motion state.
func (m Model[T]) Motion() Motion { return m.motion }

// Dimensions returns the last measurement.
func (m Model[T]) Dimensions() Dimensions { return m.dims }

// Mounted reports whether the carousel is still live.
func (m Model[T]) Mounted() bool { return m.mounted }

// Visible reports whether the terminal is believed to be in the foreground.
func (m Model[T]) Visible() bool { return m.sched.visible }

// Paused reports whether auto-advance is paused by a held pointer.
func (m Model[T]) Paused() bool { return m.sched.paused }

// Narrow reports whether the short auto-advance period is in use.
func (m Model[T]) Narrow() bool { return m.sched.narrow }

// Update routes timer ticks, mouse input and focus changes.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	if !m.mounted {
		return m, nil
	}

	switch msg := msg.(type) {
	case tickMsg:
		if !m.timers.fire(msg) {
			return m, nil
		}
		return m, m.handleTimer(msg.kind)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.FocusMsg:
		m.sched.visible = true

	case tea.BlurMsg:
		m.sched.visible = false
	}

	return m, nil
}

func (m *Model[T]) handleTimer(kind timerKind) tea.Cmd {
	switch kind {
	case timerSnap:
		m.finishSnap()
	case timerFrame:
		return m.stepAnimation()
	case timerSettle:
		return m.settle()
	case timerCooldown:
		m.cool.active = false
	case timerAdvance:
		return m.advance()
	case timerKinds:
	}
	return nil
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive // only left button and wheel move the track
		case tea.MouseButtonLeft:
			local, ok := m.trackX(msg)
			if !ok {
				return nil
			}
			return m.dragStart(msg.X, local)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if _, ok := m.trackX(msg); !ok {
				return nil
			}
			return m.scrollBy(-m.cfg.WheelStep)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if _, ok := m.trackX(msg); !ok {
				return nil
			}
			return m.scrollBy(m.cfg.WheelStep)
		}

	case tea.MouseActionMotion:
		m.dragMove(msg.X)

	case tea.MouseActionRelease:
		return m.dragEnd(msg.X)
	}
	return nil
}

// trackX returns the pointer column relative to the track.
func (m *Model[T]) trackX(msg tea.MouseMsg) (int, bool) {
	if m.zone == nil {
		return msg.X, true
	}
	z := m.zone.Get(m.ZoneID())
	if !z.InBounds(msg) {
		return 0, false
	}
	x, _ := z.Pos(msg)
	return x, true
}

func (m *Model[T]) setMotion(next Motion) {
	if m.motion == next {
		return
	}
	m.log.Debug("motion", zap.Stringer("from", m.motion), zap.Stringer("to", next))
	m.motion = next
}

func (m *Model[T]) canMove() bool {
	return len(m.items) > 0 && m.dims.Item > 0 && m.dims.Container > 0
}

func plainCard[T Item](item T, focused bool) string {
	const width = 16
	if focused {
		return "[" + render.TruncateAndPad(item.ItemID(), width-2) + "]"
	}
	return " " + render.TruncateAndPad(item.ItemID(), width-2) + " "
}
