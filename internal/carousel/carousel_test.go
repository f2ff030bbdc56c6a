package carousel

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type card string

func (c card) ItemID() string { return string(c) }

func cards(n int) []card {
	out := make([]card, n)
	for i := range out {
		out[i] = card(fmt.Sprintf("item-%d", i))
	}
	return out
}

func fixedWidth(width int) CardRenderer[card] {
	return func(_ card, _ bool) string {
		return strings.Repeat("x", width)
	}
}

// newTestModel returns an idle carousel of n cards of itemWidth centered on
// index 0 inside a container of containerWidth.
func newTestModel(t *testing.T, n, itemWidth, containerWidth int) Model[card] {
	t.Helper()
	m := New(cards(n), Options[card]{Render: fixedWidth(itemWidth)})
	m.SetSize(containerWidth)
	if n > 0 && itemWidth > 0 && containerWidth > 0 {
		m = fire(t, m, timerSnap)
	}
	require.Equal(t, Idle, m.Motion())
	return m
}

// fire delivers the live tick of kind.
func fire(t *testing.T, m Model[card], kind timerKind) Model[card] {
	t.Helper()
	require.True(t, m.timers.pending(kind), "timer %d is not armed", kind)
	m, _ = m.Update(tickMsg{carousel: m.id, kind: kind, gen: m.timers.gen[kind]})
	return m
}

// complete finishes an in-flight snap.
func complete(t *testing.T, m Model[card]) Model[card] {
	t.Helper()
	m = fire(t, m, timerSnap)
	require.Equal(t, Idle, m.Motion())
	return m
}

func press(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func drag(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func wheel(button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: 10, Action: tea.MouseActionPress, Button: button}
}

func TestNew_InitialState(t *testing.T) {
	m := New(cards(4), Options[card]{Render: fixedWidth(20)})

	assert.True(t, m.Mounted())
	assert.True(t, m.Visible())
	assert.False(t, m.Paused())
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, Idle, m.Motion())
	assert.Equal(t, Dimensions{Item: 20, Height: 1}, m.Dimensions())
	assert.True(t, m.timers.pending(timerAdvance))
	assert.NotNil(t, m.Init())
}

func TestNew_DistinctIDs(t *testing.T) {
	a := New(cards(1), Options[card]{})
	b := New(cards(1), Options[card]{})
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ZoneID(), b.ZoneID())
}

func TestUpdate_IgnoresTicksOfOtherCarousels(t *testing.T) {
	a := newTestModel(t, 6, 200, 600)
	b := newTestModel(t, 6, 200, 600)

	a, _ = a.Update(tickMsg{carousel: b.id, kind: timerAdvance, gen: a.timers.gen[timerAdvance]})

	assert.Equal(t, 0, a.Index())
	assert.True(t, a.timers.pending(timerAdvance))
}

func TestSetSize_MeasuresAndCenters(t *testing.T) {
	m := New(cards(6), Options[card]{Render: fixedWidth(200)})

	cmd := m.SetSize(600)

	require.NotNil(t, cmd)
	assert.Equal(t, Dimensions{Container: 600, Item: 200, Height: 1}, m.Dimensions())
	assert.Equal(t, 1000, m.Offset())
	assert.Equal(t, ProgrammaticScrolling, m.Motion())
}

func TestSetSize_DoesNotInterruptAnimation(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m.GoTo(2)

	m.SetSize(400)

	assert.Equal(t, 400, m.Dimensions().Container)
	assert.True(t, m.anim.active, "animation continues with stale geometry")
	assert.Equal(t, 1400, m.anim.target)
}

func TestSetItems_ResetsIndexAndRemeasures(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m.GoTo(3)
	m = complete(t, m)

	m.SetItems(cards(4))

	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, 4*200+100-300, m.Offset())
}

func TestSetItems_AbandonsDrag(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m, _ = m.Update(press(300))
	require.Equal(t, Dragging, m.Motion())

	m.SetItems(cards(3))

	assert.Equal(t, ProgrammaticScrolling, m.Motion())
	m = complete(t, m)
	m, _ = m.Update(release(100))
	assert.Equal(t, Idle, m.Motion())
	assert.Equal(t, 0, m.Index())
}

func TestZeroItems_NoOps(t *testing.T) {
	m := New[card](nil, Options[card]{Render: fixedWidth(200)})

	assert.Nil(t, m.SetSize(600))
	assert.Nil(t, m.GoTo(3))
	assert.Nil(t, m.Next())
	assert.Nil(t, m.Enlarge())
	m, cmd := m.Update(press(10))
	assert.Nil(t, cmd)
	m, cmd = m.Update(wheel(tea.MouseButtonWheelDown))
	assert.Nil(t, cmd)

	assert.Equal(t, 0, m.Index())
	assert.Equal(t, 0, m.Dimensions().Item)
	assert.Equal(t, Idle, m.Motion())
	assert.Empty(t, m.View())
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestZeroContainer_NoOps(t *testing.T) {
	m := New(cards(6), Options[card]{Render: fixedWidth(200)})
	m.SetSize(0)

	assert.Nil(t, m.GoTo(3))
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, 0, m.Offset())
	assert.Empty(t, m.View())
}

func TestUnmount_StopsEverything(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m.GoTo(2)
	m.notifyInteraction()
	stale := tickMsg{carousel: m.id, kind: timerAdvance, gen: m.timers.gen[timerAdvance]}

	m.Unmount()

	for kind := range timerKinds {
		assert.False(t, m.timers.pending(kind), "timer %d still armed", kind)
	}
	m, cmd := m.Update(stale)
	assert.Nil(t, cmd)
	assert.False(t, m.Mounted())
	assert.False(t, m.Interacting())
	assert.Nil(t, m.GoTo(4))
	assert.Nil(t, m.SetSize(800))
	assert.Nil(t, m.SetNarrow(true))
	assert.Nil(t, m.Init())
	assert.Equal(t, 2, m.Index())
}

func TestFocusBlur_TracksVisibility(t *testing.T) {
	m := newTestModel(t, 3, 10, 30)

	m, _ = m.Update(tea.BlurMsg{})
	assert.False(t, m.Visible())

	m, _ = m.Update(tea.FocusMsg{})
	assert.True(t, m.Visible())
}

func TestMotion_String(t *testing.T) {
	tests := map[Motion]string{
		Idle:                  "idle",
		Dragging:              "dragging",
		ProgrammaticScrolling: "programmatic",
		Settling:              "settling",
		Motion(42):            "unknown",
	}
	for motion, want := range tests {
		assert.Equal(t, want, motion.String())
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	got := Config{AutoAdvance: time.Second, WheelStep: -1}.withDefaults()

	assert.Equal(t, time.Second, got.AutoAdvance)
	assert.Equal(t, DefaultAutoAdvanceNarrow, got.AutoAdvanceNarrow)
	assert.Equal(t, DefaultCooldown, got.Cooldown)
	assert.Equal(t, DefaultSettleDelay, got.SettleDelay)
	assert.Equal(t, DefaultSnapDuration, got.SnapDuration)
	assert.Equal(t, DefaultWheelStep, got.WheelStep)
}

func TestFloorDivAndWrap(t *testing.T) {
	tests := []struct {
		a, b, div int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 5, 0},
		{-1, 200, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.div, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
	}
	assert.Equal(t, 5, wrap(-1, 6))
	assert.Equal(t, 0, wrap(12, 6))
	assert.Equal(t, 0, wrap(-7, 1))
}
