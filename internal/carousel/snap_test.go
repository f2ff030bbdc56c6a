package carousel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoTo_WrapsIntoRange(t *testing.T) {
	for n := 1; n <= 7; n++ {
		m := newTestModel(t, n, 10, 30)
		for k := -20; k <= 20; k++ {
			m.GoTo(k)
			want := ((k % n) + n) % n
			require.Equal(t, want, m.Index(), "n=%d k=%d", n, k)
		}
	}
}

func TestGoTo_CentersMiddleCopy(t *testing.T) {
	// Six cards of 200 in a 600 wide viewport.
	m := newTestModel(t, 6, 200, 600)

	m.GoTo(0)
	m = complete(t, m)
	assert.Equal(t, 6*200+100-300, m.Offset())
	assert.Equal(t, 1000, m.Offset())

	m.GoTo(5)
	assert.Equal(t, 5, m.Index(), "index is reported before the animation ends")
	m = complete(t, m)
	assert.Equal(t, 11*200+100-300, m.Offset())
	assert.Equal(t, 2000, m.Offset())
	assert.Equal(t, 5, m.Index())
}

func TestGoTo_IsIdempotent(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)

	m.GoTo(3)
	m = complete(t, m)
	first := m.Offset()

	m.GoTo(3)
	assert.Equal(t, first, m.Offset())
	assert.False(t, m.anim.active)
	m = complete(t, m)
	assert.Equal(t, first, m.Offset())
}

func TestGoTo_AnimatesTowardTarget(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)

	m.GoTo(1)
	require.Equal(t, ProgrammaticScrolling, m.Motion())
	assert.Equal(t, 1000, m.Offset(), "offset does not jump")

	prev := m.Offset()
	for range 5 {
		m = fire(t, m, timerFrame)
		assert.GreaterOrEqual(t, m.Offset(), prev)
		assert.LessOrEqual(t, m.Offset(), 1200)
		prev = m.Offset()
	}
	assert.Greater(t, m.Offset(), 1000)

	m = complete(t, m)
	assert.Equal(t, 1200, m.Offset())
	assert.False(t, m.timers.pending(timerFrame))
}

func TestGoTo_IgnoredWhileDragging(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m, _ = m.Update(press(300))

	assert.Nil(t, m.GoTo(4))
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, Dragging, m.Motion())
}

func TestNextPrev(t *testing.T) {
	m := newTestModel(t, 3, 10, 30)

	m.Prev()
	assert.Equal(t, 2, m.Index())
	m.Next()
	m.Next()
	assert.Equal(t, 1, m.Index())
}

func TestImmediateSnap_ClearsMarkerOnNextTick(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)

	m.snapTo(4, false)

	assert.Equal(t, 1000+4*200, m.Offset())
	assert.Equal(t, ProgrammaticScrolling, m.Motion())
	m = complete(t, m)
	assert.Equal(t, Idle, m.Motion())
}

func TestProgrammaticScroll_IgnoresWheel(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m.GoTo(2)

	m, cmd := m.Update(wheel(tea.MouseButtonWheelDown))

	assert.Nil(t, cmd)
	assert.Equal(t, 1000, m.Offset())
	assert.Equal(t, ProgrammaticScrolling, m.Motion())
	assert.False(t, m.timers.pending(timerSettle))
}

func TestEnlarge_EmitsCurrentItem(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m.GoTo(4)

	cmd := m.Enlarge()
	require.NotNil(t, cmd)
	msg, ok := cmd().(EnlargeMsg)
	require.True(t, ok)
	assert.Equal(t, EnlargeMsg{Carousel: m.ID(), Index: 4, ID: "item-4"}, msg)

	item, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, card("item-4"), item)
}

func TestEnlarge_IgnoredWhileDragging(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m, _ = m.Update(press(300))

	assert.Nil(t, m.Enlarge())
	assert.Equal(t, Dragging, m.Motion())
}

func TestGoTo_WrapToFirstRunsBackThroughMiddleCopy(t *testing.T) {
	m := newTestModel(t, 6, 200, 600)
	m.GoTo(5)
	m = complete(t, m)
	require.Equal(t, 2000, m.Offset())

	m.GoTo(0)
	m = fire(t, m, timerFrame)
	assert.Less(t, m.Offset(), 2000, "first frame heads back toward the start of the copy")

	m = complete(t, m)
	assert.Equal(t, 1000, m.Offset())
}
