package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/carousel"
	"github.com/llehouerou/showcase/internal/catalog"
	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/ui/testutil"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "lamp", Title: "Brass Desk Lamp", Subtitle: "Warm dimmable LED", Price: 12900, Currency: "USD"},
		{ID: "chair", Title: "Oak Lounge Chair", Subtitle: "Solid oak frame", Price: 64900, Currency: "USD"},
		{ID: "kettle", Title: "Copper Kettle", Subtitle: "Works on induction", Price: 8950, Currency: "USD"},
	}
}

func newTestModel(t *testing.T, products []catalog.Product) *testutil.Harness {
	t.Helper()
	h := testutil.NewHarness(New(Options{Products: products}))
	h.Resize(120, 40)
	return h
}

func model(t *testing.T, h *testutil.Harness) Model {
	t.Helper()
	m, ok := h.Model().(Model)
	require.True(t, ok, "Update should return Model")
	return m
}

func TestNew_Defaults(t *testing.T) {
	m := New(Options{Products: testProducts()})

	assert.Equal(t, DefaultTitle, m.Title)
	assert.Equal(t, -1, m.Enlarged)
	assert.Equal(t, 3, m.Carousel.Len())
	assert.Equal(t, config.DefaultCardWidth, m.cfg.CardWidth)
	assert.Equal(t, config.DefaultCardWidth, m.Carousel.Dimensions().Item)
}

func TestUpdate_WindowSizeMsg_ResizesCarousel(t *testing.T) {
	h := newTestModel(t, testProducts())
	m := model(t, h)

	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 40, m.Height())
	dims := m.Carousel.Dimensions()
	assert.Equal(t, 118, dims.Container)
	assert.Equal(t, config.DefaultCardWidth, dims.Item)
	assert.Equal(t, 13+cardChrome, dims.Height, "image is capped at half the card width")
	assert.False(t, m.Carousel.Narrow())

	h.Resize(80, 24)
	m = model(t, h)
	assert.True(t, m.Carousel.Narrow())
	assert.Equal(t, 11+cardChrome, m.Carousel.Dimensions().Height)
}

func TestImageRowsFor(t *testing.T) {
	tests := []struct {
		height, inner, want int
	}{
		{40, 26, 13},
		{24, 26, 11},
		{10, 26, minImageRows},
		{0, 26, minImageRows},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, imageRowsFor(tt.height, tt.inner), "height %d", tt.height)
	}
}

func TestUpdate_ArrowKeysMoveCarousel(t *testing.T) {
	h := newTestModel(t, testProducts())

	h.SendSpecialKey(tea.KeyRight)
	assert.Equal(t, 1, model(t, h).Carousel.Index())

	h.SendKey("h")
	h.SendKey("h")
	assert.Equal(t, 2, model(t, h).Carousel.Index(), "previous wraps to the last product")
}

func TestUpdate_DigitJumps(t *testing.T) {
	h := newTestModel(t, testProducts())

	h.SendKey("3")
	assert.Equal(t, 2, model(t, h).Carousel.Index())

	cmd := h.SendKey("9")
	assert.Nil(t, cmd)
	assert.Equal(t, 2, model(t, h).Carousel.Index(), "digits past the catalog are ignored")
}

func TestUpdate_UnboundKeyIgnored(t *testing.T) {
	h := newTestModel(t, testProducts())

	cmd := h.SendKey("z")

	assert.Nil(t, cmd)
	assert.Equal(t, 0, model(t, h).Carousel.Index())
}

func TestUpdate_EnterEnlargesCurrentProduct(t *testing.T) {
	h := newTestModel(t, testProducts())
	h.SendKey("2")

	cmd := h.SendSpecialKey(tea.KeyEnter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(carousel.EnlargeMsg)
	require.True(t, ok)
	assert.Equal(t, "chair", msg.ID)

	h.SendMsg(msg)
	m := model(t, h)
	assert.Equal(t, 1, m.Enlarged)
	assert.True(t, h.ViewContains("2 of 3"))
	assert.True(t, h.ViewContains("Solid oak frame"))

	h.SendSpecialKey(tea.KeyEsc)
	assert.Equal(t, -1, model(t, h).Enlarged)
}

func TestUpdate_EnlargeFromOtherCarouselIgnored(t *testing.T) {
	h := newTestModel(t, testProducts())
	id := model(t, h).Carousel.ID()

	h.SendMsg(carousel.EnlargeMsg{Carousel: id + 1000, Index: 1, ID: "chair"})

	assert.Equal(t, -1, model(t, h).Enlarged)
}

func TestUpdate_EnlargedBrowsingMovesCarousel(t *testing.T) {
	h := newTestModel(t, testProducts())
	h.SendMsg(carousel.EnlargeMsg{Carousel: model(t, h).Carousel.ID(), Index: 0, ID: "lamp"})

	h.SendSpecialKey(tea.KeyRight)
	m := model(t, h)
	assert.Equal(t, 1, m.Enlarged)
	assert.Equal(t, 1, m.Carousel.Index())

	h.SendSpecialKey(tea.KeyLeft)
	h.SendSpecialKey(tea.KeyLeft)
	m = model(t, h)
	assert.Equal(t, 2, m.Enlarged)
	assert.Equal(t, 2, m.Carousel.Index())

	// Enter closes here instead of enlarging again.
	h.SendSpecialKey(tea.KeyEnter)
	assert.Equal(t, -1, model(t, h).Enlarged)
}

func TestUpdate_ClickClosesEnlarged(t *testing.T) {
	h := newTestModel(t, testProducts())
	h.SendMsg(carousel.EnlargeMsg{Carousel: model(t, h).Carousel.ID(), Index: 2, ID: "kettle"})

	cmd := h.Press(10, 10)

	assert.Nil(t, cmd)
	m := model(t, h)
	assert.Equal(t, -1, m.Enlarged)
	assert.Equal(t, carousel.ProgrammaticScrolling, m.Carousel.Motion(), "press did not reach the track")
}

func TestUpdate_DragMovesCarousel(t *testing.T) {
	h := newTestModel(t, testProducts())

	h.Press(50, 10)
	assert.Equal(t, carousel.Dragging, model(t, h).Carousel.Motion())
	h.Drag(22, 10)
	h.Release(22, 10)

	m := model(t, h)
	assert.Equal(t, 1, m.Carousel.Index())
	assert.True(t, m.Carousel.Interacting())
}

func TestUpdate_QuitUnmountsCarousel(t *testing.T) {
	h := newTestModel(t, testProducts())

	cmd := h.SendKey("q")

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.False(t, model(t, h).Carousel.Mounted())
}

func TestUpdate_HelpToggle(t *testing.T) {
	h := newTestModel(t, testProducts())
	assert.False(t, h.ViewContains("jump to product"))

	h.SendKey("?")
	assert.True(t, model(t, h).HelpVisible())
	assert.True(t, h.ViewContains("jump to product"))

	h.SendKey("?")
	assert.False(t, model(t, h).HelpVisible())
}

func TestUpdate_FocusForwardedToCarousel(t *testing.T) {
	h := newTestModel(t, testProducts())

	h.SendMsg(tea.BlurMsg{})
	assert.False(t, model(t, h).Carousel.Visible())

	h.SendMsg(tea.FocusMsg{})
	assert.True(t, model(t, h).Carousel.Visible())
}

func TestUpdate_WarmedFailureShowsError(t *testing.T) {
	h := newTestModel(t, testProducts())

	h.SendMsg(thumbnailFailure("/img/b.png", "/img/a.png"))

	m := model(t, h)
	assert.Contains(t, m.ErrorMsg, "load product image")
	assert.Contains(t, m.ErrorMsg, "/img/a.png", "first path in order is reported")
	assert.True(t, h.ViewContains("/img/a.png"))
}

func TestView_ShowsHeaderCarouselAndCaption(t *testing.T) {
	h := newTestModel(t, testProducts())

	view := testutil.StripANSI(h.View())
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, 40)
	for i, line := range lines {
		assert.Equal(t, 120, testutil.MeasureWidth(line), "line %d", i)
	}
	assert.True(t, testutil.ContainsLine(view, "Featured"))
	assert.True(t, testutil.ContainsLine(view, "1 of 3"))
	assert.True(t, testutil.ContainsLine(view, "●"))
	assert.True(t, testutil.ContainsLine(view, "Warm dimmable LED"))
	assert.True(t, testutil.ContainsLine(view, "$129.00"))
	assert.True(t, testutil.ContainsLine(view, "Oak Lounge Chair"), "neighbour card is visible")
}

func TestView_DotsFollowIndex(t *testing.T) {
	h := newTestModel(t, testProducts())
	h.SendKey("3")

	dots := testutil.FindLine(testutil.StripANSI(h.View()), "●")

	assert.Equal(t, "○ ○ ●", strings.TrimSpace(dots))
}

func TestView_Empty(t *testing.T) {
	h := newTestModel(t, nil)

	assert.True(t, h.ViewContains("No featured products"))
	assert.Nil(t, h.SendSpecialKey(tea.KeyEnter))
}

func TestView_ZeroSize(t *testing.T) {
	m := New(Options{Products: testProducts()})

	assert.Empty(t, m.View())
}

func TestUpdate_DragEndsWhileEnlarged(t *testing.T) {
	h := newTestModel(t, testProducts())
	id := model(t, h).Carousel.ID()

	h.Press(60, 10)
	require.Equal(t, carousel.Dragging, model(t, h).Carousel.Motion())

	assert.Nil(t, h.SendSpecialKey(tea.KeyEnter), "enter is ignored while the button is held")
	assert.Equal(t, -1, model(t, h).Enlarged)

	// The view can still open mid-drag from an earlier click.
	h.SendMsg(carousel.EnlargeMsg{Carousel: id, Index: 0, ID: "lamp"})
	h.Release(60, 10)

	m := model(t, h)
	assert.NotEqual(t, carousel.Dragging, m.Carousel.Motion())
	assert.False(t, m.Carousel.Paused())
	assert.Equal(t, 0, m.Enlarged, "release does not close the view")

	h.SendSpecialKey(tea.KeyEsc)
	h.SendSpecialKey(tea.KeyRight)
	assert.Equal(t, 1, model(t, h).Carousel.Index())
}
