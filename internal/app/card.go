package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/catalog"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
	"github.com/llehouerou/showcase/internal/ui/thumbnail"
)

const (
	defaultImageRows = 6
	minImageRows     = 2

	// cardChrome is the border plus the title and price lines.
	cardChrome = 4
)

// cardLayout is shared by the model and the carousel's card renderer, so a
// new size is picked up when the carousel re-measures.
type cardLayout struct {
	width     int // outer card width, border included
	imageRows int
	thumbs    *thumbnail.Renderer
}

func (l *cardLayout) inner() int {
	return l.width - 2
}

// render draws one product card. Every card has the same size.
func (l *cardLayout) render(p catalog.Product, focused bool) string {
	inner := l.inner()
	s := styles.T().S()

	title := s.Title
	if focused {
		title = title.Foreground(styles.T().Primary)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		l.thumbs.Thumbnail(p.Image, p.ID, inner, l.imageRows),
		title.Render(render.Center(render.Sanitize(p.Title), inner)),
		s.Price.Render(render.Center(p.PriceText(), inner)),
	)
	return styles.CardStyle(focused).Render(body)
}

// imageRowsFor returns the thumbnail height that fits a window of height
// rows. Images are never taller than half their width in cells, which is
// roughly square on screen.
func imageRowsFor(height, inner int) int {
	rows := height - ui.Chrome - cardChrome
	return max(minImageRows, min(rows, inner/2))
}
