package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/catalog"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/headerbar"
	"github.com/llehouerou/showcase/internal/ui/overlay"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

const (
	dotOn  = "●"
	dotOff = "○"

	enlargedMaxWidth = 64
	enlargedMinWidth = 24
)

// View renders the application UI.
func (m Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}

	sections := []string{
		headerbar.Render(m.Title, m.Carousel.Index(), m.Carousel.Len(), w),
		render.EmptyLine(w),
	}
	if m.Carousel.Len() == 0 {
		sections = append(sections, m.renderEmpty(w))
	} else {
		sections = append(sections,
			m.renderTrack(w),
			m.renderDots(w),
			m.renderCaption(w),
		)
	}
	sections = append(sections, m.renderStatus(w), m.renderHelp(w))

	view := lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, sections...))

	switch {
	case m.help.ShowAll:
		view = overlay.Center(view, m.renderFullHelp(), w, h)
	case m.Enlarged >= 0:
		if p, ok := m.enlargedProduct(); ok {
			view = overlay.Center(view, m.renderEnlarged(p, w, h), w, h)
		}
	}

	if m.zone != nil {
		view = m.zone.Scan(view)
	}
	return view
}

// renderTrack indents the carousel by the track margin on both sides.
func (m Model) renderTrack(width int) string {
	margin := render.EmptyLine(ui.TrackMargin)
	lines := strings.Split(m.Carousel.View(), "\n")
	for i, line := range lines {
		lines[i] = render.Pad(margin+line, width)
	}
	return strings.Join(lines, "\n")
}

// renderDots draws one indicator per product. Long catalogs rely on the
// counter in the header instead.
func (m Model) renderDots(width int) string {
	n := m.Carousel.Len()
	if n > ui.MaxDots || 2*n-1 > width {
		return render.EmptyLine(width)
	}
	s := styles.T().S()

	dots := make([]string, n)
	for i := range n {
		dot := s.DotOff.Render(dotOff)
		if i == m.Carousel.Index() {
			dot = s.DotOn.Render(dotOn)
		}
		if m.zone != nil {
			dot = m.zone.Mark(m.dotZoneID(i), dot)
		}
		dots[i] = dot
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(dots, " "))
}

// renderCaption shows the centered product: title, one line of subtitle
// and the price.
func (m Model) renderCaption(width int) string {
	p, ok := m.Carousel.Current()
	if !ok {
		return strings.Repeat(render.EmptyLine(width)+"\n", ui.CaptionHeight-1) + render.EmptyLine(width)
	}
	s := styles.T().S()
	inner := max(width-4, 1)

	subtitle := ""
	if lines := render.Wrap(render.Sanitize(p.Subtitle), inner, 1); len(lines) > 0 {
		subtitle = lines[0]
	}

	return strings.Join([]string{
		s.Title.Render(render.Center(render.Sanitize(p.Title), width)),
		s.Muted.Render(render.Center(subtitle, width)),
		s.Price.Render(render.Center(p.PriceText(), width)),
	}, "\n")
}

func (m Model) renderEmpty(width int) string {
	msg := styles.T().S().Muted.Render(render.Center("No featured products", width))
	return msg + "\n" + render.EmptyLine(width)
}

func (m Model) renderStatus(width int) string {
	if m.ErrorMsg == "" {
		return render.EmptyLine(width)
	}
	return styles.T().S().Error.Render(render.TruncateAndPad(m.ErrorMsg, width))
}

func (m Model) renderHelp(width int) string {
	h := m.help
	h.ShowAll = false
	keys := m.browseHelp
	if m.Enlarged >= 0 {
		keys = m.enlargedHelp
	}
	return render.Center(h.View(keys), width)
}

func (m Model) renderFullHelp() string {
	h := m.help
	h.ShowAll = true
	return styles.T().S().Enlarged.Render(h.View(m.browseHelp))
}

// renderEnlarged draws the product details box shown over the screen.
func (m Model) renderEnlarged(p catalog.Product, width, height int) string {
	t := styles.T()
	s := t.S()

	// Border and horizontal padding take four columns.
	inner := min(width, enlargedMaxWidth) - 4
	if inner < enlargedMinWidth-4 {
		inner = max(width-4, 1)
	}

	var lines []string
	if rows := min(height-14, inner/2); rows >= minImageRows {
		lines = append(lines, m.thumbs.Thumbnail(p.Image, p.ID, inner, rows), "")
	}

	lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		styles.Gradient(render.Truncate(render.Sanitize(p.Title), inner), true, t.Primary, t.Secondary)))
	for _, line := range render.Wrap(render.Sanitize(p.Subtitle), inner, 3) {
		lines = append(lines, s.Muted.Render(render.Center(line, inner)))
	}
	position := fmt.Sprintf("%d of %d", m.Enlarged+1, m.Carousel.Len())
	lines = append(lines,
		"",
		s.Price.Render(render.Center(p.PriceText(), inner)),
		s.Subtle.Render(render.Center(position, inner)),
	)

	return s.Enlarged.Render(strings.Join(lines, "\n"))
}
