// Package headerbar renders the title and position lines above the carousel.
package headerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 2

// Render returns the header for width columns: the gradient title centered
// on the first line, "3 of 10" under it. index is 0-based.
func Render(title string, index, total, width int) string {
	if width <= 0 {
		return "\n"
	}
	t := styles.T()

	name := render.Truncate(title, width)
	line1 := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		styles.Gradient(name, true, t.Primary, t.Secondary))

	var position string
	if total > 0 {
		position = fmt.Sprintf("%d of %d", index+1, total)
	}
	line2 := t.S().Muted.Render(render.Center(position, width))

	return line1 + "\n" + line2
}
