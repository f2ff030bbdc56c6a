// Package overlay draws a box over an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Center draws box in the middle of a width x height base view.
func Center(base, box string, width, height int) string {
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
	return Compose(base, placed, width)
}

// Compose overlays content on top of a base view. On every overlay line the
// span between the first and last visible character replaces the base;
// leading and trailing spaces let the base show through. ANSI styling on
// both sides is preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(trimmed)

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		out := ansi.Cut(under, 0, start) + ansi.Cut(line, start, end)
		if end < width {
			out += ansi.Cut(under, end, width)
		}
		baseLines[i] = out
	}

	return strings.Join(baseLines, "\n")
}
