package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(bold).Render(text)
	}

	colors := Blend(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i]).Bold(bold)
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// Blend returns size colors blended between from and to in HCL space.
func Blend(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}

	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))

	colors := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	colors[0], colors[size-1] = from, to
	return colors
}

// Hex converts any color to a lipgloss color.
func Hex(c color.Color) lipgloss.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color(cf.Hex())
}

// RGBA returns the components of a hex lipgloss color.
func RGBA(c lipgloss.Color) (r, g, b, a uint32) {
	return toColor(c).RGBA()
}

// toColor converts a hex lipgloss.Color to a color.Color. ANSI color
// numbers fall back to a neutral gray.
func toColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
