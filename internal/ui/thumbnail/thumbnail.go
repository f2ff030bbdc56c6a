// Package thumbnail renders product images as text using half-block cells,
// so they can scroll with the rest of the carousel in any terminal.
package thumbnail

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder for product images
	_ "image/png"  // PNG decoder for product images
	"math"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"

	"github.com/llehouerou/showcase/internal/ui/styles"
)

// upperHalf is drawn with the upper pixel as foreground and the lower pixel
// as background, giving two pixels per cell.
const upperHalf = "▀"

// Decode reads a png or jpeg image from path.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Render draws img into cols x rows cells. The image keeps its aspect ratio
// and is centered on the background color.
func Render(img image.Image, cols, rows int, background lipgloss.Color) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	w, h := fit(img.Bounds(), cols, rows*2)
	if w == 0 || h == 0 {
		return Placeholder("", cols, rows)
	}
	fitted := resize.Resize(w, h, img, resize.Lanczos3)
	b := fitted.Bounds()
	left := (cols - b.Dx()) / 2
	top := (rows*2 - b.Dy()) / 2

	pixel := func(x, y int) lipgloss.Color {
		x -= left
		y -= top
		if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
			return background
		}
		return styles.Hex(opaque(fitted.At(b.Min.X+x, b.Min.Y+y), background))
	}

	lines := make([]string, rows)
	for row := range rows {
		var sb strings.Builder
		for col := range cols {
			style := lipgloss.NewStyle().
				Foreground(pixel(col, row*2)).
				Background(pixel(col, row*2+1))
			sb.WriteString(style.Render(upperHalf))
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// fit scales bounds up or down to the largest size inside maxW x maxH.
func fit(bounds image.Rectangle, maxW, maxH int) (w, h uint) {
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return 0, 0
	}
	scale := min(float64(maxW)/float64(bounds.Dx()), float64(maxH)/float64(bounds.Dy()))
	w = uint(max(math.Round(float64(bounds.Dx())*scale), 1))
	h = uint(max(math.Round(float64(bounds.Dy())*scale), 1))
	return w, h
}

// opaque blends a translucent pixel over the background.
func opaque(c color.Color, background lipgloss.Color) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return c
	}
	br, bg, bb, _ := styles.RGBA(background)
	blend := func(fg, bgc uint32) uint8 {
		return uint8((fg + bgc*(0xffff-a)/0xffff) >> 8) //nolint:gosec // premultiplied sum stays in range
	}
	return color.RGBA{R: blend(r, br), G: blend(g, bg), B: blend(b, bb), A: 0xff}
}

// Placeholder draws a diagonal two-color gradient picked from seed, so each
// product without an image still gets a recognizable card.
func Placeholder(seed string, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(seed)) //nolint:errcheck // hash writes never fail
	sum := h.Sum32()

	from := palette[sum%uint32(len(palette))]
	to := palette[(sum/7+3)%uint32(len(palette))]
	ramp := styles.Blend(cols+rows, from, to)

	lines := make([]string, rows)
	for row := range rows {
		var sb strings.Builder
		for col := range cols {
			sb.WriteString(lipgloss.NewStyle().Foreground(ramp[col+row]).Render("█"))
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

var palette = []lipgloss.Color{
	"#a78bfa", "#f1a208", "#42b883", "#ff7a59",
	"#4cc9f0", "#f72585", "#b5e48c", "#e9c46a",
}

type key struct {
	path       string
	cols, rows int
}

// Renderer renders and caches product thumbnails. It is safe for use from
// the UI goroutine and from a warm-up command at the same time.
type Renderer struct {
	mu         sync.RWMutex
	cache      map[key]string
	failed     map[string]error
	background lipgloss.Color
	decode     func(string) (image.Image, error)
}

// New creates a renderer drawing on background.
func New(background lipgloss.Color) *Renderer {
	return &Renderer{
		cache:      make(map[key]string),
		failed:     make(map[string]error),
		background: background,
		decode:     Decode,
	}
}

// Thumbnail returns the image at path drawn in cols x rows cells, or a
// placeholder seeded with id when there is no usable image.
func (r *Renderer) Thumbnail(path, id string, cols, rows int) string {
	if path == "" {
		return Placeholder(id, cols, rows)
	}
	k := key{path: path, cols: cols, rows: rows}

	r.mu.RLock()
	out, ok := r.cache[k]
	_, bad := r.failed[path]
	r.mu.RUnlock()
	if ok {
		return out
	}
	if bad {
		return Placeholder(id, cols, rows)
	}

	img, err := r.decode(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.failed[path] = err
		return Placeholder(id, cols, rows)
	}
	out = Render(img, cols, rows, r.background)
	r.cache[k] = out
	return out
}

// Err returns the decode error recorded for path, if any.
func (r *Renderer) Err(path string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.failed[path]
}

// Request names one thumbnail to prepare.
type Request struct {
	Path string
	ID   string
}

// WarmedMsg reports the images that could not be loaded by Warm.
type WarmedMsg struct {
	Failed map[string]error
}

// Warm renders every request in the background so the first frames of the
// carousel do not stall on image decoding.
func (r *Renderer) Warm(reqs []Request, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		failed := make(map[string]error)
		for _, req := range reqs {
			r.Thumbnail(req.Path, req.ID, cols, rows)
			if err := r.Err(req.Path); err != nil {
				failed[req.Path] = err
			}
		}
		return WarmedMsg{Failed: failed}
	}
}
