// Package app is the root bubbletea model of the showcase: a header, the
// product carousel, its dot indicators, a caption for the centered product
// and the key help line.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/carousel"
	"github.com/llehouerou/showcase/internal/catalog"
	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/styles"
	"github.com/llehouerou/showcase/internal/ui/thumbnail"
)

// DefaultTitle is shown in the header when no title is configured.
const DefaultTitle = "Featured"

// Key contexts, in the order their bindings are resolved.
var (
	browseContexts   = []string{"carousel", "global"}
	enlargedContexts = []string{"enlarged", "global"}
)

// Options configures a new application model.
type Options struct {
	Title    string
	Products []catalog.Product
	Config   config.CarouselConfig

	// Zone marks the track and the dots for mouse hit testing. The root
	// View scans it, so it must not be scanned again by the caller.
	Zone   *zone.Manager
	Logger *zap.Logger
	Thumbs *thumbnail.Renderer
	Now    func() time.Time
}

// Model is the root application model.
type Model struct {
	ui.Base
	Carousel carousel.Model[catalog.Product]
	Title    string
	Enlarged int // index of the enlarged product, -1 when closed
	ErrorMsg string

	cfg          config.CarouselConfig
	layout       *cardLayout
	thumbs       *thumbnail.Renderer
	zone         *zone.Manager
	log          *zap.Logger
	help         help.Model
	browseKeys   *keymap.Resolver
	enlargedKeys *keymap.Resolver
	browseHelp   keymap.Help
	enlargedHelp keymap.Help
}

// New creates the application model. Products may be empty.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == (config.CarouselConfig{}) {
		cfg = (&config.Config{}).GetCarouselConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	thumbs := opts.Thumbs
	if thumbs == nil {
		thumbs = thumbnail.New(styles.T().BgImage)
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	layout := &cardLayout{
		width:     cfg.CardWidth,
		imageRows: defaultImageRows,
		thumbs:    thumbs,
	}
	c := carousel.New(opts.Products, carousel.Options[catalog.Product]{
		Config: cfg.Engine(),
		Render: layout.render,
		Zone:   opts.Zone,
		Logger: log.Named("carousel"),
		Now:    opts.Now,
	})

	h := help.New()
	h.Styles.ShortKey = styles.T().S().Muted
	h.Styles.ShortDesc = styles.T().S().Subtle
	h.Styles.FullKey = styles.T().S().Muted
	h.Styles.FullDesc = styles.T().S().Subtle

	return Model{
		Carousel:     c,
		Title:        title,
		Enlarged:     -1,
		cfg:          cfg,
		layout:       layout,
		thumbs:       thumbs,
		zone:         opts.Zone,
		log:          log,
		help:         h,
		browseKeys:   keymap.NewContextResolver(browseContexts...),
		enlargedKeys: keymap.NewContextResolver(enlargedContexts...),
		browseHelp:   keymap.NewHelp(browseContexts...),
		enlargedHelp: keymap.NewHelp(enlargedContexts...),
	}
}

// Init starts auto-advance and decodes the product images in the background.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Carousel.Init(), m.warm())
}

// HelpVisible reports whether the full key help is shown.
func (m Model) HelpVisible() bool {
	return m.help.ShowAll
}

// warm prepares the thumbnails at the current card size.
func (m Model) warm() tea.Cmd {
	var reqs []thumbnail.Request
	for _, p := range m.Carousel.Items() {
		if p.Image != "" {
			reqs = append(reqs, thumbnail.Request{Path: p.Image, ID: p.ID})
		}
	}
	if len(reqs) == 0 {
		return nil
	}
	return m.thumbs.Warm(reqs, m.layout.inner(), m.layout.imageRows)
}

func (m Model) dotZoneID(i int) string {
	return fmt.Sprintf("%s-dot-%d", m.Carousel.ZoneID(), i)
}

// enlargedProduct returns the product in the enlarged view.
func (m Model) enlargedProduct() (catalog.Product, bool) {
	items := m.Carousel.Items()
	if m.Enlarged < 0 || m.Enlarged >= len(items) {
		return catalog.Product{}, false
	}
	return items[m.Enlarged], true
}
