package app

import (
	"maps"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/app/handler"
	"github.com/llehouerou/showcase/internal/carousel"
	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/thumbnail"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case carousel.EnlargeMsg:
		if msg.Carousel != m.Carousel.ID() {
			return m, nil
		}
		m.log.Debug("enlarge", zap.Int("index", msg.Index), zap.String("id", msg.ID))
		m.Enlarged = msg.Index
		return m, nil

	case thumbnail.WarmedMsg:
		m.handleWarmed(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.Carousel, cmd = m.Carousel.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	rows := imageRowsFor(msg.Height, m.layout.inner())
	resized := rows != m.layout.imageRows
	m.layout.imageRows = rows

	cmds := []tea.Cmd{
		m.Carousel.SetSize(ui.TrackWidth(msg.Width)),
		m.Carousel.SetNarrow(m.Narrow(m.cfg.NarrowWidth)),
	}
	if resized {
		cmds = append(cmds, m.warm())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	var cmd tea.Cmd
	if m.Enlarged >= 0 {
		_, cmd = handler.Chain(m.enlargedKeys, key, m.handleGlobalKeys, m.handleEnlargedKeys)
	} else {
		_, cmd = handler.Chain(m.browseKeys, key, m.handleGlobalKeys, m.handleCarouselKeys)
	}
	return m, cmd
}

func (m *Model) handleGlobalKeys(action keymap.Action, _ string) handler.Result {
	switch action { //nolint:exhaustive // other actions belong to other contexts
	case keymap.ActionQuit:
		m.Carousel.Unmount()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleCarouselKeys(action keymap.Action, key string) handler.Result {
	switch action { //nolint:exhaustive // other actions belong to other contexts
	case keymap.ActionPrev:
		return handler.Handled(m.Carousel.Prev())
	case keymap.ActionNext:
		return handler.Handled(m.Carousel.Next())
	case keymap.ActionGoTo:
		i, ok := keymap.Digit(key)
		if !ok || i >= m.Carousel.Len() {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.Carousel.GoTo(i))
	case keymap.ActionEnlarge:
		return handler.Handled(m.Carousel.Enlarge())
	}
	return handler.NotHandled
}

// handleEnlargedKeys browses in the enlarged view. The carousel follows so
// it shows the same product once the view is closed.
func (m *Model) handleEnlargedKeys(action keymap.Action, _ string) handler.Result {
	switch action { //nolint:exhaustive // other actions belong to other contexts
	case keymap.ActionClose:
		m.Enlarged = -1
		return handler.HandledNoCmd
	case keymap.ActionPrev:
		cmd := m.Carousel.Prev()
		m.Enlarged = m.Carousel.Index()
		return handler.Handled(cmd)
	case keymap.ActionNext:
		cmd := m.Carousel.Next()
		m.Enlarged = m.Carousel.Index()
		return handler.Handled(cmd)
	}
	return handler.NotHandled
}

// handleMouse closes the enlarged view on a click, jumps on a dot click and
// hands everything else to the carousel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	leftPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	// A press closes the enlarged view. Motion and release still reach the
	// carousel so a drag that began before the view opened can end.
	if m.Enlarged >= 0 && msg.Action == tea.MouseActionPress {
		if leftPress {
			m.Enlarged = -1
		}
		return m, nil
	}

	if leftPress && m.zone != nil {
		for i := range m.Carousel.Len() {
			if m.zone.Get(m.dotZoneID(i)).InBounds(msg) {
				return m, m.Carousel.GoTo(i)
			}
		}
	}

	var cmd tea.Cmd
	m.Carousel, cmd = m.Carousel.Update(msg)
	return m, cmd
}

// handleWarmed reports images that could not be loaded. Their cards keep
// the placeholder.
func (m *Model) handleWarmed(msg thumbnail.WarmedMsg) {
	if len(msg.Failed) == 0 {
		return
	}
	paths := slices.Sorted(maps.Keys(msg.Failed))
	for _, path := range paths {
		m.log.Warn("thumbnail", zap.String("path", path), zap.Error(msg.Failed[path]))
	}
	m.ErrorMsg = errmsg.FormatWith(errmsg.OpThumbnailLoad, paths[0], msg.Failed[paths[0]])
}
