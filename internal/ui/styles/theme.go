package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused card, active dot
	Secondary lipgloss.Color // Gold - prices, gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Product titles
	FgMuted  lipgloss.Color // Subtitles, help
	FgSubtle lipgloss.Color // Inactive dots, placeholders

	// Backgrounds
	BgBase  lipgloss.Color // Card background
	BgImage lipgloss.Color // Placeholder image background

	// Borders
	Border      lipgloss.Color // Resting cards
	BorderFocus lipgloss.Color // Centered card

	Error lipgloss.Color // Load failures

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Price    lipgloss.Style // Product price
	DotOn    lipgloss.Style // Indicator of the current product
	DotOff   lipgloss.Style // Other indicators
	Error    lipgloss.Style
	Card     lipgloss.Style // Resting card frame
	CardOn   lipgloss.Style // Centered card frame
	Enlarged lipgloss.Style // Enlarged product frame
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:  lipgloss.Color("#1a1a1a"),
	BgImage: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Price: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		DotOn:  lipgloss.NewStyle().Foreground(t.Primary),
		DotOff: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
		Card:   frame,
		CardOn: frame.BorderForeground(t.BorderFocus),
		Enlarged: frame.
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),
	}
}

// CardStyle returns the card frame for the centered or a resting card.
func CardStyle(focused bool) lipgloss.Style {
	if focused {
		return T().S().CardOn
	}
	return T().S().Card
}
