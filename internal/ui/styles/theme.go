package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the viewer.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - active slide title, gauge start
	Secondary lipgloss.Color // Gold - gradient end, gauge end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBar lipgloss.Color // Status bar background

	Border lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for slide and chrome rendering.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style // inactive slides
	Title   lipgloss.Style
	Heading lipgloss.Style
	Bullet  lipgloss.Style
	Code    lipgloss.Style // code block gutter
	Bar     lipgloss.Style
	BarKey  lipgloss.Style
	Overlay lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBar: lipgloss.Color("#262626"),

	Border: lipgloss.Color("#585858"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
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

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Bullet:  lipgloss.NewStyle().Foreground(t.Secondary),
		Code:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Bar: lipgloss.NewStyle().
			Background(t.BgBar).
			Foreground(t.FgMuted),
		BarKey: lipgloss.NewStyle().
			Background(t.BgBar).
			Foreground(t.Primary).
			Bold(true),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(1, 2),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
