// Package statusbar renders the one-line deck status at the bottom of the screen.
package statusbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/pagescroll/internal/ui/render"
	"github.com/llehouerou/pagescroll/internal/ui/styles"
)

// Height is the fixed height of the status bar.
const Height = 1

const gaugeWidth = 12

// State holds what the bar shows.
type State struct {
	Current   int
	Total     int
	Easing    string
	Backend   string
	Animating bool
	DeckName  string
	DeckBytes int64
	SavedAt   time.Time // restored position's save time, zero if none
	Err       string
	Now       time.Time
}

// Fraction returns how far through the deck the active slide is.
func (s State) Fraction() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Current+1) / float64(s.Total)
}

func gauge(fraction float64) string {
	th := styles.T()
	p := progress.New(
		progress.WithGradient(string(th.Primary), string(th.Secondary)),
		progress.WithWidth(gaugeWidth),
		progress.WithoutPercentage(),
	)
	return p.ViewAs(fraction)
}

// Render returns the bar for the given width. Narrow terminals truncate the
// right-hand details first.
func Render(s State, width int) string {
	if width <= 0 {
		return ""
	}
	st := styles.T().S()

	marker := st.Bar.Render("○")
	if s.Animating {
		marker = st.Warning.Background(styles.T().BgBar).Render("●")
	}

	position := "slide -/0"
	if s.Total > 0 {
		position = fmt.Sprintf("slide %d/%d", s.Current+1, s.Total)
	}
	left := st.BarKey.Render(" "+position+" ") + marker + st.Bar.Render(" ") + gauge(s.Fraction())

	var right string
	if s.Err != "" {
		right = st.Error.Background(styles.T().BgBar).Render(render.Sanitize(s.Err) + " ")
	} else {
		right = st.Bar.Render(details(s) + " ")
	}

	line := left
	if avail := width - lipgloss.Width(left) - 1; avail > 0 {
		if lipgloss.Width(right) > avail {
			right = ansi.Truncate(right, avail, "…")
		}
		line = render.Row(left, right, width)
	}
	line = ansi.Truncate(line, width, "")
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += st.Bar.Render(strings.Repeat(" ", pad))
	}
	return line
}

func details(s State) string {
	var parts []string
	if s.Easing != "" {
		parts = append(parts, s.Easing+"·"+s.Backend)
	}
	if s.DeckName != "" {
		name := s.DeckName
		if s.DeckBytes > 0 {
			name += " (" + humanize.IBytes(uint64(s.DeckBytes)) + ")" //nolint:gosec // checked positive
		}
		parts = append(parts, name)
	}
	if !s.SavedAt.IsZero() {
		now := s.Now
		if now.IsZero() {
			now = time.Now()
		}
		parts = append(parts, "resumed from "+humanize.RelTime(s.SavedAt, now, "ago", "from now"))
	}
	return strings.Join(parts, "  ")
}
