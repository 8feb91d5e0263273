// Package helpbindings renders the key binding reference shown over the deck.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pagescroll/internal/keymap"
	"github.com/llehouerou/pagescroll/internal/ui/styles"
)

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"navigation": "Navigation",
	"deck":       "Deck",
	"global":     "Global",
}

// Render returns the help box, bordered, for a screen of the given size.
// It returns "" when the screen is too small to show it.
func Render(width, height int) string {
	th := styles.T()
	content := buildContent()

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(th.Primary).Render("Keys"))
	sb.WriteString("\n\n")
	sb.WriteString(content)
	sb.WriteString("\n\n")
	sb.WriteString(th.S().Muted.Render("?/esc close"))

	box := th.S().Overlay.Render(sb.String())
	if lipgloss.Width(box) > width || lipgloss.Height(box) > height {
		return ""
	}
	return box
}

func buildContent() string {
	st := styles.T().S()
	keyStyle := lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)

	var bindings []keymap.Binding
	for _, ctx := range keymap.Contexts {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}

	// Find max key width for alignment
	maxKeyWidth := 0
	for _, b := range bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyString(b)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(st.Heading.Render(label))
			sb.WriteString("\n")
			sb.WriteString(st.Subtle.Render(strings.Repeat("─", maxKeyWidth+18)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		keyStr := keyString(b)
		sb.WriteString(keyStyle.Render(keyStr + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keyStr))))
		sb.WriteString("  ")
		sb.WriteString(st.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func keyString(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		keys[i] = keymap.DisplayKey(k)
	}
	return strings.Join(keys, ", ")
}
