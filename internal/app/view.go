// internal/app/view.go
package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pagescroll/internal/ui/helpbindings"
	"github.com/llehouerou/pagescroll/internal/ui/overlay"
	"github.com/llehouerou/pagescroll/internal/ui/statusbar"
	"github.com/llehouerou/pagescroll/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	bodyHeight := m.bodyHeight()

	body := m.view.View()
	if m.deck.Total() == 0 && bodyHeight > 0 {
		msg := styles.T().S().Muted.Render(`no slides with class "` + m.deckCfg.Selector + `"`)
		body = lipgloss.Place(m.Width, bodyHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	if m.showHelp {
		body = overlay.Center(body, helpbindings.Render(m.Width, bodyHeight), m.Width, bodyHeight)
	}

	if !m.cfg.ShowStatus() {
		return body
	}
	bar := statusbar.Render(m.statusState(), m.Width)
	if bodyHeight == 0 {
		return bar
	}
	return body + "\n" + bar
}

func (m Model) statusState() statusbar.State {
	s := statusbar.State{
		Current:   m.deck.Current(),
		Total:     m.deck.Total(),
		Easing:    string(m.deckCfg.Easing),
		Backend:   m.deck.BackendName(),
		Animating: m.deck.Animating(),
		DeckName:  m.deckName,
		DeckBytes: m.deckBytes,
		Err:       m.ErrorMsg,
		Now:       m.runtime.Now(),
	}
	if at, ok := m.fragments.SavedAt(); ok {
		s.SavedAt = at
	}
	return s
}
