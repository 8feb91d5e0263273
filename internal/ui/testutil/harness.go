package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ModelHarness wraps a tea.Model for testing, collecting the commands it
// returns.
type ModelHarness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewModelHarness creates a harness and captures the model's init command.
func NewModelHarness(m tea.Model) *ModelHarness {
	h := &ModelHarness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *ModelHarness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *ModelHarness) View() string {
	return h.model.View()
}

// SendMsg sends any message to the model and returns the resulting command.
func (h *ModelHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key.
func (h *ModelHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, arrows, ...).
func (h *ModelHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SetSize sends a window size message.
func (h *ModelHarness) SetSize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Commands returns all captured commands.
func (h *ModelHarness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands discards captured commands.
func (h *ModelHarness) ClearCommands() {
	h.cmds = nil
}

// IsQuit reports whether cmd produces tea.QuitMsg.
func IsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
