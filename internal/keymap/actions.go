// Package keymap defines key bindings and action dispatch for the viewer.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Navigation
	ActionNext Action = "next"
	ActionPrev Action = "prev"

	// Deck
	ActionReload Action = "reload"

	// Global
	ActionHelp Action = "help"
	ActionQuit Action = "quit"
)

// WheelDelta returns the scroll delta an action stands for, so keyboard
// navigation reaches the deck the same way the mouse wheel does. ok is
// false for actions that do not navigate.
func (a Action) WheelDelta() (delta float64, ok bool) {
	switch a {
	case ActionNext:
		return 1, true
	case ActionPrev:
		return -1, true
	default:
		return 0, false
	}
}
