// Package handler provides a result type and chain function for action handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pagescroll/internal/keymap"
)

// Result represents the outcome of an action handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler leaves the action to the next one.
var NotHandled = Result{}

// HandledNoCmd is a convenience for handlers that consume without a command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the action was consumed with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle an action.
type Handler func(keymap.Action) Result

// Chain offers action to handlers in order until one handles it.
func Chain(action keymap.Action, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(action); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
