// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrorDuration is how long an error stays in the status bar.
const ErrorDuration = 5 * time.Second

// ErrorClearCmd returns a command that clears error id after ErrorDuration.
func ErrorClearCmd(id int) tea.Cmd {
	return tea.Tick(ErrorDuration, func(time.Time) tea.Msg {
		return ErrorClearMsg{ID: id}
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// Watch carries deck file notifications into the program.
type Watch struct {
	Changes <-chan struct{}
	Errors  <-chan error
}

func (w Watch) waitForChange() tea.Cmd {
	return waitForChannel(w.Changes, func(_ struct{}, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return DeckChangedMsg{}
	})
}

func (w Watch) waitForError() tea.Cmd {
	return waitForChannel(w.Errors, func(err error, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return WatchErrorMsg{Err: err}
	})
}
