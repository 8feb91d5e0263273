// Package app contains the root bubbletea model of the slide viewer.
package app

import (
	"time"
)

// FrameMsg is a rendering opportunity requested by the deck.
type FrameMsg time.Time

// TimerMsg fires a timer armed through Runtime.After.
type TimerMsg struct {
	ID int
}

// DeckChangedMsg is sent when the deck file changed on disk.
type DeckChangedMsg struct{}

// WatchErrorMsg carries an error from the deck file watcher.
type WatchErrorMsg struct {
	Err error
}

// ErrorClearMsg clears the status bar error if it is still the one shown.
type ErrorClearMsg struct {
	ID int
}
