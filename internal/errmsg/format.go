// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/pagescroll/internal/deck"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Deck operations
	OpDeckLoad     Op = "load deck"
	OpDeckReload   Op = "reload deck"
	OpDeckInit     Op = "initialize deck"
	OpDeckResize   Op = "lay out slides"
	OpDeckNavigate Op = "change slide"
	OpDeckWatch    Op = "watch deck file"

	// Configuration
	OpConfigLoad Op = "load configuration"

	// Persistence
	OpStateOpen Op = "open saved positions"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// DeckOp names the operation a deck error came from, defaulting to
// navigation.
func DeckOp(err error) Op {
	var usage *deck.UsageError
	if errors.As(err, &usage) {
		switch usage.Op {
		case "initialize":
			return OpDeckInit
		case "resize":
			return OpDeckResize
		}
	}
	return OpDeckNavigate
}
