package deck

import (
	"errors"
	"fmt"

	"github.com/llehouerou/pagescroll/internal/easing"
)

// ErrNoSelector is wrapped by UsageError when an operation needs a slide
// selector and none is configured.
var ErrNoSelector = errors.New("slide selector is not configured")

// ConfigurationError reports an easing kind the selected backend cannot run.
type ConfigurationError struct {
	Backend string
	Easing  easing.Kind
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s backend cannot use easing %q: %v", e.Backend, e.Easing, e.Err)
	}
	return fmt.Sprintf("%s backend cannot use easing %q", e.Backend, e.Easing)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// UsageError reports an operation invoked without what it requires.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UsageError) Unwrap() error { return e.Err }
