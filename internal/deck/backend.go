package deck

import (
	"time"

	"github.com/llehouerou/pagescroll/internal/easing"
)

// Renderer is the scroll container: it knows slide geometry and applies
// offsets and active-slide marking. Replacing the container means handing
// the deck a different Renderer.
type Renderer interface {
	// CountSlides returns how many slides carry selector.
	CountSlides(selector string) int
	// Extent is the size of one slide along the scroll axis.
	Extent() int
	// SetSlideExtent sizes every slide to extent.
	SetSlideExtent(extent int)
	// SetActive marks exactly one slide active.
	SetActive(index, total int)
	// SetOffset moves the container. With a non-zero transition
	// descriptor the renderer animates towards value on its own.
	SetOffset(value float64)
	// SetTransitionDescriptor configures the native transition used by
	// later SetOffset calls. A zero duration disables it.
	SetTransitionDescriptor(curve easing.CubicBezier, d time.Duration)
	// OnTransitionFinished registers fn to run once when the current
	// native transition settles. cancel drops the registration.
	OnTransitionFinished(fn func()) (cancel func())
	// SetScrollLocked disables or restores free scrolling of the page.
	SetScrollLocked(locked bool)
}

// Scheduler runs callbacks at rendering opportunities and after delays.
// Callbacks never run concurrently with each other.
type Scheduler interface {
	Now() time.Time
	// Schedule runs fn once at the next frame.
	Schedule(fn func(now time.Time))
	// After runs fn once after d unless stop is called first.
	After(d time.Duration, fn func()) (stop func())
}

// InputSource delivers navigation intent and resize events.
type InputSource interface {
	OnWheel(fn func(deltaY float64)) (remove func())
	OnResize(fn func()) (remove func())
}

// FragmentStore persists the deep-link fragment.
type FragmentStore interface {
	Read() (string, bool)
	Write(fragment string)
}

// Transition describes one slide-to-slide move.
type Transition struct {
	From      int
	To        int
	Total     int
	Direction Direction
	Easing    easing.Kind
	Duration  time.Duration
}

// Backend moves the container from one slide to the next.
//
// Run either returns an error before touching the renderer, or calls done
// exactly once after the transition settles. A run superseded by a later
// Run on the same backend may drop its done.
type Backend interface {
	Name() string
	Supports(kind easing.Kind) bool
	Run(r Renderer, t Transition, done func()) error
}

// canceler is implemented by backends holding external registrations.
type canceler interface {
	Cancel()
}
