package deck

import (
	"time"

	"github.com/llehouerou/pagescroll/internal/easing"
)

// InterpolatedBackend computes every intermediate offset itself, one
// frame at a time, blending from the slide adjacent to the target.
//
// The last frame applies ease(1) without snapping, so curves used here
// must end exactly at 1.
type InterpolatedBackend struct {
	scheduler Scheduler
	curves    *easing.Library
}

// NewInterpolatedBackend returns a backend drawing curves from lib.
func NewInterpolatedBackend(s Scheduler, lib *easing.Library) *InterpolatedBackend {
	if lib == nil {
		lib = easing.NewLibrary()
	}
	return &InterpolatedBackend{scheduler: s, curves: lib}
}

func (b *InterpolatedBackend) Name() string { return "interpolated" }

func (b *InterpolatedBackend) Supports(kind easing.Kind) bool {
	return b.curves.Has(kind)
}

func (b *InterpolatedBackend) Run(r Renderer, t Transition, done func()) error {
	ease, err := b.curves.Func(t.Easing)
	if err != nil {
		return &ConfigurationError{Backend: b.Name(), Easing: t.Easing, Err: err}
	}

	adjacent := t.To - 1
	if t.Direction == Backward {
		adjacent = t.To + 1
	}

	r.SetTransitionDescriptor(easing.CubicBezier{}, 0)
	r.SetActive(t.To, t.Total)

	start := b.scheduler.Now()
	var frame func(now time.Time)
	frame = func(now time.Time) {
		elapsed := now.Sub(start)
		progress := 1.0
		if t.Duration > 0 {
			progress = min(max(float64(elapsed)/float64(t.Duration), 0), 1)
		}

		extent := float64(r.Extent())
		from := float64(adjacent) * extent
		to := float64(t.To) * extent
		r.SetOffset(from + (to-from)*ease(progress))

		if elapsed >= t.Duration {
			done()
			return
		}
		b.scheduler.Schedule(frame)
	}
	b.scheduler.Schedule(frame)
	return nil
}
