package deck

import (
	"errors"
	"time"

	"github.com/llehouerou/pagescroll/internal/easing"
)

// DefaultFinishGrace is added to the transition duration before the
// declarative backend stops waiting for the renderer's finished signal.
const DefaultFinishGrace = 50 * time.Millisecond

var errNoBezier = errors.New("no cubic-bezier form")

// DeclarativeBackend hands interpolation to the renderer's native
// transition and waits for its finished signal. Only the coarse CSS curves
// are accepted.
type DeclarativeBackend struct {
	scheduler Scheduler
	grace     time.Duration
	pending   *declarativeRun
}

type declarativeRun struct {
	done       func()
	settled    bool
	superseded bool
	cancel     func()
	stop       func()
}

// NewDeclarativeBackend returns a backend scheduling on s. A negative grace
// selects DefaultFinishGrace.
func NewDeclarativeBackend(s Scheduler, grace time.Duration) *DeclarativeBackend {
	if grace < 0 {
		grace = DefaultFinishGrace
	}
	return &DeclarativeBackend{scheduler: s, grace: grace}
}

func (b *DeclarativeBackend) Name() string { return "declarative" }

func (b *DeclarativeBackend) Supports(kind easing.Kind) bool {
	_, ok := easing.BezierOf(kind)
	return ok
}

func (b *DeclarativeBackend) Run(r Renderer, t Transition, done func()) error {
	curve, ok := easing.BezierOf(t.Easing)
	if !ok {
		return &ConfigurationError{
			Backend: b.Name(),
			Easing:  t.Easing,
			Err:     errNoBezier,
		}
	}

	b.Cancel()

	run := &declarativeRun{done: done}
	b.pending = run

	r.SetTransitionDescriptor(curve, t.Duration)
	b.scheduler.Schedule(func(time.Time) {
		if run.superseded {
			return
		}
		run.cancel = r.OnTransitionFinished(func() { b.settle(run) })
		run.stop = b.scheduler.After(t.Duration+b.grace, func() { b.settle(run) })
		r.SetOffset(float64(t.To * r.Extent()))
		r.SetActive(t.To, t.Total)
	})
	return nil
}

// Cancel invalidates the in-flight run: its finished registration and
// timeout are released and its done is dropped.
func (b *DeclarativeBackend) Cancel() {
	run := b.pending
	if run == nil {
		return
	}
	b.pending = nil
	run.superseded = true
	run.release()
}

// settle fires done for run once, from whichever of the finished signal
// or the timeout arrives first.
func (b *DeclarativeBackend) settle(run *declarativeRun) {
	if run.settled || run.superseded {
		return
	}
	run.settled = true
	run.release()
	if b.pending == run {
		b.pending = nil
	}
	run.done()
}

func (run *declarativeRun) release() {
	if run.cancel != nil {
		run.cancel()
		run.cancel = nil
	}
	if run.stop != nil {
		run.stop()
		run.stop = nil
	}
}
