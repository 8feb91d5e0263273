// internal/app/runtime.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pagescroll/internal/deck"
)

// Runtime is the deck's scheduler and input source inside a bubbletea
// program. Frames and timers become tea.Tick commands collected until the
// next Flush; their messages come back through Update, so every deck
// callback runs on the program's update loop.
type Runtime struct {
	clock         func() time.Time
	frameInterval time.Duration

	frames      []func(time.Time)
	frameQueued bool

	timers    map[int]func()
	nextTimer int

	wheel      map[int]func(float64)
	resize     map[int]func()
	nextListen int

	pending []tea.Cmd
	errs    []error
}

var (
	_ deck.Scheduler   = (*Runtime)(nil)
	_ deck.InputSource = (*Runtime)(nil)
)

// NewRuntime returns a runtime ticking frames every frameInterval. A nil
// clock means time.Now.
func NewRuntime(frameInterval time.Duration, clock func() time.Time) *Runtime {
	if clock == nil {
		clock = time.Now
	}
	if frameInterval <= 0 {
		frameInterval = time.Second / 60
	}
	return &Runtime{
		clock:         clock,
		frameInterval: frameInterval,
		timers:        make(map[int]func()),
		wheel:         make(map[int]func(float64)),
		resize:        make(map[int]func()),
	}
}

func (r *Runtime) Now() time.Time { return r.clock() }

// Schedule queues fn for the next frame. One tick serves every callback
// queued before it fires.
func (r *Runtime) Schedule(fn func(now time.Time)) {
	r.frames = append(r.frames, fn)
	if r.frameQueued {
		return
	}
	r.frameQueued = true
	r.pending = append(r.pending, tea.Tick(r.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	}))
}

func (r *Runtime) After(d time.Duration, fn func()) func() {
	id := r.nextTimer
	r.nextTimer++
	r.timers[id] = fn
	r.pending = append(r.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return TimerMsg{ID: id}
	}))
	return func() { delete(r.timers, id) }
}

func (r *Runtime) OnWheel(fn func(deltaY float64)) func() {
	id := r.nextListen
	r.nextListen++
	r.wheel[id] = fn
	return func() { delete(r.wheel, id) }
}

func (r *Runtime) OnResize(fn func()) func() {
	id := r.nextListen
	r.nextListen++
	r.resize[id] = fn
	return func() { delete(r.resize, id) }
}

// RunFrame runs the callbacks queued before this frame. Callbacks queued
// while running wait for the next one.
func (r *Runtime) RunFrame(now time.Time) {
	r.frameQueued = false
	batch := r.frames
	r.frames = nil
	for _, fn := range batch {
		fn(now)
	}
}

// FireTimer runs timer id unless it was stopped or already fired.
func (r *Runtime) FireTimer(id int) {
	fn, ok := r.timers[id]
	if !ok {
		return
	}
	delete(r.timers, id)
	fn()
}

// DispatchWheel delivers a wheel delta to the registered listeners.
func (r *Runtime) DispatchWheel(deltaY float64) {
	for _, fn := range r.wheel {
		fn(deltaY)
	}
}

// DispatchResize notifies the registered resize listeners.
func (r *Runtime) DispatchResize() {
	for _, fn := range r.resize {
		fn()
	}
}

// Listeners returns how many wheel and resize listeners are registered.
func (r *Runtime) Listeners() int { return len(r.wheel) + len(r.resize) }

// PendingTimers returns how many timers may still fire.
func (r *Runtime) PendingTimers() int { return len(r.timers) }

// ReportError records an error for the model to show.
func (r *Runtime) ReportError(err error) { r.errs = append(r.errs, err) }

// TakeErrors returns and clears the recorded errors.
func (r *Runtime) TakeErrors() []error {
	errs := r.errs
	r.errs = nil
	return errs
}

// Flush returns the commands requested since the last flush.
func (r *Runtime) Flush() tea.Cmd {
	if len(r.pending) == 0 {
		return nil
	}
	cmds := r.pending
	r.pending = nil
	return tea.Batch(cmds...)
}
