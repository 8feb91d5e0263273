package deck

import (
	"time"

	"github.com/llehouerou/pagescroll/internal/easing"
)

// fakeScheduler runs frames and timers only when the test advances it.
type fakeScheduler struct {
	now    time.Time
	frames []func(time.Time)
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (s *fakeScheduler) Now() time.Time { return s.now }

func (s *fakeScheduler) Schedule(fn func(time.Time)) {
	s.frames = append(s.frames, fn)
}

func (s *fakeScheduler) After(d time.Duration, fn func()) func() {
	t := &fakeTimer{at: s.now.Add(d), fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.stopped = true }
}

// frame advances the clock by d and runs the callbacks queued so far.
func (s *fakeScheduler) frame(d time.Duration) {
	s.now = s.now.Add(d)
	pending := s.frames
	s.frames = nil
	for _, fn := range pending {
		fn(s.now)
	}
	s.fireTimers()
}

// advance moves the clock without running frames.
func (s *fakeScheduler) advance(d time.Duration) {
	s.now = s.now.Add(d)
	s.fireTimers()
}

func (s *fakeScheduler) fireTimers() {
	for _, t := range s.timers {
		if !t.stopped && !t.fired && !s.now.Before(t.at) {
			t.fired = true
			t.fn()
		}
	}
}

func (s *fakeScheduler) activeTimers() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// fakeRenderer records every call the core makes.
type fakeRenderer struct {
	slides      int
	selector    string
	extent      int
	slideExtent int
	active      int
	activeCalls int
	offsets     []float64
	curve       easing.CubicBezier
	duration    time.Duration
	locked      bool
	finished    map[int]func()
	nextID      int
}

func newFakeRenderer(slides, extent int) *fakeRenderer {
	return &fakeRenderer{
		slides:   slides,
		selector: DefaultSelector,
		extent:   extent,
		active:   -1,
		finished: map[int]func(){},
	}
}

func (r *fakeRenderer) CountSlides(selector string) int {
	if selector != r.selector {
		return 0
	}
	return r.slides
}

func (r *fakeRenderer) Extent() int { return r.extent }

func (r *fakeRenderer) SetSlideExtent(extent int) { r.slideExtent = extent }

func (r *fakeRenderer) SetActive(index, _ int) {
	r.active = index
	r.activeCalls++
}

func (r *fakeRenderer) SetOffset(v float64) { r.offsets = append(r.offsets, v) }

func (r *fakeRenderer) SetTransitionDescriptor(c easing.CubicBezier, d time.Duration) {
	r.curve = c
	r.duration = d
}

func (r *fakeRenderer) OnTransitionFinished(fn func()) func() {
	id := r.nextID
	r.nextID++
	r.finished[id] = fn
	return func() { delete(r.finished, id) }
}

func (r *fakeRenderer) SetScrollLocked(locked bool) { r.locked = locked }

// finish delivers the native transition's finished signal.
func (r *fakeRenderer) finish() {
	pending := r.finished
	r.finished = map[int]func(){}
	for _, fn := range pending {
		fn()
	}
}

func (r *fakeRenderer) lastOffset() float64 {
	if len(r.offsets) == 0 {
		return 0
	}
	return r.offsets[len(r.offsets)-1]
}

type fakeInput struct {
	wheel  map[int]func(float64)
	resize map[int]func()
	nextID int
}

func newFakeInput() *fakeInput {
	return &fakeInput{wheel: map[int]func(float64){}, resize: map[int]func(){}}
}

func (in *fakeInput) OnWheel(fn func(float64)) func() {
	id := in.nextID
	in.nextID++
	in.wheel[id] = fn
	return func() { delete(in.wheel, id) }
}

func (in *fakeInput) OnResize(fn func()) func() {
	id := in.nextID
	in.nextID++
	in.resize[id] = fn
	return func() { delete(in.resize, id) }
}

func (in *fakeInput) scroll(delta float64) {
	for _, fn := range in.wheel {
		fn(delta)
	}
}

func (in *fakeInput) resized() {
	for _, fn := range in.resize {
		fn()
	}
}

type fakeFragments struct {
	value  string
	set    bool
	writes []string
}

func (f *fakeFragments) Read() (string, bool) { return f.value, f.set }

func (f *fakeFragments) Write(s string) {
	f.value = s
	f.set = true
	f.writes = append(f.writes, s)
}
