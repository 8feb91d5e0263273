// Package deck drives slide-by-slide navigation inside a scroll container:
// index bookkeeping, the guard against overlapping transitions, and the
// pluggable backends that animate between slide offsets.
package deck

import (
	"errors"
	"log/slog"
	"time"

	"github.com/llehouerou/pagescroll/internal/easing"
)

// Config is fixed for the lifetime of a deck.
type Config struct {
	Easing       easing.Kind
	Duration     time.Duration
	Selector     string
	Loop         bool
	Interpolated bool
}

// Options wires a deck to its collaborators. Scheduler is required.
type Options struct {
	Scheduler Scheduler
	Input     InputSource
	Fragments FragmentStore
	Curves    *easing.Library
	Logger    *slog.Logger
	// OnError receives errors raised while handling input events.
	OnError func(error)
	// FinishGrace extends the declarative backend's timeout fallback.
	// Negative selects DefaultFinishGrace.
	FinishGrace time.Duration
}

// SlideDeck composes a Navigator with an animation backend and keeps the
// fragment in sync with the active slide.
type SlideDeck struct {
	cfg      Config
	opts     Options
	log      *slog.Logger
	renderer Renderer
	backend  Backend
	nav      *Navigator

	removers        []func()
	initialized     bool
	relayoutPending bool
}

var errNoScheduler = errors.New("deck: scheduler is required")

// New selects the backend for cfg and validates that it can render the
// configured easing.
func New(cfg Config, r Renderer, opts Options) (*SlideDeck, error) {
	if opts.Scheduler == nil {
		return nil, errNoScheduler
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var backend Backend
	if cfg.Interpolated {
		backend = NewInterpolatedBackend(opts.Scheduler, opts.Curves)
	} else {
		backend = NewDeclarativeBackend(opts.Scheduler, opts.FinishGrace)
	}
	if !backend.Supports(cfg.Easing) {
		return nil, &ConfigurationError{Backend: backend.Name(), Easing: cfg.Easing}
	}

	return &SlideDeck{
		cfg:      cfg,
		opts:     opts,
		log:      log.With("component", "deck"),
		renderer: r,
		backend:  backend,
		nav:      NewNavigator(0, cfg.Loop),
	}, nil
}

// Initialize locks page scrolling, measures the slides, restores the
// fragment position and starts listening for input.
func (d *SlideDeck) Initialize() error {
	if d.initialized {
		return nil
	}
	if d.cfg.Selector == "" {
		return &UsageError{Op: "initialize", Err: ErrNoSelector}
	}

	r := d.renderer
	r.SetScrollLocked(true)
	total := r.CountSlides(d.cfg.Selector)
	r.SetSlideExtent(r.Extent())

	d.nav = NewNavigator(total, d.cfg.Loop)
	d.relayoutPending = false
	if d.opts.Fragments != nil {
		if frag, ok := d.opts.Fragments.Read(); ok {
			if idx, ok := ParseFragment(d.cfg.Selector, frag); ok {
				d.nav.RestoreFromIndex(idx)
				d.log.Debug("restored position", "fragment", frag, "index", d.nav.Current())
			}
		}
	}
	d.place()

	if in := d.opts.Input; in != nil {
		d.removers = append(d.removers,
			in.OnWheel(d.HandleScroll),
			in.OnResize(d.onResize),
		)
	}
	d.initialized = true
	d.log.Info("deck initialized",
		"slides", total,
		"backend", d.backend.Name(),
		"easing", d.cfg.Easing,
		"duration", d.cfg.Duration)
	return nil
}

// Teardown undoes Initialize. An in-flight declarative transition is
// abandoned.
func (d *SlideDeck) Teardown() {
	if !d.initialized {
		return
	}
	for _, remove := range d.removers {
		remove()
	}
	d.removers = nil
	if c, ok := d.backend.(canceler); ok {
		c.Cancel()
	}
	d.renderer.SetScrollLocked(false)
	d.initialized = false
}

// SetContainer swaps the renderer and re-initializes. The position carries
// over only through the fragment store.
func (d *SlideDeck) SetContainer(r Renderer) error {
	d.Teardown()
	d.renderer = r
	return d.Initialize()
}

// HandleScroll turns a wheel delta into a navigation request. Positive is
// forward; zero carries no intent.
func (d *SlideDeck) HandleScroll(deltaY float64) {
	if !d.initialized {
		return
	}
	switch {
	case deltaY > 0:
		d.advance(Forward)
	case deltaY < 0:
		d.advance(Backward)
	}
}

// HandleResize re-measures the slides and re-applies the active slide's
// position. It never moves the index or touches the animating guard; while
// a transition is running, re-placement waits for its completion.
func (d *SlideDeck) HandleResize() error {
	if d.cfg.Selector == "" {
		return &UsageError{Op: "resize", Err: ErrNoSelector}
	}
	if !d.initialized {
		return nil
	}

	r := d.renderer
	r.SetSlideExtent(r.Extent())
	d.nav.Relayout(r.CountSlides(d.cfg.Selector))

	if d.nav.Animating() {
		d.relayoutPending = true
		return nil
	}
	d.place()
	return nil
}

// Current returns the active slide index.
func (d *SlideDeck) Current() int { return d.nav.Current() }

// Total returns the slide count.
func (d *SlideDeck) Total() int { return d.nav.Total() }

// Animating reports whether a transition is in flight.
func (d *SlideDeck) Animating() bool { return d.nav.Animating() }

// Config returns the deck configuration.
func (d *SlideDeck) Config() Config { return d.cfg }

// BackendName names the selected backend.
func (d *SlideDeck) BackendName() string { return d.backend.Name() }

func (d *SlideDeck) advance(dir Direction) {
	from := d.nav.Current()
	to, ok := d.nav.RequestAdvance(dir)
	if !ok {
		d.log.Debug("navigation rejected",
			"direction", dir,
			"index", from,
			"animating", d.nav.Animating())
		return
	}

	nav := d.nav
	done := func() {
		if d.nav != nav {
			return
		}
		d.complete()
	}
	err := d.backend.Run(d.renderer, Transition{
		From:      from,
		To:        to,
		Total:     d.nav.Total(),
		Direction: dir,
		Easing:    d.cfg.Easing,
		Duration:  d.cfg.Duration,
	}, done)
	if err != nil {
		d.nav.RestoreFromIndex(from)
		d.nav.CompleteAnimation()
		d.report(err)
		return
	}

	d.log.Debug("navigation accepted", "direction", dir, "from", from, "to", to)
	if d.opts.Fragments != nil {
		d.opts.Fragments.Write(FormatFragment(d.cfg.Selector, to))
	}
}

func (d *SlideDeck) complete() {
	d.nav.CompleteAnimation()
	if d.relayoutPending {
		d.relayoutPending = false
		d.place()
	}
}

// place puts the active slide in view without animating.
func (d *SlideDeck) place() {
	total := d.nav.Total()
	if total == 0 {
		return
	}
	r := d.renderer
	r.SetTransitionDescriptor(easing.CubicBezier{}, 0)
	r.SetOffset(float64(d.nav.Current() * r.Extent()))
	r.SetActive(d.nav.Current(), total)
}

func (d *SlideDeck) onResize() {
	if err := d.HandleResize(); err != nil {
		d.report(err)
	}
}

func (d *SlideDeck) report(err error) {
	d.log.Error("deck error", "err", err)
	if d.opts.OnError != nil {
		d.opts.OnError(err)
	}
}
