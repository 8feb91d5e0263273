// Package easing maps normalized animation progress to eased progress.
package easing

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names an easing curve. The same vocabulary is shared by every
// animation backend; each backend declares which kinds it can render.
type Kind string

const (
	Linear         Kind = "linear"
	Ease           Kind = "ease"
	EaseIn         Kind = "easeIn"
	EaseOut        Kind = "easeOut"
	EaseInOut      Kind = "easeInOut"
	EaseInQuad     Kind = "easeInQuad"
	EaseOutQuad    Kind = "easeOutQuad"
	EaseInOutQuad  Kind = "easeInOutQuad"
	EaseInCubic    Kind = "easeInCubic"
	EaseOutCubic   Kind = "easeOutCubic"
	EaseInOutCubic Kind = "easeInOutCubic"
)

// ErrUnknownKind is returned for a kind with no registered function.
var ErrUnknownKind = errors.New("unknown easing kind")

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		Linear, Ease, EaseIn, EaseOut, EaseInOut,
		EaseInQuad, EaseOutQuad, EaseInOutQuad,
		EaseInCubic, EaseOutCubic, EaseInOutCubic,
	}
}

// ParseKind resolves a configured name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Func maps progress t in [0,1] to eased progress. Output is not clamped.
type Func func(t float64) float64

// Closed-form curves.
var (
	linear = func(t float64) float64 { return t }

	easeInQuad = func(t float64) float64 { return t * t }

	easeOutQuad = func(t float64) float64 { return 1 - (t-1)*(t-1) }

	easeInOutQuad = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	}

	// legacyEaseInOutQuad jumps to 2 at t=0.5 and falls back to 1 at t=1.
	legacyEaseInOutQuad = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(t-1)
	}

	easeInCubic = func(t float64) float64 { return t * t * t }

	easeOutCubic = func(t float64) float64 {
		u := 1 - t
		return 1 - u*u*u
	}

	easeInOutCubic = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	}
)

// Library is a registry of easing functions keyed by kind.
type Library struct {
	funcs map[Kind]Func
}

// Option customizes a Library.
type Option func(*Library)

// WithLegacyInOutQuad registers the historical easeInOutQuad formula
// (t<0.5 ? 2t² : 1-2(t-1)) instead of the canonical one.
func WithLegacyInOutQuad() Option {
	return func(l *Library) {
		l.funcs[EaseInOutQuad] = legacyEaseInOutQuad
	}
}

// WithFunc registers or replaces the function for a kind.
func WithFunc(k Kind, fn Func) Option {
	return func(l *Library) {
		l.funcs[k] = fn
	}
}

// NewLibrary returns a library with every kind registered.
func NewLibrary(opts ...Option) *Library {
	l := &Library{funcs: map[Kind]Func{
		EaseInQuad:     easeInQuad,
		EaseOutQuad:    easeOutQuad,
		EaseInOutQuad:  easeInOutQuad,
		EaseInCubic:    easeInCubic,
		EaseOutCubic:   easeOutCubic,
		EaseInOutCubic: easeInOutCubic,
	}}
	for k, curve := range coarse {
		l.funcs[k] = curve.At
	}
	l.funcs[Linear] = linear
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Has reports whether a function is registered for k.
func (l *Library) Has(k Kind) bool {
	_, ok := l.funcs[k]
	return ok
}

// Func returns the registered function for k.
func (l *Library) Func(k Kind) (Func, error) {
	fn, ok := l.funcs[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return fn, nil
}

// Ease evaluates kind k at t.
func (l *Library) Ease(k Kind, t float64) (float64, error) {
	fn, err := l.Func(k)
	if err != nil {
		return 0, err
	}
	return fn(t), nil
}

var defaultLibrary = NewLibrary()

// Apply evaluates kind k at t using the default library.
func Apply(k Kind, t float64) (float64, error) {
	return defaultLibrary.Ease(k, t)
}
