// Package slideview draws a deck as one tall column of slides seen through a
// viewport, and animates the viewport offset the way a browser animates a
// CSS transform transition.
package slideview

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pagescroll/internal/deck"
	"github.com/llehouerou/pagescroll/internal/easing"
	"github.com/llehouerou/pagescroll/internal/slides"
	"github.com/llehouerou/pagescroll/internal/ui/render"
)

// View is a deck.Renderer backed by parsed slides.
type View struct {
	sched     deck.Scheduler
	all       []slides.Slide
	selector  string
	codeStyle string

	width       int
	height      int
	slideHeight int

	offset float64
	active int
	locked bool

	curve    easing.CubicBezier
	duration time.Duration
	anim     *transition

	finished map[int]func()
	nextID   int
}

// transition is one native offset animation.
type transition struct {
	from, to float64
	start    time.Time
	curve    easing.CubicBezier
	duration time.Duration
}

// Options configures a View.
type Options struct {
	// Selector picks the slides shown. Empty means slides.DefaultClass.
	Selector  string
	CodeStyle string
}

// New returns a View drawing all with native transitions timed by sched.
func New(sched deck.Scheduler, all []slides.Slide, opts Options) *View {
	if opts.Selector == "" {
		opts.Selector = slides.DefaultClass
	}
	return &View{
		sched:     sched,
		all:       all,
		selector:  opts.Selector,
		codeStyle: opts.CodeStyle,
		finished:  map[int]func(){},
	}
}

var _ deck.Renderer = (*View)(nil)

// Resize sets the viewport size. The deck picks up the new height through
// Extent on its next resize handling.
func (v *View) Resize(width, height int) {
	v.width = max(width, 0)
	v.height = max(height, 0)
}

// Width returns the viewport width.
func (v *View) Width() int { return v.width }

// Height returns the viewport height.
func (v *View) Height() int { return v.height }

func (v *View) CountSlides(selector string) int {
	return len(slides.WithClass(v.all, selector))
}

// Extent is the viewport height: one slide fills the screen.
func (v *View) Extent() int { return v.height }

func (v *View) SetSlideExtent(extent int) { v.slideHeight = max(extent, 0) }

func (v *View) SetActive(index, _ int) { v.active = index }

func (v *View) SetScrollLocked(locked bool) { v.locked = locked }

// Locked reports whether free scrolling is disabled.
func (v *View) Locked() bool { return v.locked }

// Offset returns the current, possibly mid-transition, offset in rows.
func (v *View) Offset() float64 { return v.offset }

// Active returns the slide marked active.
func (v *View) Active() int { return v.active }

// Transitioning reports whether a native transition is running.
func (v *View) Transitioning() bool { return v.anim != nil }

func (v *View) SetTransitionDescriptor(curve easing.CubicBezier, d time.Duration) {
	v.curve = curve
	v.duration = d
}

func (v *View) OnTransitionFinished(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.finished[id] = fn
	return func() { delete(v.finished, id) }
}

// SetOffset moves the viewport. With a transition descriptor set the move
// is animated from the current offset; otherwise it is immediate and any
// running transition is dropped without a finished signal. Setting the
// value already in place starts nothing.
func (v *View) SetOffset(value float64) {
	if v.duration <= 0 || v.sched == nil {
		v.anim = nil
		v.offset = value
		return
	}
	if v.anim == nil && v.offset == value {
		return
	}
	v.anim = &transition{
		from:     v.offset,
		to:       value,
		start:    v.sched.Now(),
		curve:    v.curve,
		duration: v.duration,
	}
	v.scheduleFrame(v.anim)
}

func (v *View) scheduleFrame(a *transition) {
	v.sched.Schedule(func(now time.Time) {
		if v.anim != a {
			return
		}
		p := float64(now.Sub(a.start)) / float64(a.duration)
		if p >= 1 {
			v.offset = a.to
			v.anim = nil
			v.fireFinished()
			return
		}
		v.offset = a.from + (a.to-a.from)*a.curve.At(p)
		v.scheduleFrame(a)
	})
}

func (v *View) fireFinished() {
	pending := v.finished
	v.finished = map[int]func(){}
	for _, fn := range pending {
		fn()
	}
}

// Slides returns the slides shown by the view.
func (v *View) Slides() []slides.Slide { return slides.WithClass(v.all, v.selector) }

// View renders the viewport, exactly height lines of width cells.
func (v *View) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}
	shown := v.Slides()
	top := int(math.Round(v.offset))

	cache := map[int][]string{}
	lines := make([]string, v.height)
	for row := range v.height {
		lines[row] = v.row(shown, cache, top+row)
	}
	return strings.Join(lines, "\n")
}

// row returns absolute row y of the slide column.
func (v *View) row(shown []slides.Slide, cache map[int][]string, y int) string {
	if v.slideHeight == 0 || y < 0 {
		return render.Blank(v.width)
	}
	i := y / v.slideHeight
	if i >= len(shown) {
		return render.Blank(v.width)
	}
	body, ok := cache[i]
	if !ok {
		// one blank row of top padding
		body = append([]string{""}, slides.Render(shown[i], slides.RenderOptions{
			Width:     v.width,
			Active:    i == v.active,
			CodeStyle: v.codeStyle,
		})...)
		cache[i] = body
	}
	r := y - i*v.slideHeight
	if r >= len(body) {
		return render.Blank(v.width)
	}
	return body[r] + render.Blank(v.width-lipgloss.Width(body[r]))
}
