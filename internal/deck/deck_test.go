package deck

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/pagescroll/internal/easing"
)

type harness struct {
	deck   *SlideDeck
	sched  *fakeScheduler
	r      *fakeRenderer
	input  *fakeInput
	frags  *fakeFragments
	errors []error
}

func newHarness(t *testing.T, cfg Config, slides int) *harness {
	t.Helper()
	h := &harness{
		sched: newFakeScheduler(),
		r:     newFakeRenderer(slides, 24),
		input: newFakeInput(),
		frags: &fakeFragments{},
	}
	d, err := New(cfg, h.r, Options{
		Scheduler: h.sched,
		Input:     h.input,
		Fragments: h.frags,
		OnError:   func(err error) { h.errors = append(h.errors, err) },
	})
	require.NoError(t, err)
	h.deck = d
	return h
}

func interpolatedConfig(loop bool) Config {
	return Config{
		Easing:       easing.Linear,
		Duration:     600 * time.Millisecond,
		Selector:     "slide",
		Loop:         loop,
		Interpolated: true,
	}
}

// settle runs frames until the in-flight transition completes.
func (h *harness) settle() {
	for range 100 {
		if !h.deck.Animating() {
			return
		}
		h.sched.frame(16 * time.Millisecond)
	}
}

func TestNew_RejectsUnsupportedEasing(t *testing.T) {
	cfg := Config{Easing: easing.EaseInOutQuad, Duration: time.Second, Selector: "slide"}

	_, err := New(cfg, newFakeRenderer(3, 10), Options{Scheduler: newFakeScheduler()})

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "declarative", cfgErr.Backend)
}

func TestNew_RequiresScheduler(t *testing.T) {
	_, err := New(interpolatedConfig(true), newFakeRenderer(3, 10), Options{})

	assert.Error(t, err)
}

func TestSlideDeck_Initialize(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 4)

	require.NoError(t, h.deck.Initialize())

	assert.True(t, h.r.locked)
	assert.Equal(t, 24, h.r.slideExtent)
	assert.Equal(t, 4, h.deck.Total())
	assert.Equal(t, 0, h.deck.Current())
	assert.Equal(t, 0, h.r.active)
	assert.Len(t, h.input.wheel, 1)
	assert.Len(t, h.input.resize, 1)
	assert.Empty(t, h.frags.writes, "initialize must not rewrite the fragment")
}

func TestSlideDeck_InitializeRestoresFragment(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 5)
	h.frags.value, h.frags.set = "slide3/notes", true

	require.NoError(t, h.deck.Initialize())

	assert.Equal(t, 3, h.deck.Current())
	assert.False(t, h.deck.Animating())
	assert.Equal(t, float64(3*24), h.r.lastOffset())
	assert.Equal(t, 3, h.r.active)
	assert.Empty(t, h.frags.writes)
}

func TestSlideDeck_InitializeClampsFragment(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 3)
	h.frags.value, h.frags.set = "slide42", true

	require.NoError(t, h.deck.Initialize())

	assert.Equal(t, 2, h.deck.Current())
}

func TestSlideDeck_InitializeIgnoresForeignFragment(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 3)
	h.frags.value, h.frags.set = "chapter2", true

	require.NoError(t, h.deck.Initialize())

	assert.Equal(t, 0, h.deck.Current())
}

func TestSlideDeck_InitializeWithoutSelector(t *testing.T) {
	cfg := interpolatedConfig(true)
	cfg.Selector = ""
	h := newHarness(t, cfg, 3)

	err := h.deck.Initialize()

	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	assert.True(t, errors.Is(err, ErrNoSelector))
}

func TestSlideDeck_ScrollWritesFragment(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 4)
	require.NoError(t, h.deck.Initialize())

	h.input.scroll(1)

	assert.Equal(t, 1, h.deck.Current())
	assert.True(t, h.deck.Animating())
	assert.Equal(t, []string{"slide1"}, h.frags.writes)

	h.settle()
	assert.False(t, h.deck.Animating())
	assert.Equal(t, float64(24), h.r.lastOffset())
}

func TestSlideDeck_LoopScenario(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 4)
	require.NoError(t, h.deck.Initialize())

	var got []int
	for range 4 {
		h.input.scroll(3)
		got = append(got, h.deck.Current())
		h.settle()
	}

	assert.Equal(t, []int{1, 2, 3, 0}, got)
	assert.Equal(t, []string{"slide1", "slide2", "slide3", "slide0"}, h.frags.writes)
}

func TestSlideDeck_NoLoopBoundary(t *testing.T) {
	h := newHarness(t, interpolatedConfig(false), 3)
	h.frags.value, h.frags.set = "slide2", true
	require.NoError(t, h.deck.Initialize())

	h.input.scroll(1)

	assert.Equal(t, 2, h.deck.Current())
	assert.False(t, h.deck.Animating())
	assert.Empty(t, h.frags.writes, "rejected navigation writes nothing")
	assert.Empty(t, h.errors)
}

func TestSlideDeck_RequestDuringAnimationRejected(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 5)
	require.NoError(t, h.deck.Initialize())

	h.input.scroll(1)
	h.sched.frame(100 * time.Millisecond)
	h.input.scroll(1)
	h.input.scroll(-1)

	assert.Equal(t, 1, h.deck.Current())
	assert.Equal(t, []string{"slide1"}, h.frags.writes)

	h.settle()
	h.input.scroll(1)

	assert.Equal(t, 2, h.deck.Current())
}

func TestSlideDeck_ZeroDeltaIgnored(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 3)
	require.NoError(t, h.deck.Initialize())

	h.input.scroll(0)

	assert.Equal(t, 0, h.deck.Current())
	assert.False(t, h.deck.Animating())
}

func TestSlideDeck_DeclarativeFlow(t *testing.T) {
	cfg := interpolatedConfig(true)
	cfg.Interpolated = false
	cfg.Easing = easing.Ease
	h := newHarness(t, cfg, 3)
	require.NoError(t, h.deck.Initialize())
	assert.Equal(t, "declarative", h.deck.BackendName())

	h.input.scroll(1)
	h.sched.frame(16 * time.Millisecond)
	assert.Equal(t, float64(24), h.r.lastOffset())
	assert.True(t, h.deck.Animating())

	h.r.finish()
	assert.False(t, h.deck.Animating())

	h.input.scroll(1)
	assert.Equal(t, 2, h.deck.Current())
}

func TestSlideDeck_DeclarativeLostSignalRecovers(t *testing.T) {
	cfg := interpolatedConfig(true)
	cfg.Interpolated = false
	cfg.Easing = easing.EaseOut
	h := newHarness(t, cfg, 3)
	require.NoError(t, h.deck.Initialize())

	h.input.scroll(1)
	h.sched.frame(16 * time.Millisecond)
	h.r.finished = map[int]func(){}

	h.sched.advance(time.Second)

	assert.False(t, h.deck.Animating())
}

func TestSlideDeck_ResizeKeepsIndexAndGuard(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 4)
	require.NoError(t, h.deck.Initialize())
	h.input.scroll(1)
	h.settle()

	h.r.extent = 40
	h.input.resized()

	assert.Equal(t, 1, h.deck.Current())
	assert.False(t, h.deck.Animating())
	assert.Equal(t, 40, h.r.slideExtent)
	assert.Equal(t, float64(40), h.r.lastOffset())
	assert.Equal(t, []string{"slide1"}, h.frags.writes)
}

func TestSlideDeck_ResizeDuringAnimationDefersPlacement(t *testing.T) {
	cfg := interpolatedConfig(true)
	cfg.Interpolated = false
	cfg.Easing = easing.Linear
	h := newHarness(t, cfg, 4)
	require.NoError(t, h.deck.Initialize())

	h.input.scroll(1)
	h.sched.frame(16 * time.Millisecond)
	writes := len(h.r.offsets)

	h.r.extent = 30
	h.input.resized()
	assert.True(t, h.deck.Animating())
	assert.Len(t, h.r.offsets, writes, "running transition owns the offset")

	h.r.finish()
	assert.False(t, h.deck.Animating())
	assert.Equal(t, float64(30), h.r.lastOffset())
}

func TestSlideDeck_ResizeWithoutSelector(t *testing.T) {
	cfg := interpolatedConfig(true)
	cfg.Selector = ""
	h := newHarness(t, cfg, 3)

	err := h.deck.HandleResize()

	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, "resize", usage.Op)
}

func TestSlideDeck_TeardownIsSymmetric(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 3)
	require.NoError(t, h.deck.Initialize())

	h.deck.Teardown()
	h.deck.Teardown()

	assert.Empty(t, h.input.wheel)
	assert.Empty(t, h.input.resize)
	assert.False(t, h.r.locked)

	h.input.scroll(1)
	assert.Equal(t, 0, h.deck.Current())
}

func TestSlideDeck_SetContainerRestoresFromFragment(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 4)
	require.NoError(t, h.deck.Initialize())
	h.input.scroll(1)
	h.settle()
	h.input.scroll(1)
	h.settle()

	next := newFakeRenderer(6, 12)
	require.NoError(t, h.deck.SetContainer(next))

	assert.Equal(t, 6, h.deck.Total())
	assert.Equal(t, 2, h.deck.Current())
	assert.Equal(t, float64(24), next.lastOffset())
	assert.False(t, h.r.locked, "old container released")
	assert.True(t, next.locked)
	assert.Len(t, h.input.wheel, 1, "listeners not duplicated")
}

func TestSlideDeck_SetContainerDropsStaleCompletion(t *testing.T) {
	h := newHarness(t, interpolatedConfig(true), 4)
	require.NoError(t, h.deck.Initialize())

	h.input.scroll(1)
	h.sched.frame(300 * time.Millisecond)
	require.NoError(t, h.deck.SetContainer(newFakeRenderer(4, 24)))
	assert.False(t, h.deck.Animating())

	h.input.scroll(1)
	require.True(t, h.deck.Animating())

	// the first run completes here; it must not clear the second run's guard
	h.sched.frame(300 * time.Millisecond)
	assert.True(t, h.deck.Animating())

	h.sched.frame(300 * time.Millisecond)
	assert.False(t, h.deck.Animating())
	assert.Equal(t, 2, h.deck.Current())
}

func TestFragmentRoundTrip(t *testing.T) {
	for i := range 5 {
		h := newHarness(t, interpolatedConfig(false), 5)
		h.frags.Write(FormatFragment("slide", i))

		require.NoError(t, h.deck.Initialize())

		assert.Equal(t, i, h.deck.Current())
	}
}
