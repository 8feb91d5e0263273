package statusbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/pagescroll/internal/ui/testutil"
)

func TestRender_Width(t *testing.T) {
	s := State{Current: 2, Total: 10, Easing: "easeInOut", Backend: "declarative", DeckName: "talk.md", DeckBytes: 2048}

	for _, w := range []int{20, 60, 120} {
		assert.Equal(t, w, testutil.MeasureWidth(Render(s, w)), "width %d", w)
	}
}

func TestRender_Content(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := State{
		Current:   2,
		Total:     10,
		Easing:    "easeInOut",
		Backend:   "declarative",
		DeckName:  "talk.md",
		DeckBytes: 2048,
		SavedAt:   now.Add(-2 * time.Hour),
		Now:       now,
	}

	out := testutil.StripANSI(Render(s, 140))

	assert.Contains(t, out, "slide 3/10")
	assert.Contains(t, out, "easeInOut·declarative")
	assert.Contains(t, out, "talk.md (2.0 KiB)")
	assert.Contains(t, out, "resumed from 2 hours ago")
	assert.Contains(t, out, "○")
}

func TestRender_AnimatingMarker(t *testing.T) {
	out := testutil.StripANSI(Render(State{Total: 2, Animating: true}, 80))

	assert.Contains(t, out, "●")
}

func TestRender_ErrorReplacesDetails(t *testing.T) {
	s := State{Total: 3, Easing: "linear", Backend: "interpolated", Err: "Failed to change slide: boom"}

	out := testutil.StripANSI(Render(s, 120))

	assert.Contains(t, out, "Failed to change slide: boom")
	assert.NotContains(t, out, "linear·interpolated")
}

func TestRender_EmptyDeck(t *testing.T) {
	out := testutil.StripANSI(Render(State{}, 60))

	assert.Contains(t, out, "slide -/0")
}

func TestRender_ZeroWidth(t *testing.T) {
	assert.Empty(t, Render(State{Total: 1}, 0))
}

func TestFraction(t *testing.T) {
	assert.InDelta(t, 0.0, State{}.Fraction(), 1e-9)
	assert.InDelta(t, 0.25, State{Current: 0, Total: 4}.Fraction(), 1e-9)
	assert.InDelta(t, 1.0, State{Current: 3, Total: 4}.Fraction(), 1e-9)
}

func TestRender_LongErrorTruncated(t *testing.T) {
	s := State{Total: 3, Err: "Failed to reload deck 'talk.md': read deck: open /a/very/long/path/that/does/not/fit/talk.md"}

	out := Render(s, 60)

	assert.Equal(t, 60, testutil.MeasureWidth(out))
	assert.Contains(t, testutil.StripANSI(out), "Failed to reload deck")
}
