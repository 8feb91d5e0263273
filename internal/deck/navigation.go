package deck

// Direction of a navigation step.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Navigator owns the slide index and the guard against overlapping
// transitions. It never touches rendering state.
type Navigator struct {
	current   int
	total     int
	loop      bool
	animating bool
}

// NewNavigator returns a navigator positioned on the first slide.
func NewNavigator(total int, loop bool) *Navigator {
	return &Navigator{total: max(total, 0), loop: loop}
}

// Current returns the active slide index.
func (n *Navigator) Current() int { return n.current }

// Total returns the slide count.
func (n *Navigator) Total() int { return n.total }

// Loop reports whether stepping past either end wraps around.
func (n *Navigator) Loop() bool { return n.loop }

// Animating reports whether a transition is in flight.
func (n *Navigator) Animating() bool { return n.animating }

// RequestAdvance admits or rejects one step in dir. On admission the index
// moves and the animating guard is raised until CompleteAnimation.
func (n *Navigator) RequestAdvance(dir Direction) (int, bool) {
	if n.animating || n.total == 0 {
		return n.current, false
	}

	var next int
	switch dir {
	case Forward:
		if n.current+1 >= n.total && !n.loop {
			return n.current, false
		}
		next = (n.current + 1) % n.total
	case Backward:
		if n.current-1 < 0 && !n.loop {
			return n.current, false
		}
		next = (n.current - 1 + n.total) % n.total
	default:
		return n.current, false
	}

	n.animating = true
	n.current = next
	return next, true
}

// CompleteAnimation lowers the guard. Calling it when no transition is in
// flight is a no-op.
func (n *Navigator) CompleteAnimation() {
	n.animating = false
}

// RestoreFromIndex jumps to i, clamped to the slide range. It ignores the
// guard and the loop policy.
func (n *Navigator) RestoreFromIndex(i int) {
	if n.total == 0 {
		n.current = 0
		return
	}
	n.current = min(max(i, 0), n.total-1)
}

// Relayout records a new slide count. The index is kept unless the deck
// shrank below it.
func (n *Navigator) Relayout(total int) {
	n.total = max(total, 0)
	switch {
	case n.total == 0:
		n.current = 0
	case n.current >= n.total:
		n.current = n.total - 1
	}
}
