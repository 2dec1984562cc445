package gesture

// Tracker captures one press/release pair at a time
type Tracker struct {
	minDistance int
	start       Point
	pressed     bool
}

// NewTracker creates a tracker. A non-positive minDistance falls back to
// DefaultMinDistance.
func NewTracker(minDistance int) *Tracker {
	if minDistance <= 0 {
		minDistance = DefaultMinDistance
	}
	return &Tracker{minDistance: minDistance}
}

// Press records where a gesture starts
func (t *Tracker) Press(p Point) {
	t.start = p
	t.pressed = true
}

// Pressed reports whether a gesture is in progress
func (t *Tracker) Pressed() bool {
	return t.pressed
}

// Release ends the gesture and classifies it. Without a recorded press the
// gesture is incomplete and classifies as None.
func (t *Tracker) Release(p Point) (Vector, Intent) {
	if !t.pressed {
		return Vector{End: p}, None
	}
	v := Vector{Start: t.start, End: p}
	t.Cancel()
	return v, v.Classify(t.minDistance)
}

// Cancel discards a gesture in progress
func (t *Tracker) Cancel() {
	t.start = Point{}
	t.pressed = false
}
