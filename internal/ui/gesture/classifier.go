// Package gesture turns pointer movements into navigation intents.
package gesture

// DefaultMinDistance is the horizontal travel a swipe must exceed
const DefaultMinDistance = 50

// Intent is the navigation direction derived from a gesture
type Intent int

const (
	None Intent = iota
	Previous
	Next
)

func (i Intent) String() string {
	switch i {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "none"
	}
}

// Point is a pointer position
type Point struct {
	X, Y int
}

// Vector is the start and end of one pointer interaction
type Vector struct {
	Start, End Point
}

// Classify classifies a gesture using DefaultMinDistance
func Classify(start, end Point) Intent {
	return ClassifyWithin(start, end, DefaultMinDistance)
}

// ClassifyWithin classifies a gesture. Movements that are mostly vertical or
// travel no more than minDistance horizontally are taps or scrolls and yield
// None. A swipe to the right reveals the previous slide, to the left the next.
func ClassifyWithin(start, end Point, minDistance int) Intent {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if abs(dx) <= abs(dy) || abs(dx) <= minDistance {
		return None
	}
	if dx > 0 {
		return Previous
	}
	return Next
}

// Classify classifies the vector with the given threshold
func (v Vector) Classify(minDistance int) Intent {
	return ClassifyWithin(v.Start, v.End, minDistance)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
