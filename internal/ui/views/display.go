package views

import (
	"fmt"
	"time"

	"decknav/internal/ui/motion"
	"decknav/internal/ui/services/navigation"
)

// Indicators is the visual state derived from the active slide
type Indicators struct {
	Active       int // 1-based; the only slide and dot marked active
	Total        int
	Counter      string
	Progress     float64 // percent
	PrevDisabled bool
	NextDisabled bool
}

// NewIndicators computes indicators for the given position
func NewIndicators(active, total int) Indicators {
	return Indicators{
		Active:       active,
		Total:        total,
		Counter:      fmt.Sprintf("%d / %d", active, total),
		Progress:     navigation.Progress(active, total),
		PrevDisabled: active == 1,
		NextDisabled: active == total,
	}
}

// Display is the view side of navigation: it keeps the indicators in step
// with the navigator and restarts the slide transition on every change.
type Display struct {
	indicators Indicators
	transition *motion.Transition
	now        func() time.Time
}

// NewDisplay creates a display for a deck of total slides, showing the
// first slide
func NewDisplay(total int, transition *motion.Transition) *Display {
	if transition == nil {
		transition = motion.NewTransition(0)
	}
	return &Display{
		indicators: NewIndicators(1, total),
		transition: transition,
		now:        time.Now,
	}
}

// OnSlideChanged implements navigation.DisplaySync
func (d *Display) OnSlideChanged(previousIndex, newIndex, totalSlides int) {
	d.indicators = NewIndicators(newIndex, totalSlides)
	d.transition.Restart(d.now())
}

// Indicators returns the current indicator state
func (d *Display) Indicators() Indicators {
	return d.indicators
}

// Transition returns the slide transition
func (d *Display) Transition() *motion.Transition {
	return d.transition
}
