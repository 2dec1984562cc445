package navigation

import "errors"

// ErrNoSlides is returned when a navigator is created for an empty deck
var ErrNoSlides = errors.New("navigation: total slides must be at least 1")

// State holds all navigation-related state
type State struct {
	Current int // 1-based, always within [1, Total]
	Total   int // fixed at construction
}

// DisplaySync receives a notification after every successful transition.
// Implementations update the visual indicators for newIndex.
type DisplaySync interface {
	OnSlideChanged(previousIndex, newIndex, totalSlides int)
}

// DisplaySyncFunc adapts a function to the DisplaySync interface
type DisplaySyncFunc func(previousIndex, newIndex, totalSlides int)

// OnSlideChanged calls f
func (f DisplaySyncFunc) OnSlideChanged(previousIndex, newIndex, totalSlides int) {
	f(previousIndex, newIndex, totalSlides)
}
