package navigation

import (
	"decknav/internal/eventbus"
)

// Service owns the current slide index. All transitions go through GoTo,
// which rejects targets outside [1, Total] without side effects.
type Service struct {
	state    State
	bus      eventbus.EventBus
	displays []DisplaySync
}

// NewService creates a navigator positioned on the first slide. bus may be nil.
func NewService(totalSlides int, bus eventbus.EventBus) (*Service, error) {
	if totalSlides < 1 {
		return nil, ErrNoSlides
	}
	return &Service{
		state: State{Current: 1, Total: totalSlides},
		bus:   bus,
	}, nil
}

// Attach registers a display to be notified of transitions
func (s *Service) Attach(d DisplaySync) {
	s.displays = append(s.displays, d)
}

// Current returns the 1-based index of the active slide
func (s *Service) Current() int {
	return s.state.Current
}

// Total returns the number of slides
func (s *Service) Total() int {
	return s.state.Total
}

// AtFirst reports whether the first slide is active
func (s *Service) AtFirst() bool {
	return s.state.Current == 1
}

// AtLast reports whether the last slide is active
func (s *Service) AtLast() bool {
	return s.state.Current == s.state.Total
}

// Progress returns the completion percentage for the active slide
func (s *Service) Progress() float64 {
	return Progress(s.state.Current, s.state.Total)
}

// Progress returns current/total as a percentage
func Progress(current, total int) float64 {
	if total < 1 {
		return 0
	}
	return float64(current) / float64(total) * 100
}

// GoTo activates the target slide. Targets outside [1, Total] are ignored
// and report changed=false. Re-selecting the active slide still counts as a
// transition and notifies displays again.
func (s *Service) GoTo(target int) (int, bool) {
	if target < 1 || target > s.state.Total {
		return s.state.Current, false
	}

	previous := s.state.Current
	s.state.Current = target

	for _, d := range s.displays {
		d.OnSlideChanged(previous, target, s.state.Total)
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.SlideChangedEvent{
			PreviousIndex: previous,
			NewIndex:      target,
			TotalSlides:   s.state.Total,
		})
	}

	return target, true
}

// Next advances one slide; no-op on the last slide
func (s *Service) Next() (int, bool) {
	return s.GoTo(s.state.Current + 1)
}

// Previous goes back one slide; no-op on the first slide
func (s *Service) Previous() (int, bool) {
	return s.GoTo(s.state.Current - 1)
}

// First activates the first slide
func (s *Service) First() (int, bool) {
	return s.GoTo(1)
}

// Last activates the last slide
func (s *Service) Last() (int, bool) {
	return s.GoTo(s.state.Total)
}
