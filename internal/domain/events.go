package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDeckLoaded        EventType = "DeckLoaded"
	EventSlideChanged      EventType = "SlideChanged"
	EventFullscreenToggled EventType = "FullscreenToggled"
	EventImagesPreloaded   EventType = "ImagesPreloaded"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DeckLoadedEvent is emitted once the deck has been parsed
type DeckLoadedEvent struct {
	Path   string
	Slides int
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// SlideChangedEvent is emitted after every successful transition,
// including a transition to the slide that was already active
type SlideChangedEvent struct {
	PreviousIndex int
	NewIndex      int
	TotalSlides   int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// FullscreenToggledEvent is emitted when the alternate screen is entered or left
type FullscreenToggledEvent struct {
	Fullscreen bool
}

func (e FullscreenToggledEvent) Type() EventType { return EventFullscreenToggled }

// ImagesPreloadedEvent is emitted when image checks for the deck finish
type ImagesPreloadedEvent struct {
	Loaded  int
	Missing int
	Remote  int
}

func (e ImagesPreloadedEvent) Type() EventType { return EventImagesPreloaded }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
