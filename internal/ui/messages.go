package ui

import (
	"time"

	"decknav/internal/deck"
	"decknav/internal/domain"
	"decknav/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer while a transition runs
type tickMsg time.Time

// imagesPreloadedMsg carries the deck copy with checked image statuses
type imagesPreloadedMsg struct {
	deck    *domain.Deck
	summary deck.PreloadSummary
	err     error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
