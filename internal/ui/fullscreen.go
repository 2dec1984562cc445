package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"decknav/internal/eventbus"
)

// AltScreen is the fullscreen boundary: it switches the terminal between
// the alternate screen and the normal inline view. The state lives here,
// never in navigation.
type AltScreen struct {
	bus    eventbus.EventBus
	active bool
}

// NewAltScreen creates the boundary. active reports whether the program
// was started on the alternate screen.
func NewAltScreen(bus eventbus.EventBus, active bool) *AltScreen {
	return &AltScreen{bus: bus, active: active}
}

// Active reports whether the alternate screen is in use
func (s *AltScreen) Active() bool {
	return s.active
}

// Toggle implements input.Fullscreen
func (s *AltScreen) Toggle() tea.Cmd {
	s.active = !s.active
	slog.Debug("fullscreen toggled", "fullscreen", s.active)

	if s.bus != nil {
		s.bus.Publish(eventbus.FullscreenToggledEvent{Fullscreen: s.active})
	}

	if s.active {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}
