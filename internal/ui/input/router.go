package input

import (
	"decknav/internal/ui/gesture"
	"decknav/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// Fullscreen toggles presentation mode on the host terminal
type Fullscreen interface {
	Toggle() tea.Cmd
}

// Outcome reports what routing an action did
type Outcome struct {
	Handled bool // the action was a navigation or fullscreen input
	Index   int  // active slide after the action
	Changed bool // a transition was applied
}

// Router maps discrete inputs to exactly one navigation call
type Router struct {
	nav    Navigator
	screen Fullscreen
}

// NewRouter creates a router. screen may be nil, in which case fullscreen
// requests are ignored.
func NewRouter(nav Navigator, screen Fullscreen) *Router {
	return &Router{nav: nav, screen: screen}
}

// Route applies action. Actions that are not navigation inputs are left for
// the caller and reported with Handled=false.
func (r *Router) Route(action types.Action) (Outcome, tea.Cmd) {
	var (
		index   int
		changed bool
	)

	switch a := action.(type) {
	case types.NavigateAction:
		switch a.Direction {
		case types.DirectionPrevious:
			index, changed = r.nav.Previous()
		case types.DirectionNext:
			index, changed = r.nav.Next()
		case types.DirectionFirst:
			index, changed = r.nav.GoTo(1)
		case types.DirectionLast:
			index, changed = r.nav.GoTo(r.nav.Total())
		default:
			return Outcome{Handled: true, Index: r.nav.Current()}, nil
		}

	case types.GoToAction:
		index, changed = r.nav.GoTo(a.Slide)

	case types.ClickDotAction:
		index, changed = r.nav.GoTo(a.Index + 1)

	case types.ClickPrevAction:
		index, changed = r.nav.Previous()

	case types.ClickNextAction:
		index, changed = r.nav.Next()

	case types.SwipeAction:
		switch a.Intent {
		case gesture.Previous:
			index, changed = r.nav.Previous()
		case gesture.Next:
			index, changed = r.nav.Next()
		default:
			index = r.nav.Current()
		}

	case types.ToggleFullscreenAction:
		var cmd tea.Cmd
		if r.screen != nil {
			cmd = r.screen.Toggle()
		}
		return Outcome{Handled: true, Index: r.nav.Current()}, cmd

	default:
		return Outcome{}, nil
	}

	return Outcome{Handled: true, Index: index, Changed: changed}, nil
}
