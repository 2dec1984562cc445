package types

import "decknav/internal/ui/gesture"

// Navigation directions
const (
	DirectionPrevious = "previous"
	DirectionNext     = "next"
	DirectionFirst    = "first"
	DirectionLast     = "last"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "previous", "next", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// GoToAction jumps to a 1-based slide number
type GoToAction struct {
	Slide int
}

func (a GoToAction) Type() string { return "goto" }

// Pointer actions
type ClickDotAction struct {
	Index int // 0-based
}

func (a ClickDotAction) Type() string { return "click_dot" }

type ClickPrevAction struct{}

func (a ClickPrevAction) Type() string { return "click_prev" }

type ClickNextAction struct{}

func (a ClickNextAction) Type() string { return "click_next" }

type SwipeAction struct {
	Intent gesture.Intent
}

func (a SwipeAction) Type() string { return "swipe" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ToggleFullscreenAction struct{}

func (a ToggleFullscreenAction) Type() string { return "toggle_fullscreen" }

type ShowHelpAction struct {
	Visible bool
}

func (a ShowHelpAction) Type() string { return "show_help" }

type OpenOutlineAction struct{}

func (a OpenOutlineAction) Type() string { return "open_outline" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
