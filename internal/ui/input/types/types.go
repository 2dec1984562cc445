package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeGoto
	ModeHelp
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentSlide() int
	TotalSlides() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// TargetKind identifies a clickable element of the rendered frame
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetPrevButton
	TargetNextButton
	TargetDot
)

// Target is the element under a pointer position
type Target struct {
	Kind TargetKind
	Dot  int // 0-based dot index when Kind is TargetDot
}

// HitTester resolves screen cells to clickable elements
type HitTester interface {
	HitTest(x, y int) Target
}
