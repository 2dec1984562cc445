package input

import (
	"decknav/internal/ui/gesture"
	"decknav/internal/ui/input/modes"
	"decknav/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	keys        modes.KeyMap
	tracker     *gesture.Tracker
}

// New creates a handler. swipeMinDistance is the horizontal travel, in
// cells, a mouse drag needs to count as a swipe.
func New(swipeMinDistance int) *Handler {
	ti := textinput.New()
	ti.CharLimit = 6

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        modes.DefaultKeyMap(),
		tracker:     gesture.NewTracker(swipeMinDistance),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(h.keys)
	h.modes[types.ModeGoto] = modes.NewGotoMode(h.textInput)
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

// KeyMap returns the normal mode bindings
func (h *Handler) KeyMap() modes.KeyMap {
	return h.keys
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Keys a text mode did not handle go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// HandleMouse turns pointer events into actions. A press starts a gesture;
// the release either completes a swipe or, when the pointer barely moved,
// counts as a click on whatever element lies under it.
func (h *Handler) HandleMouse(msg tea.MouseMsg, hits types.HitTester) []types.Action {
	if h.currentMode != types.ModeNormal {
		h.tracker.Cancel()
		return nil
	}

	p := gesture.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			h.tracker.Press(p)
		}
		return nil

	case tea.MouseActionRelease:
		if !h.tracker.Pressed() {
			return nil
		}
		v, intent := h.tracker.Release(p)
		if intent != gesture.None {
			return []types.Action{types.SwipeAction{Intent: intent}}
		}
		if hits == nil {
			return nil
		}
		start, end := hits.HitTest(v.Start.X, v.Start.Y), hits.HitTest(v.End.X, v.End.Y)
		if start != end {
			return nil
		}
		return clickActions(end)
	}

	return nil
}

func clickActions(t types.Target) []types.Action {
	switch t.Kind {
	case types.TargetPrevButton:
		return []types.Action{types.ClickPrevAction{}}
	case types.TargetNextButton:
		return []types.Action{types.ClickNextAction{}}
	case types.TargetDot:
		return []types.Action{types.ClickDotAction{Index: t.Dot}}
	}
	return nil
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action

	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode

	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	h.tracker.Cancel()

	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeGoto
}

// Reset returns to normal mode and drops any half-finished input: typed
// goto digits and a pressed mouse button
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
	h.tracker.Cancel()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
