package modes

import (
	"strconv"
	"strings"

	"decknav/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// GotoMode reads a slide number and jumps to it on enter
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "go to slide: ", ti),
	}
}

func (m *GotoMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	actions, consumed := m.TextInputMode.HandleKey(msg, ctx)
	for i, a := range actions {
		submit, ok := a.(types.SubmitTextAction)
		if !ok {
			continue
		}
		n, err := ParseSlideNumber(submit.Text)
		if err != nil {
			// Leave the mode without navigating
			actions[i] = types.CancelTextAction{}
			continue
		}
		actions[i] = types.GoToAction{Slide: n}
	}
	return actions, consumed
}

// ParseSlideNumber parses user input such as "7" or " 12 "
func ParseSlideNumber(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
