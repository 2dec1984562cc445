package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"decknav/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Deck          *domain.Deck
	Indicators    Indicators
	Offset        int // transition shift of the slide body, in cells
	ShowProgress  bool
	ShowDots      bool
	ShowHelp      bool
	StatusMessage string
	StatusIsError bool
	InputMode     string
	TextInput     string
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	slideRender *SlideRenderer
	popupRender *PopupRenderer
	progress    progress.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		slideRender: NewSlideRenderer(styles),
		popupRender: NewPopupRenderer(styles),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Render produces the complete frame. The frame is exactly state.Height
// rows; the footer sits on the row ComputeLayout reports.
func (r *Renderer) Render(state ViewState) string {
	width, height := state.Width, state.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	if state.Deck == nil {
		return r.styles.Dim.Render("Loading deck...")
	}

	layout := ComputeLayout(width, height, state.Indicators.Total, state.ShowDots)

	rows := make([]string, 0, height)
	rows = append(rows, r.renderTitleLine(state, width))
	if state.ShowProgress {
		rows = append(rows, r.renderProgress(state.Indicators, width))
	} else {
		rows = append(rows, "")
	}

	bodyHeight := layout.FooterY - len(rows)
	rows = append(rows, r.renderSlide(state, width, bodyHeight)...)
	for len(rows) < layout.FooterY {
		rows = append(rows, "")
	}
	rows = rows[:layout.FooterY]

	rows = append(rows, r.renderFooter(state.Indicators, layout))
	rows = append(rows, r.renderBottomLine(state, width))
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}

	frame := strings.Join(rows, "\n")
	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(frame, r.renderHelpContent(state.KeyMap), height, width, r.styles.HelpBox)
	}
	return frame
}

func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	title := r.styles.Title.Render(state.Deck.Title)
	if slide := state.Deck.Slide(state.Indicators.Active); slide != nil && slide.Title != state.Deck.Title {
		title += r.styles.Dim.Render(" · " + slide.Title)
	}
	counter := r.styles.Counter.Render(state.Indicators.Counter)

	padding := width - lipgloss.Width(title) - lipgloss.Width(counter)
	if padding < 1 {
		padding = 1
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(title + strings.Repeat(" ", padding) + counter)
}

func (r *Renderer) renderProgress(ind Indicators, width int) string {
	bar := r.progress
	bar.Width = width
	return bar.ViewAs(ind.Progress / 100)
}

// renderSlide renders the active slide, shifted right by the transition
// offset and clipped to the body area
func (r *Renderer) renderSlide(state ViewState, width, height int) []string {
	if height <= 0 {
		return nil
	}
	slide := state.Deck.Slide(state.Indicators.Active)
	if slide == nil {
		return nil
	}

	hpad := r.styles.Slide.GetHorizontalPadding()
	body := r.slideRender.Render(slide, width-hpad)
	body = r.styles.Slide.Render(body)

	shift := ""
	if state.Offset > 0 {
		shift = strings.Repeat(" ", state.Offset)
	}
	clip := lipgloss.NewStyle().MaxWidth(width)

	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = clip.Render(shift + line)
	}
	return lines
}

// RenderDots renders one dot per slide with exactly one active
func (r *Renderer) RenderDots(ind Indicators) string {
	dots := make([]string, ind.Total)
	for i := range dots {
		if i+1 == ind.Active {
			dots[i] = r.styles.DotActive.Render("●")
		} else {
			dots[i] = r.styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (r *Renderer) renderFooter(ind Indicators, layout Layout) string {
	prevStyle, nextStyle := r.styles.Button, r.styles.Button
	if ind.PrevDisabled {
		prevStyle = r.styles.ButtonDisabled
	}
	if ind.NextDisabled {
		nextStyle = r.styles.ButtonDisabled
	}

	var b strings.Builder
	b.WriteString(prevStyle.Render(PrevLabel))
	x := labelWidth
	if layout.DotsX >= 0 {
		b.WriteString(strings.Repeat(" ", layout.DotsX-x))
		b.WriteString(r.RenderDots(ind))
		x = layout.DotsX + ind.Total*dotStride - 1
	}
	if gap := layout.NextX - x; gap > 0 {
		b.WriteString(strings.Repeat(" ", gap))
	}
	b.WriteString(nextStyle.Render(NextLabel))
	return b.String()
}

func (r *Renderer) renderBottomLine(state ViewState, width int) string {
	var line string
	switch {
	case state.InputMode == "goto":
		line = r.styles.Prompt.Render(state.TextInput)
	case state.StatusMessage != "":
		if state.StatusIsError {
			line = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			line = r.styles.Status.Render(state.StatusMessage)
		}
	case state.KeyMap != nil:
		hm := state.HelpModel
		hm.Width = width
		line = hm.View(state.KeyMap)
	default:
		line = r.styles.Help.Render("Press ? for help")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// renderHelpContent renders the full key binding overview
func (r *Renderer) renderHelpContent(keys help.KeyMap) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("decknav Help"))
	b.WriteString("\n")

	if keys != nil {
		sections := []string{"Navigation", "View", "Other"}
		for i, group := range keys.FullHelp() {
			b.WriteString("\n")
			if i < len(sections) {
				b.WriteString(sectionStyle.Render(sections[i]))
				b.WriteString("\n")
			}
			for _, binding := range group {
				if !binding.Enabled() {
					continue
				}
				h := binding.Help()
				b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Mouse"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("click"), descStyle.Render("Prev/Next buttons and slide dots")))
	b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("drag"), descStyle.Render("Swipe left for next, right for previous")))

	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Press ? or Esc to close"))
	return b.String()
}
