package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"decknav/internal/config"
	"decknav/internal/deck"
	"decknav/internal/domain"
	"decknav/internal/eventbus"
	"decknav/internal/ui/input"
	inputtypes "decknav/internal/ui/input/types"
	"decknav/internal/ui/motion"
	"decknav/internal/ui/services/navigation"
	"decknav/internal/ui/views"
)

const (
	tickInterval  = 80 * time.Millisecond
	statusTimeout = 3 * time.Second
	slideShift    = 12 // cells the slide body travels while sliding in
)

// Options are the runtime settings that do not live in the config file
type Options struct {
	AltScreen bool        // the program starts on the alternate screen
	Motion    *motion.Env // nil means the host environment
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	deck   *domain.Deck

	width    int
	height   int
	help     help.Model
	showHelp bool

	statusMessage string
	statusIsError bool
	inPagerMode   bool // tracks if we're currently in pager mode
	blurred       bool // the terminal reported focus loss
	ticking       bool

	nav          *navigation.Service
	display      *views.Display
	screen       *AltScreen
	router       *input.Router
	inputHandler *input.Handler
	renderer     *views.Renderer
	now          func() time.Time

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model for d
func NewModel(bus eventbus.EventBus, cfg *config.Config, d *domain.Deck, opts Options) (*Model, error) {
	nav, err := navigation.NewService(d.Len(), bus)
	if err != nil {
		return nil, err
	}

	env := motion.HostEnv()
	if opts.Motion != nil {
		env = *opts.Motion
	}
	reduced := cfg.UISettings.ReducedMotion || env.PrefersReducedMotion()
	configured := time.Duration(cfg.UISettings.TransitionMillis) * time.Millisecond
	transition := motion.NewTransition(motion.Duration(configured, reduced))
	if reduced {
		slog.Debug("reduced motion enabled")
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		deck:         d,
		help:         help.New(),
		nav:          nav,
		display:      views.NewDisplay(d.Len(), transition),
		screen:       NewAltScreen(bus, opts.AltScreen),
		inputHandler: input.New(cfg.UISettings.SwipeMinDistance),
		renderer:     views.NewRenderer(),
		now:          time.Now,
	}
	nav.Attach(m.display)
	m.router = input.NewRouter(nav, m.screen)

	if cfg.StartSlide > 1 {
		if _, ok := nav.GoTo(cfg.StartSlide); !ok {
			slog.Warn("start slide out of range", "start", cfg.StartSlide, "total", nav.Total())
		}
	}

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Navigator returns the navigation service driving this model
func (m *Model) Navigator() *navigation.Service {
	return m.nav
}

// Init starts the image checks and, when the deck opens mid-transition,
// the animation ticks
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.preloadImages(), m.startTick())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.blurred = true
		return m, nil

	case tea.FocusMsg:
		m.blurred = false
		return m, m.startTick()

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{Navigator: m.nav}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if m.inPagerMode || !m.config.UISettings.Mouse {
			return m, nil
		}

		layout := views.ComputeLayout(m.width, m.height, m.nav.Total(), m.config.UISettings.ShowDots)
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleMouse(msg, layout) {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonInputMsg(msg)
	}
}

// processAction processes an action from the input handler. Navigation
// inputs go through the router; the rest are UI concerns handled here.
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	slog.Debug("processAction", "action", action.Type())

	outcome, cmd := m.router.Route(action)
	if outcome.Handled {
		if goTo, ok := action.(inputtypes.GoToAction); ok && !outcome.Changed {
			return m.setStatus(fmt.Sprintf("No slide %d (1-%d)", goTo.Slide, m.nav.Total()), true)
		}
		if outcome.Changed {
			return tea.Batch(cmd, m.startTick())
		}
		return cmd
	}

	switch a := action.(type) {
	case inputtypes.ShowHelpAction:
		m.showHelp = a.Visible

	case inputtypes.OpenOutlineAction:
		return m.openOutline()

	case inputtypes.CancelTextAction:
		m.statusMessage = ""

	case inputtypes.QuitAction:
		slog.Info("quit", "slide", m.nav.Current(), "force", a.Force)
		return tea.Quit
	}

	return nil
}

// handleNonInputMsg handles messages that did not come from the user
func (m *Model) handleNonInputMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ticking = false
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		return m, m.startTick()

	case imagesPreloadedMsg:
		if msg.err != nil {
			slog.Error("image preload failed", "error", msg.err)
			m.publish(eventbus.ErrorEvent{Message: "image preload failed", Err: msg.err})
			return m, nil
		}
		m.deck = msg.deck
		m.publish(eventbus.ImagesPreloadedEvent{
			Loaded:  msg.summary.Loaded,
			Missing: msg.summary.Missing,
			Remote:  msg.summary.Remote,
		})
		if msg.summary.Missing > 0 {
			return m, m.setStatus(fmt.Sprintf("%d image(s) not available", msg.summary.Missing), true)
		}
		return m, nil

	case outlinePagerMsg:
		if msg.err != nil {
			slog.Error("outline pager failed", "error", msg.err)
			return m, m.setStatus(fmt.Sprintf("Outline failed: %v", msg.err), true)
		}
		return m, nil

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus(e.Message, true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		// input that began before the pager opened is stale
		m.inputHandler.Reset()
		m.showHelp = false
		return m, m.startTick()

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Deck:          m.deck,
		Indicators:    m.display.Indicators(),
		Offset:        m.display.Transition().Offset(m.now(), slideShift),
		ShowProgress:  m.config.UISettings.ShowProgress,
		ShowDots:      m.config.UISettings.ShowDots,
		ShowHelp:      m.showHelp,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		HelpModel:     m.help,
		KeyMap:        m.inputHandler.KeyMap(),
	}
	if m.inputHandler.CurrentMode() == inputtypes.ModeGoto {
		state.InputMode = "goto"
		if ti := m.inputHandler.TextInput(); ti != nil {
			state.TextInput = ti.View()
		}
	}

	return m.renderer.Render(state)
}

// startTick schedules the next animation frame while the transition runs.
// At most one tick is in flight, and none while the terminal is unfocused.
func (m *Model) startTick() tea.Cmd {
	if m.ticking || m.blurred || !m.display.Transition().Running(m.now()) {
		return nil
	}
	m.ticking = true
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// setStatus shows a message on the bottom line and clears it later
func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusMessage = message
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// preloadImages checks the deck's images on a copy, off the UI goroutine
func (m *Model) preloadImages() tea.Cmd {
	if !hasImages(m.deck) {
		return nil
	}
	workers := m.config.UISettings.PreloadWorkers
	working := m.deck.Clone()
	return func() tea.Msg {
		summary, err := deck.Preload(context.Background(), working, workers)
		return imagesPreloadedMsg{deck: working, summary: summary, err: err}
	}
}

func hasImages(d *domain.Deck) bool {
	for _, s := range d.Slides {
		if len(s.Images) > 0 {
			return true
		}
	}
	return false
}

// openOutline returns a command that shows the slide outline in the pager
func (m *Model) openOutline() tea.Cmd {
	if m.program == nil {
		return m.setStatus("Outline unavailable", true)
	}
	content := OutlineContent(m.deck, m.nav.Current())
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return outlinePagerMsg{err: err}
	}
}
