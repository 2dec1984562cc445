package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"decknav/internal/config"
	"decknav/internal/deck"
	"decknav/internal/eventbus"
	"decknav/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

const logFileName = "decknav.log"

var (
	cfgFile       string
	startSlide    int
	noMouse       bool
	reducedMotion bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "decknav [deck.md]",
	Short: "Present a Markdown slide deck in the terminal",
	Long: `decknav shows a Markdown file as a slideshow. Slides are separated by
thematic breaks (---). Navigate with the arrow keys, space, Home and End,
click the Prev/Next buttons or the slide dots, or drag the mouse
sideways to swipe.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := ""
		if len(args) > 0 {
			deckPath = args[0]
		}
		return runPresentation(cmd, deckPath)
	},
}

var outlineCmd = &cobra.Command{
	Use:   "outline deck.md|pattern...",
	Short: "Print the slide titles of decks and check their images",
	Long: `Print the slide titles of each deck and check that its local images
exist. Arguments may be glob patterns such as "talks/**/*.md".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := expandDeckArgs(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, path := range paths {
			d, err := deck.Load(path)
			if err != nil {
				return err
			}

			summary, err := deck.Preload(cmd.Context(), d, config.DefaultConfig().UISettings.PreloadWorkers)
			if err != nil {
				return fmt.Errorf("checking images: %w", err)
			}

			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, ui.OutlineContent(d, 0))
			fmt.Fprintf(out, "\n%d slides, images: %d loaded, %d missing, %d remote\n",
				d.Len(), summary.Loaded, summary.Missing, summary.Remote)
		}
		return nil
	},
}

// expandDeckArgs expands glob patterns. An argument that matches nothing
// is kept as is so loading it reports the real error.
func expandDeckArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of decknav",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "decknav %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default <deck dir>/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().IntVarP(&startSlide, "start", "s", 1, "slide to open first")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse clicks and swipes")
	rootCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "disable slide transitions")

	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the default slog logger to the log file. The TUI owns
// the terminal, so nothing is logged to stdout.
func setupLogging(verbose bool) (*os.File, error) {
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	// one id per run so sessions can be told apart in the shared log file
	slog.SetDefault(logger.With("session", uuid.NewString()))
	return logFile, nil
}

func runPresentation(cmd *cobra.Command, deckPath string) error {
	logFile, err := setupLogging(verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle termination signals; ctrl+c arrives as a key while the TUI runs
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigService(bus)
	cfg, configPath, err := loadConfig(configSvc, deckPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}
	if deckPath == "" {
		deckPath = cfg.Deck
	}
	if deckPath == "" {
		return fmt.Errorf("no deck given: pass a file, set DECKNAV_DECK, or add deck to %s", configPath)
	}
	applyFlags(cmd, cfg)

	d, err := deck.Load(deckPath)
	if err != nil {
		return err
	}
	slog.Info("deck loaded", "path", d.Path, "slides", d.Len(), "config", configPath)
	bus.Publish(eventbus.DeckLoadedEvent{Path: d.Path, Slides: d.Len()})

	model, err := ui.NewModel(bus, cfg, d, ui.Options{AltScreen: true})
	if err != nil {
		return fmt.Errorf("starting presentation: %w", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx), tea.WithReportFocus()}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	subscribeSessionLog(bus, p)

	if os.Getenv("DECKNAV_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("program failed", "error", err)
		return fmt.Errorf("running program: %w", err)
	}
	slog.Info("presentation ended", "slide", model.Navigator().Current())
	return nil
}

// loadConfig resolves the config file for the deck and loads it, creating
// it with defaults if missing. A broken config file is logged and replaced
// by defaults for this run.
func loadConfig(configSvc config.ConfigService, deckPath string) (*config.Config, string, error) {
	configPath := cfgFile
	if configPath == "" {
		if deckPath == "" {
			configPath = config.FileName
		} else {
			configPath = config.PathForDeck(deckPath)
		}
	}

	if deckPath == "" {
		// Without a deck the config must name one, or DECKNAV_DECK must
		cfg, err := configSvc.LoadFromPath(configPath)
		if errors.Is(err, os.ErrNotExist) {
			return config.DefaultConfig(), configPath, nil
		}
		if err != nil {
			return nil, configPath, fmt.Errorf("loading config: %w", err)
		}
		return cfg, configPath, nil
	}

	cfg, err := configSvc.LoadOrCreate(configPath)
	if err != nil {
		slog.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultConfig()
	}
	return cfg, configPath, nil
}

// applyFlags lets explicit command line flags override the config file
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.StartSlide = startSlide
	}
	if noMouse {
		cfg.UISettings.Mouse = false
	}
	if reducedMotion {
		cfg.UISettings.ReducedMotion = true
	}
}

// subscribeSessionLog records the session in the log file and forwards
// errors to the UI
func subscribeSessionLog(bus eventbus.EventBus, p *tea.Program) {
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SlideChangedEvent); ok {
			slog.Info("slide changed", "from", event.PreviousIndex, "to", event.NewIndex, "total", event.TotalSlides)
		}
	})
	bus.Subscribe(eventbus.EventFullscreenToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FullscreenToggledEvent); ok {
			slog.Info("fullscreen toggled", "fullscreen", event.Fullscreen)
		}
	})
	bus.Subscribe(eventbus.EventImagesPreloaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ImagesPreloadedEvent); ok {
			slog.Info("images checked", "loaded", event.Loaded, "missing", event.Missing, "remote", event.Remote)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			slog.Info("config saved", "path", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
}
