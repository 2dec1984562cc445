package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"decknav/internal/eventbus"
)

// FileName is the per-deck configuration file created next to the deck
const FileName = ".decknav.toml"

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Deck       string     `toml:"deck" env:"DECKNAV_DECK"`
	StartSlide int        `toml:"start_slide" env:"DECKNAV_START_SLIDE"`
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowProgress     bool `toml:"show_progress" env:"DECKNAV_SHOW_PROGRESS"`
	ShowDots         bool `toml:"show_dots" env:"DECKNAV_SHOW_DOTS"`
	Mouse            bool `toml:"mouse" env:"DECKNAV_MOUSE"`
	ReducedMotion    bool `toml:"reduced_motion" env:"DECKNAV_REDUCED_MOTION"`
	TransitionMillis int  `toml:"transition_ms" env:"DECKNAV_TRANSITION_MS"`
	SwipeMinDistance int  `toml:"swipe_min_distance" env:"DECKNAV_SWIPE_MIN_DISTANCE"` // terminal cells
	PreloadWorkers   int  `toml:"preload_workers" env:"DECKNAV_PRELOAD_WORKERS"`
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	LoadOrCreate(path string) (*Config, error)
}

// configService is the concrete implementation
type configService struct {
	bus eventbus.EventBus
}

// NewConfigService creates a new config service. bus may be nil.
func NewConfigService(bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus}
}

// PathForDeck returns the default config location for a deck file
func PathForDeck(deckPath string) string {
	return filepath.Join(filepath.Dir(deckPath), FileName)
}

// LoadFromPath loads configuration from a specific path. Fields missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

// LoadOrCreate loads the config at path, writing a default one first if
// the file does not exist yet
func (cs *configService) LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := cs.SaveToPath(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cs.LoadFromPath(path)
}

// normalize replaces out-of-range values with their defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.StartSlide < 1 {
		c.StartSlide = def.StartSlide
	}
	if c.UISettings.TransitionMillis < 0 {
		c.UISettings.TransitionMillis = def.UISettings.TransitionMillis
	}
	if c.UISettings.SwipeMinDistance <= 0 {
		c.UISettings.SwipeMinDistance = def.UISettings.SwipeMinDistance
	}
	if c.UISettings.PreloadWorkers <= 0 {
		c.UISettings.PreloadWorkers = def.UISettings.PreloadWorkers
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		StartSlide: 1,
		UISettings: UISettings{
			ShowProgress:     true,
			ShowDots:         true,
			Mouse:            true,
			TransitionMillis: 600,
			SwipeMinDistance: 8,
			PreloadWorkers:   4,
		},
	}
}
