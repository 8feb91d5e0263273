package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/pagescroll/internal/deck"
	"github.com/llehouerou/pagescroll/internal/easing"
)

// Defaults applied when a setting is absent.
const (
	DefaultEasing     = easing.EaseInOut
	DefaultDurationMS = 600
	DefaultFrameRate  = 60
	maxFrameRate      = 240
)

type Config struct {
	Deck DeckConfig `koanf:"deck"`
	UI   UIConfig   `koanf:"ui"`
	Log  LogConfig  `koanf:"log"`
}

// DeckConfig holds navigation and animation settings.
type DeckConfig struct {
	Easing              string `koanf:"easing"`                  // one of the easing kinds (default: easeInOut)
	DurationMS          int    `koanf:"duration_ms"`             // transition duration (default: 600)
	SlideClass          string `koanf:"slide_class"`             // slides navigated (default: "slide")
	Loop                *bool  `koanf:"loop"`                    // wrap at both ends (default: true)
	Interpolated        bool   `koanf:"interpolated"`            // frame-by-frame backend
	LegacyEaseInOutQuad bool   `koanf:"legacy_ease_in_out_quad"` // historical easeInOutQuad formula
	FinishGraceMS       *int   `koanf:"finish_grace_ms"`         // timeout slack after duration (default: 50)
}

// UIConfig holds display settings.
type UIConfig struct {
	FrameRate  int    `koanf:"frame_rate"`  // animation frames per second (default: 60)
	CodeStyle  string `koanf:"code_style"`  // chroma style name
	ShowStatus *bool  `koanf:"show_status"` // status bar (default: true)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/pagescroll/pagescroll.log
}

var (
	errNegativeDuration = errors.New("duration_ms must not be negative")
	errNegativeGrace    = errors.New("finish_grace_ms must not be negative")
)

// Load reads the standard config locations, then extraPaths, later files
// overriding earlier ones. Missing files are skipped.
func Load(extraPaths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range append(getConfigPaths(), extraPaths...) {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/pagescroll/config.toml
		filepath.Join(xdg.ConfigHome, "pagescroll", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DeckConfig validates the [deck] section and converts it for the deck
// package.
func (c *Config) DeckConfig() (deck.Config, error) {
	d := c.Deck

	kind := DefaultEasing
	if d.Easing != "" {
		k, err := easing.ParseKind(d.Easing)
		if err != nil {
			return deck.Config{}, fmt.Errorf("deck.easing: %w", err)
		}
		kind = k
	}

	ms := d.DurationMS
	switch {
	case ms < 0:
		return deck.Config{}, fmt.Errorf("deck: %w", errNegativeDuration)
	case ms == 0:
		ms = DefaultDurationMS
	}

	selector := d.SlideClass
	if selector == "" {
		selector = deck.DefaultSelector
	}

	loop := true
	if d.Loop != nil {
		loop = *d.Loop
	}

	return deck.Config{
		Easing:       kind,
		Duration:     time.Duration(ms) * time.Millisecond,
		Selector:     selector,
		Loop:         loop,
		Interpolated: d.Interpolated,
	}, nil
}

// FinishGrace returns the declarative timeout slack. A negative value
// means the deck default.
func (c *Config) FinishGrace() (time.Duration, error) {
	if c.Deck.FinishGraceMS == nil {
		return -1, nil
	}
	if *c.Deck.FinishGraceMS < 0 {
		return 0, fmt.Errorf("deck: %w", errNegativeGrace)
	}
	return time.Duration(*c.Deck.FinishGraceMS) * time.Millisecond, nil
}

// Curves returns the easing library selected by the [deck] section.
func (c *Config) Curves() *easing.Library {
	if c.Deck.LegacyEaseInOutQuad {
		return easing.NewLibrary(easing.WithLegacyInOutQuad())
	}
	return easing.NewLibrary()
}

// FrameInterval returns the delay between animation frames.
func (c *Config) FrameInterval() time.Duration {
	fps := c.UI.FrameRate
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	fps = min(fps, maxFrameRate)
	return time.Second / time.Duration(fps)
}

// ShowStatus reports whether the status bar is drawn.
func (c *Config) ShowStatus() bool {
	return c.UI.ShowStatus == nil || *c.UI.ShowStatus
}
