package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/anchorsheet/pkg/anchor"
	"github.com/go-drift/anchorsheet/pkg/animation"
	"github.com/go-drift/anchorsheet/pkg/sheet"
)

// FileName is the optional configuration file looked up in the config directory.
const FileName = "anchorsheet.yaml"

const (
	// DefaultViewportHeight is used by replay when neither the config nor the
	// script set a viewport.
	DefaultViewportHeight = 800
	// DefaultFPS is the demo frame rate.
	DefaultFPS = 60
	maxFPS     = 240
)

// Config represents the optional anchorsheet.yaml configuration.
type Config struct {
	Sheet    SheetConfig    `yaml:"sheet"`
	Viewport ViewportConfig `yaml:"viewport"`
	Demo     DemoConfig     `yaml:"demo"`
}

// SheetConfig selects the stops and the settle spring.
type SheetConfig struct {
	Key string `yaml:"key,omitempty"`
	// Stops are fixed stop heights. When empty the sheet uses anchors.
	Stops  []float64    `yaml:"stops,omitempty"`
	Spring SpringConfig `yaml:"spring,omitempty"`
	// FadeMillis is the main-content fade duration.
	FadeMillis int `yaml:"fade_ms,omitempty"`
}

// SpringConfig describes the settle spring.
type SpringConfig struct {
	Response float64 `yaml:"response,omitempty"`
	Damping  float64 `yaml:"damping,omitempty"`
}

// ViewportConfig is the replay viewport. The demo uses the terminal size.
type ViewportConfig struct {
	Height      float64 `yaml:"height,omitempty"`
	BottomInset float64 `yaml:"bottom_inset,omitempty"`
}

// DemoConfig contains terminal demo settings.
type DemoConfig struct {
	FPS int `yaml:"fps,omitempty"`
	// Anchors selects when anchor markers are drawn: never, always, debug,
	// simulator or simulator_and_debug.
	Anchors string `yaml:"anchors,omitempty"`
	Debug   bool   `yaml:"debug,omitempty"`
}

// Resolved contains validated configuration with defaults applied.
type Resolved struct {
	Root     string
	Sheet    sheet.Config
	Viewport sheet.Viewport

	FPS              int
	AnchorVisibility anchor.Visibility
	Environment      anchor.Environment
}

// LoadOptional reads anchorsheet.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads anchorsheet.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve validates cfg and applies defaults.
func (cfg *Config) Resolve(dir string) (*Resolved, error) {
	key := anchor.Key(strings.TrimSpace(cfg.Sheet.Key))

	for i, stop := range cfg.Sheet.Stops {
		if math.IsNaN(stop) || math.IsInf(stop, 0) || stop < 0 {
			return nil, fmt.Errorf("sheet.stops[%d] must be a non-negative height (got %v)", i, stop)
		}
	}

	var sc sheet.Config
	if len(cfg.Sheet.Stops) > 0 {
		sc = sheet.WithStops(cfg.Sheet.Stops...)
		if key != "" {
			sc.Key = key
		}
	} else {
		sc = sheet.WithAnchors(key)
	}

	spring, err := resolveSpring(cfg.Sheet.Spring)
	if err != nil {
		return nil, err
	}
	sc.Spring = spring

	if cfg.Sheet.FadeMillis < 0 {
		return nil, fmt.Errorf("sheet.fade_ms cannot be negative (got %d)", cfg.Sheet.FadeMillis)
	}
	if cfg.Sheet.FadeMillis > 0 {
		sc.FadeDuration = time.Duration(cfg.Sheet.FadeMillis) * time.Millisecond
	}

	vp := sheet.Viewport{Height: cfg.Viewport.Height, BottomInset: cfg.Viewport.BottomInset}
	if vp.Height < 0 || vp.BottomInset < 0 {
		return nil, fmt.Errorf("viewport dimensions cannot be negative (height %v, bottom_inset %v)", vp.Height, vp.BottomInset)
	}
	if vp.Height == 0 {
		vp.Height = DefaultViewportHeight
	}

	fps := cfg.Demo.FPS
	if fps == 0 {
		fps = DefaultFPS
	}
	if fps < 1 || fps > maxFPS {
		return nil, fmt.Errorf("demo.fps must be between 1 and %d (got %d)", maxFPS, fps)
	}

	visibility, err := ParseVisibility(cfg.Demo.Anchors)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:             dir,
		Sheet:            sc,
		Viewport:         vp,
		FPS:              fps,
		AnchorVisibility: visibility,
		Environment:      anchor.Environment{Debug: cfg.Demo.Debug},
	}, nil
}

// ParseVisibility converts a demo.anchors value. Empty means never.
func ParseVisibility(s string) (anchor.Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "never":
		return anchor.VisibilityNever, nil
	case "always":
		return anchor.VisibilityAlways, nil
	case "debug":
		return anchor.VisibilityDebug, nil
	case "simulator":
		return anchor.VisibilitySimulator, nil
	case "simulator_and_debug":
		return anchor.VisibilitySimulatorAndDebug, nil
	}
	return anchor.VisibilityNever, fmt.Errorf("demo.anchors must be one of never, always, debug, simulator, simulator_and_debug (got %q)", s)
}

func resolveSpring(sc SpringConfig) (animation.SpringDescription, error) {
	spring := animation.DefaultSpring()
	if sc.Response < 0 || sc.Damping < 0 {
		return spring, fmt.Errorf("sheet.spring values must be positive (response %v, damping %v)", sc.Response, sc.Damping)
	}
	if sc.Response > 0 {
		spring.Response = sc.Response
	}
	if sc.Damping > 0 {
		spring.DampingFraction = sc.Damping
	}
	return spring, nil
}
