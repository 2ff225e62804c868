package sheet

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/anchorsheet/pkg/anchor"
	"github.com/go-drift/anchorsheet/pkg/animation"
	"github.com/go-drift/anchorsheet/pkg/errors"
)

// DefaultFadeDuration is the duration of the main-content fade.
const DefaultFadeDuration = 350 * time.Millisecond

// Config selects how a sheet finds its stops and how it animates.
type Config struct {
	// Key namespaces the anchor channel the sheet listens to.
	Key anchor.Key
	// UseAnchors selects anchor-derived stops over Stops.
	UseAnchors bool
	// Stops are fixed stop heights, used when UseAnchors is false.
	Stops []float64
	// Spring drives height and offset settling. Zero uses animation.DefaultSpring.
	Spring animation.SpringDescription
	// FadeDuration is the ease-in-out duration of the content fade.
	FadeDuration time.Duration
	// Controller receives snapshots and can drive the sheet. Optional.
	Controller *Controller
}

// WithAnchors returns a config whose stops come from anchors reported under key.
func WithAnchors(key anchor.Key) Config {
	if key == "" {
		key = anchor.DefaultKey
	}
	return Config{Key: key, UseAnchors: true}
}

// WithStops returns a config with fixed stops, in the order given.
func WithStops(stops ...float64) Config {
	return Config{Key: anchor.DefaultKey, Stops: stops}
}

// normalizeConfig fills in defaults and drops unusable fixed stops.
func normalizeConfig(cfg Config) Config {
	if cfg.Key == "" {
		cfg.Key = anchor.DefaultKey
	}
	if !cfg.Spring.Valid() {
		cfg.Spring = animation.DefaultSpring()
	}
	if cfg.FadeDuration <= 0 {
		cfg.FadeDuration = DefaultFadeDuration
	}
	stops := make([]float64, 0, len(cfg.Stops))
	for i, stop := range cfg.Stops {
		if !validHeight(stop) {
			errors.Report(&errors.SheetError{
				Op:   "sheet.New",
				Kind: errors.KindConfig,
				Key:  string(cfg.Key),
				Err:  fmt.Errorf("stop %d is not a usable height: %v", i, stop),
			})
			continue
		}
		stops = append(stops, stop)
	}
	cfg.Stops = stops
	return cfg
}

func validHeight(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
