// Package script loads replay scripts: YAML lists of measurement, drag,
// snap and frame events that drive a sheet without a terminal.
//
//	version: v1
//	viewport: {height: 800}
//	events:
//	  - header: 100
//	  - content: 2000
//	  - drag: {samples: [-20, -90, -180], velocity: -400}
//	  - tick: 90
package script

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/anchorsheet/pkg/errors"
)

// SupportedMajor is the script format major version this package reads.
const SupportedMajor = "v1"

// Script is a parsed replay script.
type Script struct {
	Version  string    `yaml:"version"`
	Viewport *Viewport `yaml:"viewport,omitempty"`
	Events   []Event   `yaml:"events"`
}

// Viewport overrides the configured replay viewport.
type Viewport struct {
	Height      float64 `yaml:"height"`
	BottomInset float64 `yaml:"bottom_inset,omitempty"`
}

// Event is one script step. Exactly one field must be set.
type Event struct {
	Header  *float64   `yaml:"header,omitempty"`
	Content *float64   `yaml:"content,omitempty"`
	Anchors *[]float64 `yaml:"anchors,omitempty"`
	Drag    *Drag      `yaml:"drag,omitempty"`
	Tick    *int       `yaml:"tick,omitempty"`
	Snap    *int       `yaml:"snap,omitempty"`
}

// Drag is a drag gesture given as translation samples. The last sample is
// the release point.
type Drag struct {
	Samples []float64 `yaml:"samples"`
	// PredictedEnd overrides the predicted end translation.
	PredictedEnd *float64 `yaml:"predicted_end,omitempty"`
	// Velocity at release, in units per second, used to predict the end
	// translation when PredictedEnd is not set.
	Velocity float64 `yaml:"velocity,omitempty"`
}

// Kind names the field set on e.
func (e Event) Kind() string {
	switch {
	case e.Header != nil:
		return "header"
	case e.Content != nil:
		return "content"
	case e.Anchors != nil:
		return "anchors"
	case e.Drag != nil:
		return "drag"
	case e.Tick != nil:
		return "tick"
	case e.Snap != nil:
		return "snap"
	}
	return ""
}

func (e Event) fieldCount() int {
	n := 0
	for _, set := range []bool{e.Header != nil, e.Content != nil, e.Anchors != nil, e.Drag != nil, e.Tick != nil, e.Snap != nil} {
		if set {
			n++
		}
	}
	return n
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a script. source names the script in errors.
func Parse(data []byte, source string) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	if err := s.validate(source); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate(source string) error {
	if !semver.IsValid(s.Version) {
		return &errors.ParseError{Source: source, Field: "version", Got: s.Version}
	}
	if semver.Major(s.Version) != SupportedMajor {
		return fmt.Errorf("%s: unsupported script version %s (want %s.x)", source, s.Version, SupportedMajor)
	}
	if s.Viewport != nil && s.Viewport.Height <= 0 {
		return &errors.ParseError{Source: source, Field: "viewport.height", Got: s.Viewport.Height}
	}
	for i, e := range s.Events {
		field := fmt.Sprintf("events[%d]", i)
		if n := e.fieldCount(); n != 1 {
			return &errors.ParseError{Source: source, Field: field, Got: fmt.Sprintf("%d event kinds", n)}
		}
		switch {
		case e.Drag != nil && len(e.Drag.Samples) == 0:
			return &errors.ParseError{Source: source, Field: field + ".drag.samples", Got: "none"}
		case e.Tick != nil && *e.Tick < 0:
			return &errors.ParseError{Source: source, Field: field + ".tick", Got: *e.Tick}
		}
	}
	return nil
}
