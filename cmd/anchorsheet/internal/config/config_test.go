package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/anchorsheet/pkg/anchor"
	"github.com/go-drift/anchorsheet/pkg/animation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !r.Sheet.UseAnchors || r.Sheet.Key != anchor.DefaultKey {
		t.Errorf("Sheet = %+v, want anchors under the default key", r.Sheet)
	}
	if r.Sheet.Spring != animation.DefaultSpring() {
		t.Errorf("Spring = %+v, want default", r.Sheet.Spring)
	}
	if r.Viewport.Height != DefaultViewportHeight {
		t.Errorf("Viewport.Height = %v, want %v", r.Viewport.Height, DefaultViewportHeight)
	}
	if r.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", r.FPS, DefaultFPS)
	}
	if r.AnchorVisibility != anchor.VisibilityNever {
		t.Errorf("AnchorVisibility = %v, want never", r.AnchorVisibility)
	}
	if r.Root != dir {
		t.Errorf("Root = %q, want %q", r.Root, dir)
	}
}

func TestResolveFile(t *testing.T) {
	dir := writeConfig(t, `
sheet:
  key: places
  stops: [120, 320]
  spring: {response: 0.4, damping: 0.9}
  fade_ms: 200
viewport: {height: 640, bottom_inset: 34}
demo: {fps: 30, anchors: debug, debug: true}
`)
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Sheet.UseAnchors {
		t.Error("fixed stops should disable anchors")
	}
	if r.Sheet.Key != "places" {
		t.Errorf("Key = %q, want places", r.Sheet.Key)
	}
	if len(r.Sheet.Stops) != 2 || r.Sheet.Stops[0] != 120 || r.Sheet.Stops[1] != 320 {
		t.Errorf("Stops = %v, want [120 320]", r.Sheet.Stops)
	}
	if r.Sheet.Spring.Response != 0.4 || r.Sheet.Spring.DampingFraction != 0.9 {
		t.Errorf("Spring = %+v", r.Sheet.Spring)
	}
	if r.Sheet.FadeDuration != 200*time.Millisecond {
		t.Errorf("FadeDuration = %v, want 200ms", r.Sheet.FadeDuration)
	}
	if r.Viewport.Height != 640 || r.Viewport.BottomInset != 34 {
		t.Errorf("Viewport = %+v", r.Viewport)
	}
	if r.FPS != 30 {
		t.Errorf("FPS = %d, want 30", r.FPS)
	}
	if r.AnchorVisibility != anchor.VisibilityDebug || !r.AnchorVisibility.Visible(r.Environment) {
		t.Errorf("anchor markers should be visible in debug: %v %+v", r.AnchorVisibility, r.Environment)
	}
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"negative stop", "sheet: {stops: [100, -1]}", "sheet.stops[1]"},
		{"negative spring", "sheet: {spring: {response: -1}}", "sheet.spring"},
		{"negative fade", "sheet: {fade_ms: -5}", "sheet.fade_ms"},
		{"negative viewport", "viewport: {height: -10}", "viewport"},
		{"fps too high", "demo: {fps: 1000}", "demo.fps"},
		{"unknown visibility", "demo: {anchors: sometimes}", "demo.anchors"},
		{"malformed yaml", "sheet: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Resolve() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseVisibility(t *testing.T) {
	tests := map[string]anchor.Visibility{
		"":                    anchor.VisibilityNever,
		"Never":               anchor.VisibilityNever,
		"always":              anchor.VisibilityAlways,
		" debug ":             anchor.VisibilityDebug,
		"simulator":           anchor.VisibilitySimulator,
		"simulator_and_debug": anchor.VisibilitySimulatorAndDebug,
	}
	for in, want := range tests {
		got, err := ParseVisibility(in)
		if err != nil {
			t.Errorf("ParseVisibility(%q) error = %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseVisibility(%q) = %v, want %v", in, got, want)
		}
	}
}
