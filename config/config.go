// Package config loads, validates, and persists the user-facing smoothing
// settings, and watches the settings file for live edits.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed settings.yaml
var defaultYAML []byte

// Allowed ranges. Values outside are clamped by Validate, not rejected.
const (
	MinSpeed    = 0.1
	MaxSpeed    = 25.0
	MinZoomStep = 1.01
	MaxZoomStep = 1.5
)

// Settings is the user preference snapshot the animation core runs on.
type Settings struct {
	EnableZoom bool    `yaml:"enable_zoom"`
	ZoomSpeed  float64 `yaml:"zoom_speed"`
	ZoomStep   float64 `yaml:"zoom_step"`
	EnablePan  bool    `yaml:"enable_pan"`
	PanSpeed   float64 `yaml:"pan_speed"`
}

// Default returns the embedded default settings.
func Default() Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		// the embedded file is part of the build; failing to parse it is a bug
		panic(fmt.Sprintf("config: embedded settings.yaml: %v", err))
	}
	return s
}

// Load reads settings from path. A missing file yields the defaults; any
// other failure is returned. The result is always validated.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s := Default()
		s.Validate()
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	s.Validate()
	return s, nil
}

// Save writes settings to path as yaml.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate clamps out-of-range values into their allowed ranges and returns
// a description of each adjustment made.
func (s *Settings) Validate() []string {
	var fixes []string
	clampF := func(name string, v *float64, lo, hi float64) {
		orig := *v
		if *v < lo {
			*v = lo
		}
		if *v > hi {
			*v = hi
		}
		if *v != orig {
			fixes = append(fixes, fmt.Sprintf("%s %g clamped to %g", name, orig, *v))
		}
	}
	clampF("zoom_speed", &s.ZoomSpeed, MinSpeed, MaxSpeed)
	clampF("pan_speed", &s.PanSpeed, MinSpeed, MaxSpeed)
	clampF("zoom_step", &s.ZoomStep, MinZoomStep, MaxZoomStep)
	return fixes
}
