// Package config carries the fixed layout constants and the optional
// user settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1280
	WindowHeight = 900

	// Horizontal anchor of the current item's bar.
	CameraMarginX = 180

	// Height of the footer band under the axis.
	FooterHeight = 100

	// Text sizes in pixels.
	NameTextSize  = 16
	ValueTextSize = 18
	LabelTextSize = 14

	// Reveal chime defaults.
	ChimeFreq     = 660
	ChimeMillis   = 120
	ChimeSampleHz = 44100
)

// Settings is the YAML-backed user configuration. Zero values fall back
// to defaults at load time.
type Settings struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	DataFile     string `yaml:"data_file"`
	Chime        bool   `yaml:"chime"`
	ChimeFreq    int    `yaml:"chime_freq"`
	Debug        bool   `yaml:"debug"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		ChimeFreq:    ChimeFreq,
	}
}

// Load reads settings from path. A missing file yields defaults; a
// corrupt one is an error so the caller can report it and continue with
// defaults. An empty path skips the file entirely.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("decode %s: %w", path, err)
	}
	s.fillDefaults()
	return s, nil
}

func (s *Settings) fillDefaults() {
	if s.WindowWidth <= 0 {
		s.WindowWidth = WindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = WindowHeight
	}
	if s.ChimeFreq <= 0 {
		s.ChimeFreq = ChimeFreq
	}
}
