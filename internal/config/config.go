// Package config handles satcheck configuration loading and management.
package config

import (
	"github.com/Faultbox/midgard-sat/pkg/collision"
)

// Config holds all settings.
type Config struct {
	Collision CollisionConfig `yaml:"collision"`
	Scene     SceneConfig     `yaml:"scene"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CollisionConfig holds overlap test settings.
type CollisionConfig struct {
	// ViewMode overrides the stage's own mode when set.
	ViewMode    string `yaml:"view_mode"`
	Sqrt        string `yaml:"sqrt"`         // "legacy" or "exact"
	PlanarDelta bool   `yaml:"planar_delta"` // ignore the excluded axis in 2D modes
}

// SceneConfig holds scene file settings.
type SceneConfig struct {
	Path  string `yaml:"path"`
	Stage string `yaml:"stage"` // stage name; empty selects the scene's current stage
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Collision: CollisionConfig{
			ViewMode:    "",
			Sqrt:        "legacy",
			PlanarDelta: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Checker builds the collision checker described by the config.
func (c CollisionConfig) Checker() (collision.Checker, error) {
	mode, err := collision.ParseSqrtMode(c.Sqrt)
	if err != nil {
		return collision.Checker{}, err
	}
	checker := collision.NewChecker(mode)
	checker.PlanarDelta = c.PlanarDelta
	return checker, nil
}

// Mode returns the configured view mode override, or ok=false if none is set.
func (c CollisionConfig) Mode() (mode collision.ViewMode, ok bool, err error) {
	if c.ViewMode == "" {
		return 0, false, nil
	}
	mode, err = collision.ParseViewMode(c.ViewMode)
	if err != nil {
		return 0, false, err
	}
	return mode, true, nil
}
