package config

import "time"

// Config is the top-level configuration for the nudle front end.
type Config struct {
	Version  string        `yaml:"version" validate:"required,semver"`
	StartURL string        `yaml:"start_url" validate:"required,route"`
	Brand    string        `yaml:"brand" validate:"required,brand"`
	Theme    ThemeConfig   `yaml:"theme"`
	Loading  LoadingConfig `yaml:"loading"`
	Logging  LoggingConfig `yaml:"logging"`
}

// ThemeConfig controls the initial theme and where the preference is persisted.
type ThemeConfig struct {
	Default      string `yaml:"default" validate:"required,oneof=light dark auto"`
	File         string `yaml:"file"`
	Watch        bool   `yaml:"watch"`
	UnicodeIcons bool   `yaml:"unicode_icons"`
}

// LoadingConfig tunes the loading boundary animation and the simulated
// latency of query parameter resolution.
type LoadingConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval" validate:"min=10ms"`
	ResolveDelay  time.Duration `yaml:"resolve_delay" validate:"min=0"`
	BarWidth      int           `yaml:"bar_width" validate:"min=5,max=120"`
}

// LoggingConfig controls the log file written while the UI owns the terminal.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File          string `yaml:"file"`
	HumanReadable bool   `yaml:"human_readable"`
}
