package config

import (
	"os"
	"path/filepath"
	"time"
)

const appDirName = "nudle"

// Default returns the configuration used when no file is present. Values
// read from a file are layered on top of it.
func Default() *Config {
	return &Config{
		Version:  "1.0.0",
		StartURL: "/",
		Brand:    "nudle",
		Theme: ThemeConfig{
			Default:      "auto",
			File:         defaultPath(os.UserConfigDir, "theme.yaml"),
			Watch:        true,
			UnicodeIcons: true,
		},
		Loading: LoadingConfig{
			FrameInterval: 120 * time.Millisecond,
			ResolveDelay:  250 * time.Millisecond,
			BarWidth:      30,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  defaultPath(os.UserCacheDir, "nudle.log"),
		},
	}
}

// DefaultPath returns the location of the configuration file when --config is not given.
func DefaultPath() string {
	return defaultPath(os.UserConfigDir, "config.yaml")
}

func defaultPath(base func() (string, error), name string) string {
	dir, err := base()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDirName, name)
}
