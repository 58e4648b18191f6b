package config

import (
	"path/filepath"

	"github.com/Josepavese/folio/internal/pkg/sysutil"
)

// folioHome is where folio keeps its files. Without a resolvable home
// directory it stays "~/.folio" and paths are used as given.
func folioHome() string {
	home, err := sysutil.FolioHome()
	if err != nil {
		return "~/.folio"
	}
	return home
}

// DefaultPath is the config file read when no --config is given.
func DefaultPath() string {
	return filepath.Join(folioHome(), "config.yaml")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	home := folioHome()
	return &Config{
		PrefsFile: filepath.Join(home, "prefs.yaml"),
		Theme: ThemeConfig{
			Key:    "theme",
			Scheme: "auto",
		},
		Tracker: TrackerConfig{
			ReferenceOffset:   2,
			ScrolledThreshold: 3,
		},
		Layout: LayoutConfig{
			NarrowWidth: 80,
		},
		Log: LogConfig{
			File:  filepath.Join(home, "folio.log"),
			Level: "info",
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}
