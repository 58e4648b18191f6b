// Package config loads folio's configuration from a YAML file with FOLIO_*
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Josepavese/folio/internal/pkg/sysutil"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: FOLIO_TRACKER__REFERENCE_OFFSET=4.
const EnvPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		path = sysutil.ExpandHome(path)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func (c *Config) expandPaths() {
	c.Profile = sysutil.ExpandHome(c.Profile)
	c.PublicationsDir = sysutil.ExpandHome(c.PublicationsDir)
	c.PrefsFile = sysutil.ExpandHome(c.PrefsFile)
	c.Log.File = sysutil.ExpandHome(c.Log.File)
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := sysutil.WriteFileAtomic(sysutil.ExpandHome(path), data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validSchemes = map[string]bool{"auto": true, "light": true, "dark": true}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Theme.Key == "" {
		return fmt.Errorf("theme.key is required")
	}
	if !validSchemes[strings.ToLower(c.Theme.Scheme)] {
		return fmt.Errorf("invalid theme.scheme %q: must be one of auto, light, dark", c.Theme.Scheme)
	}
	if c.Tracker.ReferenceOffset < 0 {
		return fmt.Errorf("tracker.reference_offset must be non-negative")
	}
	if c.Tracker.ScrolledThreshold < 0 {
		return fmt.Errorf("tracker.scrolled_threshold must be non-negative")
	}
	if c.Layout.NarrowWidth < 0 {
		return fmt.Errorf("layout.narrow_width must be non-negative")
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	return nil
}
