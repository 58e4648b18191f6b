package config

// Config is folio's runtime configuration.
type Config struct {
	// Profile is a YAML profile file. Empty uses the built-in profile.
	Profile string `koanf:"profile" yaml:"profile"`

	// PublicationsDir holds one markdown file per publication.
	PublicationsDir string `koanf:"publications_dir" yaml:"publications_dir"`

	// PrefsFile persists the theme between sessions.
	PrefsFile string `koanf:"prefs_file" yaml:"prefs_file"`

	Theme   ThemeConfig   `koanf:"theme" yaml:"theme"`
	Tracker TrackerConfig `koanf:"tracker" yaml:"tracker"`
	Layout  LayoutConfig  `koanf:"layout" yaml:"layout"`
	Log     LogConfig     `koanf:"log" yaml:"log"`
	Serve   ServeConfig   `koanf:"serve" yaml:"serve"`
}

// ThemeConfig controls the theme store.
type ThemeConfig struct {
	// Key is the preference key holding the mode token.
	Key string `koanf:"key" yaml:"key"`
	// Scheme forces the host preference: auto, light or dark.
	Scheme string `koanf:"scheme" yaml:"scheme"`
}

// TrackerConfig controls active-section tracking, in terminal lines.
type TrackerConfig struct {
	ReferenceOffset   int `koanf:"reference_offset" yaml:"reference_offset"`
	ScrolledThreshold int `koanf:"scrolled_threshold" yaml:"scrolled_threshold"`
}

// LayoutConfig controls the terminal layout.
type LayoutConfig struct {
	// NarrowWidth is the terminal width below which the nav bar collapses
	// into a drawer.
	NarrowWidth int `koanf:"narrow_width" yaml:"narrow_width"`
}

// LogConfig controls logging.
type LogConfig struct {
	File  string `koanf:"file" yaml:"file"`
	Level string `koanf:"level" yaml:"level"`
}

// ServeConfig controls the HTTP rendition.
type ServeConfig struct {
	Addr string `koanf:"addr" yaml:"addr"`
	// AllowedOrigins enables CORS for these origins.
	AllowedOrigins []string `koanf:"allowed_origins" yaml:"allowed_origins"`
}
