package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads runtime configuration from YAML files using the fs.FS
// interface. Fields missing from the file keep their defaults.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader rooted at a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader from an fs.FS (embedded configs,
// test filesystems).
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads and validates the named YAML file, applied on top of the
// defaults.
func (l *Loader) Load(name string) (Config, error) {
	cfg := Default()

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", name, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the runtime would reject.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("window scale must be at least 1, got %d", c.Window.Scale)
	}
	if c.Loop.FixedUpdateFrequency <= 0 {
		return fmt.Errorf("fixed_update_frequency must be positive, got %d", c.Loop.FixedUpdateFrequency)
	}
	if c.Loop.MaxFixedUpdatesPerTick < 1 {
		return fmt.Errorf("max_fixed_updates_per_tick must be at least 1, got %d", c.Loop.MaxFixedUpdatesPerTick)
	}
	if c.Loop.MaxFrameTime <= 0 {
		return fmt.Errorf("max_frame_time must be positive, got %v", c.Loop.MaxFrameTime)
	}
	if c.Input.HoldThreshold <= 0 {
		return fmt.Errorf("hold_threshold must be positive, got %v", c.Input.HoldThreshold)
	}
	return nil
}
