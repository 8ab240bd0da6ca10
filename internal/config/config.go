// Package config loads the runtime configuration from YAML.
package config

// Config holds all runtime settings.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Loop   LoopConfig   `yaml:"loop"`
	Input  InputConfig  `yaml:"input"`
}

// WindowConfig describes the application window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
}

// LoopConfig holds the fixed-timestep loop parameters.
type LoopConfig struct {
	// FixedUpdateFrequency is the simulation rate in Hz.
	FixedUpdateFrequency int `yaml:"fixed_update_frequency"`
	// MaxFixedUpdatesPerTick caps catch-up steps within one frame.
	MaxFixedUpdatesPerTick int `yaml:"max_fixed_updates_per_tick"`
	// MaxFrameTime clamps the measured frame delta, in seconds.
	MaxFrameTime float64 `yaml:"max_frame_time"`
}

// InputConfig holds input tuning.
type InputConfig struct {
	// HoldThreshold separates a click from a hold, in seconds.
	HoldThreshold float64 `yaml:"hold_threshold"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "psygo",
			Width:  640,
			Height: 480,
			Scale:  1,
		},
		Loop: LoopConfig{
			FixedUpdateFrequency:   60,
			MaxFixedUpdatesPerTick: 10,
			MaxFrameTime:           1.0,
		},
		Input: InputConfig{
			HoldThreshold: 0.3,
		},
	}
}
