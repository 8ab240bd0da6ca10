package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"runtime.yaml": &fstest.MapFile{Data: []byte(`
window:
  title: Demo
  width: 320
  height: 240
  scale: 2
loop:
  fixed_update_frequency: 120
  max_fixed_updates_per_tick: 5
  max_frame_time: 0.5
input:
  hold_threshold: 0.25
`)},
	}

	cfg, err := NewFSLoader(fsys).Load("runtime.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, 240, cfg.Window.Height)
	assert.Equal(t, 2, cfg.Window.Scale)
	assert.Equal(t, 120, cfg.Loop.FixedUpdateFrequency)
	assert.Equal(t, 5, cfg.Loop.MaxFixedUpdatesPerTick)
	assert.Equal(t, 0.5, cfg.Loop.MaxFrameTime)
	assert.Equal(t, 0.25, cfg.Input.HoldThreshold)
}

func TestLoader_MissingFieldsKeepDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"runtime.yaml": &fstest.MapFile{Data: []byte(`
window:
  title: Sparse
`)},
	}

	cfg, err := NewFSLoader(fsys).Load("runtime.yaml")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "Sparse", cfg.Window.Title)
	assert.Equal(t, def.Window.Width, cfg.Window.Width)
	assert.Equal(t, def.Loop.FixedUpdateFrequency, cfg.Loop.FixedUpdateFrequency)
	assert.Equal(t, def.Input.HoldThreshold, cfg.Input.HoldThreshold)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}).Load("runtime.yaml")
	assert.Error(t, err)
}

func TestLoader_MalformedYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"runtime.yaml": &fstest.MapFile{Data: []byte("window: [not a mapping")},
	}
	_, err := NewFSLoader(fsys).Load("runtime.yaml")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frequency", func(c *Config) { c.Loop.FixedUpdateFrequency = 0 }},
		{"negative frequency", func(c *Config) { c.Loop.FixedUpdateFrequency = -60 }},
		{"zero max updates", func(c *Config) { c.Loop.MaxFixedUpdatesPerTick = 0 }},
		{"negative max frame time", func(c *Config) { c.Loop.MaxFrameTime = -1 }},
		{"zero hold threshold", func(c *Config) { c.Input.HoldThreshold = 0 }},
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
		{"zero window scale", func(c *Config) { c.Window.Scale = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
