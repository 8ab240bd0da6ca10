// Command demo runs a minimal application on the psygo runtime: a bouncing
// box driven by fixed updates, rendered with interpolation, and controlled
// through action bindings.
package main

import (
	"embed"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/blomq/psygo/internal/config"
	"github.com/blomq/psygo/internal/input"
	"github.com/blomq/psygo/internal/platform/eb"
	"github.com/blomq/psygo/internal/psyrand"
	"github.com/blomq/psygo/internal/runtime"
	"github.com/blomq/psygo/internal/state"
)

//go:embed configs
var configFS embed.FS

var colorBG = color.RGBA{26, 26, 46, 255}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var seed uint64

	cmd := &cobra.Command{
		Use:          "demo",
		Short:        "Bouncing-box demo for the psygo runtime",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, seed)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a runtime YAML config (default: embedded config)")
	cmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "seed for the demo's randomness")
	return cmd
}

func run(configPath string, seed uint64) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	registry := input.NewRegistry()
	registry.SetHoldThreshold(time.Duration(cfg.Input.HoldThreshold * float64(time.Second)))
	actions := input.NewActionMap(registry)
	stack := state.NewStack()

	surface := eb.NewSurface(cfg.Window.Width, cfg.Window.Height, colorBG)
	source := eb.NewSource()

	loop := runtime.New(runtime.Config{
		FixedUpdateFrequency:   cfg.Loop.FixedUpdateFrequency,
		MaxFixedUpdatesPerTick: cfg.Loop.MaxFixedUpdatesPerTick,
		MaxFrameTime:           cfg.Loop.MaxFrameTime,
	}, runtime.Deps{
		Surface:    surface,
		Events:     source,
		Input:      registry,
		Dispatcher: stack,
		Log:        logger,
	})

	demo := newDemoState(loop, actions, psyrand.New(seed),
		float64(cfg.Window.Width), float64(cfg.Window.Height))
	if err := stack.Push(demo); err != nil {
		return err
	}

	logger.Info("starting demo",
		"fixedHz", cfg.Loop.FixedUpdateFrequency,
		"window", cfg.Window.Title,
		"seed", seed)

	return eb.Run(cfg.Window, eb.NewGame(loop, surface, cfg.Window.Width, cfg.Window.Height))
}

// loadConfig reads the config from path, or from the embedded default when
// no path is given.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		dir, file := filepath.Split(path)
		if dir == "" {
			dir = "."
		}
		return config.NewLoader(dir).Load(file)
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return config.Config{}, err
	}
	return config.NewFSLoader(fsys).Load("runtime.yaml")
}
