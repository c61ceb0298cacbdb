package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/philipparndt/gobounds/internal/config"
	"github.com/philipparndt/gobounds/internal/logging"
	"github.com/philipparndt/gobounds/version"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *slog.Logger

	flagWorkers  int
	flagLogLevel string
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "gobounds",
	Short: "Axis-aligned bounding boxes for STL and OpenSCAD models",
	Long: `gobounds computes axis-aligned bounding boxes for triangle meshes.
It reports the box of a whole model or of each facet, together with the
center, extent and surface area used by BVH builders.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagWorkers, "workers", "w", 0, "Goroutines used to merge facet boxes (default from "+config.EnvWorkers+" or CPU count)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// setup loads configuration, applies flag overrides and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("workers") {
		if flagWorkers < 1 {
			return fmt.Errorf("--workers must be at least 1, got %d", flagWorkers)
		}
		loaded.Workers = flagWorkers
	}
	if flagLogLevel != "" {
		level, err := config.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		loaded.LogLevel = level
	}
	if flagNoColor {
		color.NoColor = true
	}

	cfg = loaded
	logger = logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel)
	logger.Debug("configuration", "workers", cfg.Workers, "debounce", cfg.Debounce, "openscad", cfg.OpenSCAD)
	return nil
}
