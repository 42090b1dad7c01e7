package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvandessel/seatsim/internal/config"
	"github.com/nvandessel/seatsim/internal/logging"
)

// addLayoutFlags registers the physical layout flags. Unset flags fall back
// to the loaded configuration.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().Int("seats", 0, "Total number of seats (default from config, 100)")
	cmd.Flags().String("columns", "", "Column labels of a row, e.g. ABCDEF (default from config)")
}

// addPlaneFlags registers the layout flags plus the passenger count.
func addPlaneFlags(cmd *cobra.Command) {
	cmd.Flags().Int("passengers", 0, "Number of passengers boarding (default from config, 100)")
	addLayoutFlags(cmd)
}

// addRunFlags registers the random source and estimation flags.
func addRunFlags(cmd *cobra.Command, estimation bool) {
	cmd.Flags().Uint64("seed", 0, "Random seed for reproducible output (0 for fresh entropy)")
	if estimation {
		cmd.Flags().Int("iterations", 0, "Number of boarding trials (default from config)")
		cmd.Flags().Int("workers", 0, "Goroutines sharing the trials (default from config)")
	}
}

// loadConfig is resolveConfig followed by full validation.
func loadConfig(cmd *cobra.Command) (*config.SeatsimConfig, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfig loads the configuration named by --config (or the default
// location) and applies any explicitly set command flags. It does not
// validate; callers that need only part of the config check that part.
func resolveConfig(cmd *cobra.Command) (*config.SeatsimConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path, _ = config.DefaultPath()
	}

	cfg, err := config.LoadPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("passengers") {
		cfg.Plane.Passengers, _ = flags.GetInt("passengers")
	}
	if flags.Changed("seats") {
		cfg.Plane.Seats, _ = flags.GetInt("seats")
	}
	if flags.Changed("columns") {
		cfg.Plane.Columns, _ = flags.GetString("columns")
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("iterations") {
		cfg.Simulation.Iterations, _ = flags.GetInt("iterations")
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	return cfg, nil
}

// newLogger builds the stderr logger for a command.
func newLogger(cmd *cobra.Command, cfg *config.SeatsimConfig) *slog.Logger {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return logging.NewJSONLogger(cfg.Logging.Level, os.Stderr)
	}
	return logging.NewLogger(cfg.Logging.Level, os.Stderr)
}
