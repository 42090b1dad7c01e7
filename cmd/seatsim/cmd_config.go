package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nvandessel/seatsim/internal/config"
	"github.com/nvandessel/seatsim/internal/logging"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage seatsim configuration",
		Long: `View and modify seatsim configuration settings.

Configuration is stored in ~/.seatsim/config.yaml unless --config is given.

Examples:
  seatsim config list                        # Show all settings
  seatsim config get plane.columns           # Get a specific setting
  seatsim config set plane.seats 120         # Set a setting
  seatsim config set simulation.workers 8`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
	)

	return cmd
}

// configPath resolves --config, falling back to ~/.seatsim/config.yaml.
func configPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultPath()
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadPath(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(cfg)
			}

			fmt.Fprintf(out, "Configuration (%s):\n", path)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Plane:")
			fmt.Fprintf(out, "  plane.passengers:       %d\n", cfg.Plane.Passengers)
			fmt.Fprintf(out, "  plane.seats:            %d\n", cfg.Plane.Seats)
			fmt.Fprintf(out, "  plane.columns:          %s\n", cfg.Plane.Columns)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Simulation:")
			fmt.Fprintf(out, "  simulation.iterations:  %d\n", cfg.Simulation.Iterations)
			fmt.Fprintf(out, "  simulation.workers:     %d\n", cfg.Simulation.Workers)
			fmt.Fprintf(out, "  simulation.seed:        %s\n", seedOrDefault(cfg.Simulation.Seed))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Logging:")
			fmt.Fprintf(out, "  logging.level:          %s\n", valueOrDefault(cfg.Logging.Level, "info"))
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key := args[0]

			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadPath(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			value, found := getConfigValue(cfg, key)
			if !found {
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
				})
			}
			fmt.Fprintf(out, "%s = %v\n", key, value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key, value := args[0], args[1]

			path, err := configPath(cmd)
			if err != nil {
				return err
			}

			// Start from the file alone so environment overrides are not persisted.
			cfg := config.Default()
			if _, statErr := os.Stat(path); statErr == nil {
				fileCfg, loadErr := config.LoadFromFile(path)
				if loadErr != nil {
					return fmt.Errorf("failed to load config: %w", loadErr)
				}
				cfg = fileCfg
			}

			if err := setConfigValue(cfg, key, value); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration after setting %s: %w", key, err)
			}
			if err := cfg.Save(path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"status": "updated",
					"key":    key,
					"value":  value,
				})
			}
			fmt.Fprintf(out, "Set %s = %s\n", key, value)
			return nil
		},
	}
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.SeatsimConfig, key string) (interface{}, bool) {
	switch key {
	case "plane.passengers":
		return cfg.Plane.Passengers, true
	case "plane.seats":
		return cfg.Plane.Seats, true
	case "plane.columns":
		return cfg.Plane.Columns, true
	case "simulation.iterations":
		return cfg.Simulation.Iterations, true
	case "simulation.workers":
		return cfg.Simulation.Workers, true
	case "simulation.seed":
		return cfg.Simulation.Seed, true
	case "logging.level":
		return cfg.Logging.Level, true
	default:
		return nil, false
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.SeatsimConfig, key, value string) error {
	atoi := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid value for %s: %q is not an integer", key, value)
		}
		return n, nil
	}

	switch key {
	case "plane.passengers", "plane.seats", "simulation.iterations", "simulation.workers":
		n, err := atoi()
		if err != nil {
			return err
		}
		switch key {
		case "plane.passengers":
			cfg.Plane.Passengers = n
		case "plane.seats":
			cfg.Plane.Seats = n
		case "simulation.iterations":
			cfg.Simulation.Iterations = n
		case "simulation.workers":
			cfg.Simulation.Workers = n
		}
	case "plane.columns":
		cfg.Plane.Columns = value
	case "simulation.seed":
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed: %q is not an unsigned integer", value)
		}
		cfg.Simulation.Seed = seed
	case "logging.level":
		if !logging.ValidLevel(value) {
			return fmt.Errorf("invalid log level: %s (valid: info, debug, trace)", value)
		}
		cfg.Logging.Level = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// seedOrDefault renders a zero seed as "random".
func seedOrDefault(seed uint64) string {
	if seed == 0 {
		return "(random)"
	}
	return strconv.FormatUint(seed, 10)
}

// valueOrDefault returns the value if non-empty, otherwise the default.
func valueOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
