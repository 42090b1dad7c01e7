// Package config provides unified configuration loading for seatsim.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nvandessel/seatsim/internal/logging"
	"github.com/nvandessel/seatsim/internal/montecarlo"
	"github.com/nvandessel/seatsim/internal/seating"
)

// DefaultIterations is the number of trials run when none is configured.
const DefaultIterations = 100000

// SeatsimConfig contains all seatsim configuration settings.
type SeatsimConfig struct {
	// Plane describes the aircraft and how many passengers board it.
	Plane PlaneConfig `json:"plane" yaml:"plane"`

	// Simulation controls the Monte Carlo run.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// PlaneConfig is the seating layout.
type PlaneConfig struct {
	Passengers int    `json:"passengers" yaml:"passengers"`
	Seats      int    `json:"seats" yaml:"seats"`
	Columns    string `json:"columns" yaml:"columns"`
}

// SimulationConfig configures estimation runs.
type SimulationConfig struct {
	// Iterations is the number of boarding trials per run.
	Iterations int `json:"iterations" yaml:"iterations"`

	// Workers is the number of goroutines sharing the trials.
	Workers int `json:"workers" yaml:"workers"`

	// Seed makes runs reproducible. 0 draws a fresh seed per run.
	Seed uint64 `json:"seed" yaml:"seed"`
}

// LoggingConfig configures seatsim's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a SeatsimConfig with the classic puzzle settings.
func Default() *SeatsimConfig {
	return &SeatsimConfig{
		Plane: PlaneConfig{
			Passengers: seating.DefaultPassengers,
			Seats:      seating.DefaultSeats,
			Columns:    seating.DefaultColumns,
		},
		Simulation: SimulationConfig{
			Iterations: DefaultIterations,
			Workers:    1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.seatsim/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".seatsim", "config.yaml"), nil
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.seatsim/config.yaml -> environment variables
func Load() (*SeatsimConfig, error) {
	path, err := DefaultPath()
	if err != nil {
		path = ""
	}
	return LoadPath(path)
}

// LoadPath is Load with an explicit config file. A missing file is not an
// error; the defaults are used instead.
func LoadPath(path string) (*SeatsimConfig, error) {
	config := Default()

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			fileConfig, loadErr := LoadFromFile(path)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
// Keys absent from the file keep their defaults.
func LoadFromFile(path string) (*SeatsimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", redactPath(path), err)
	}

	return config, nil
}

// redactPath shortens a path to .../<parent>/<base> for error messages so
// home directory names do not leak into logs or MCP responses.
func redactPath(path string) string {
	cleaned := filepath.Clean(path)
	parent := filepath.Base(filepath.Dir(cleaned))
	if parent == "." || parent == string(filepath.Separator) {
		return filepath.Base(cleaned)
	}
	return ".../" + parent + "/" + filepath.Base(cleaned)
}

// Save writes the configuration to path as YAML, creating parent directories.
func (c *SeatsimConfig) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *SeatsimConfig) Validate() error {
	if _, err := c.BuildPlane(); err != nil {
		return err
	}

	if c.Simulation.Iterations < 1 {
		return fmt.Errorf("%w: got %d", montecarlo.ErrDivisionUndefined, c.Simulation.Iterations)
	}

	if c.Simulation.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Simulation.Workers)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// BuildPlane constructs the immutable plane described by the config.
func (c *SeatsimConfig) BuildPlane() (seating.Plane, error) {
	return seating.New(c.Plane.Passengers, c.Plane.Seats, c.Plane.Columns)
}

// applyEnvOverrides applies SEATSIM_* environment variable overrides.
// Unparseable numbers are reported rather than ignored.
func applyEnvOverrides(config *SeatsimConfig) error {
	ints := []struct {
		env string
		dst *int
	}{
		{"SEATSIM_PASSENGERS", &config.Plane.Passengers},
		{"SEATSIM_SEATS", &config.Plane.Seats},
		{"SEATSIM_ITERATIONS", &config.Simulation.Iterations},
		{"SEATSIM_WORKERS", &config.Simulation.Workers},
	}
	for _, o := range ints {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %q is not an integer", o.env, v)
		}
		*o.dst = n
	}

	if v := os.Getenv("SEATSIM_COLUMNS"); v != "" {
		config.Plane.Columns = v
	}

	if v := os.Getenv("SEATSIM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SEATSIM_SEED: %q is not an unsigned integer", v)
		}
		config.Simulation.Seed = seed
	}

	if v := os.Getenv("SEATSIM_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	return nil
}
