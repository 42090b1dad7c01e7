package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nvandessel/seatsim/internal/config"
	"github.com/nvandessel/seatsim/internal/montecarlo"
	"github.com/nvandessel/seatsim/internal/seating"
)

// runCmd executes the root command with an isolated config file and returns stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	return runCmdWithConfig(t, configFile, args...)
}

func runCmdWithConfig(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", configFile}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	want := []string{"version", "seats", "seating", "simulate", "config", "mcp-server"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "version", "--json")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if got["version"] != version {
		t.Errorf("version = %q, want %q", got["version"], version)
	}
}

func TestSeatsCmd(t *testing.T) {
	out, err := runCmd(t, "seats", "--seats", "6", "--columns", "AB")
	if err != nil {
		t.Fatalf("seats failed: %v", err)
	}
	want := "1A 1B\n2A 2B\n3A 3B\n"
	if out != want {
		t.Errorf("seats output = %q, want %q", out, want)
	}
}

func TestSeatsCmd_PartialLastRow(t *testing.T) {
	out, err := runCmd(t, "seats", "--seats", "5", "--columns", "ABC")
	if err != nil {
		t.Fatalf("seats failed: %v", err)
	}
	want := "1A 1B 1C\n2A 2B\n"
	if out != want {
		t.Errorf("seats output = %q, want %q", out, want)
	}
}

// The default 100 passengers must not stop a listing of a smaller plane.
func TestSeatsCmd_SmallerThanDefaultPassengers(t *testing.T) {
	out, err := runCmd(t, "seats", "--seats", "12", "--columns", "ABC", "--json")
	if err != nil {
		t.Fatalf("seats failed: %v", err)
	}

	var got struct {
		Seats    []string `json:"seats"`
		Count    int      `json:"count"`
		RowWidth int      `json:"row_width"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if got.Count != 12 || got.RowWidth != 3 {
		t.Errorf("count=%d row_width=%d, want 12 and 3", got.Count, got.RowWidth)
	}
	if got.Seats[11] != "4C" {
		t.Errorf("last seat = %s, want 4C", got.Seats[11])
	}
}

func TestSeatsCmd_InvalidLayout(t *testing.T) {
	_, err := runCmd(t, "seats", "--seats", "6", "--columns", "AA")
	if !errors.Is(err, seating.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestSeatingCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "seating", "--passengers", "12", "--seats", "18", "--columns", "ABC", "--seed", "5", "--json")
	if err != nil {
		t.Fatalf("seating failed: %v", err)
	}

	var got struct {
		Assignments []seatAssignment `json:"assignments"`
		Count       int              `json:"count"`
		Seed        uint64           `json:"seed"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if got.Seed != 5 {
		t.Errorf("seed = %d, want 5", got.Seed)
	}
	if got.Count != 12 || len(got.Assignments) != 12 {
		t.Fatalf("expected 12 assignments, got count=%d len=%d", got.Count, len(got.Assignments))
	}

	seen := make(map[string]bool)
	for i, a := range got.Assignments {
		if a.Passenger != i+1 {
			t.Errorf("row %d is passenger %d", i, a.Passenger)
		}
		if seen[a.Seat] {
			t.Errorf("seat %s assigned twice", a.Seat)
		}
		seen[a.Seat] = true
	}

	again, err := runCmd(t, "seating", "--passengers", "12", "--seats", "18", "--columns", "ABC", "--seed", "5", "--json")
	if err != nil {
		t.Fatalf("seating failed: %v", err)
	}
	if again != out {
		t.Error("seeded seating output is not reproducible")
	}
}

func TestSeatingCmd_FreshSeedReplays(t *testing.T) {
	out, err := runCmd(t, "seating", "--passengers", "6", "--seats", "6", "--columns", "AB", "--json")
	if err != nil {
		t.Fatalf("seating failed: %v", err)
	}

	var got struct {
		Seed uint64 `json:"seed"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if got.Seed == 0 {
		t.Fatal("expected a drawn seed in the output")
	}

	replay, err := runCmd(t, "seating", "--passengers", "6", "--seats", "6", "--columns", "AB", "--json",
		"--seed", strconv.FormatUint(got.Seed, 10))
	if err != nil {
		t.Fatalf("seating failed: %v", err)
	}
	if replay != out {
		t.Errorf("replay with seed %d differs:\n%s\n%s", got.Seed, out, replay)
	}
}

func TestSeatingCmd_Text(t *testing.T) {
	out, err := runCmd(t, "seating", "--passengers", "3", "--seats", "3", "--columns", "ABC", "--seed", "1")
	if err != nil {
		t.Fatalf("seating failed: %v", err)
	}
	if !strings.HasPrefix(out, "Seating for 3 passengers on 3 seats (seed 1):\n") {
		t.Errorf("unexpected header: %q", out)
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("expected 4 lines, got %d: %q", lines, out)
	}
}

func TestSimulateCmd_SinglePassenger(t *testing.T) {
	out, err := runCmd(t, "simulate", "--passengers", "1", "--seats", "1", "--columns", "A", "--iterations", "1000", "--json")
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if got["probability"] != 1.0 {
		t.Errorf("probability = %v, want 1", got["probability"])
	}
	if got["iterations"] != 1000.0 {
		t.Errorf("iterations = %v, want 1000", got["iterations"])
	}
}

func TestSimulateCmd_Text(t *testing.T) {
	out, err := runCmd(t, "simulate", "--iterations", "20000", "--workers", "2", "--seed", "10")
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	for _, want := range []string{"Passengers:  100", "Seats:       100 (ABCDEF)", "Trials:      20000 (2 worker(s), seed 10)", "Probability: 0."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateCmd_Overbooked(t *testing.T) {
	_, err := runCmd(t, "simulate", "--passengers", "101", "--seats", "100")
	if !errors.Is(err, seating.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestSimulateCmd_ZeroIterations(t *testing.T) {
	_, err := runCmd(t, "simulate", "--iterations", "0")
	if !errors.Is(err, montecarlo.ErrDivisionUndefined) {
		t.Fatalf("expected ErrDivisionUndefined, got %v", err)
	}
}

func TestSimulateCmd_UsesConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	content := "plane:\n  passengers: 2\n  seats: 2\n  columns: AB\nsimulation:\n  iterations: 4000\n  seed: 3\n"
	if err := os.WriteFile(configFile, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out, err := runCmdWithConfig(t, configFile, "simulate", "--json")
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if got["passengers"] != 2.0 || got["iterations"] != 4000.0 || got["seed"] != 3.0 {
		t.Errorf("config file not applied: %v", got)
	}
}

func TestConfigSetGetList(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "seatsim", "config.yaml")

	if _, err := runCmdWithConfig(t, configFile, "config", "set", "plane.columns", "ABCD"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, err := runCmdWithConfig(t, configFile, "config", "set", "simulation.seed", "77"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	out, err := runCmdWithConfig(t, configFile, "config", "get", "plane.columns")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if out != "plane.columns = ABCD\n" {
		t.Errorf("config get output = %q", out)
	}

	out, err = runCmdWithConfig(t, configFile, "config", "list")
	if err != nil {
		t.Fatalf("config list failed: %v", err)
	}
	for _, want := range []string{"plane.columns:          ABCD", "simulation.seed:        77"} {
		if !strings.Contains(out, want) {
			t.Errorf("config list missing %q:\n%s", want, out)
		}
	}
}

func TestConfigSet_RejectsInvalid(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	tests := []struct {
		key   string
		value string
	}{
		{"plane.passengers", "ten"},
		{"plane.passengers", "500"},
		{"simulation.workers", "0"},
		{"logging.level", "loud"},
		{"plane.rows", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			if _, err := runCmdWithConfig(t, configFile, "config", "set", tt.key, tt.value); err == nil {
				t.Errorf("expected error setting %s=%s", tt.key, tt.value)
			}
		})
	}

	if _, err := os.Stat(configFile); err == nil {
		t.Error("rejected values must not write the config file")
	}
}

// Every "config set" example in the help text must succeed on a default config.
func TestConfigCmd_SetExamplesApply(t *testing.T) {
	examples := 0
	for _, line := range strings.Split(newConfigCmd().Long, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 || fields[0] != "seatsim" || fields[1] != "config" || fields[2] != "set" {
			continue
		}
		examples++
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		if _, err := runCmdWithConfig(t, configFile, "config", "set", fields[3], fields[4]); err != nil {
			t.Errorf("help example %q failed: %v", strings.TrimSpace(line), err)
		}
	}
	if examples == 0 {
		t.Fatal("no config set examples found in help text")
	}
}

func TestConfigGet_UnknownKey(t *testing.T) {
	if _, err := runCmd(t, "config", "get", "llm.provider"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSetConfigValue(t *testing.T) {
	cfg := config.Default()
	if err := setConfigValue(cfg, "simulation.iterations", "250"); err != nil {
		t.Fatalf("setConfigValue failed: %v", err)
	}
	if v, ok := getConfigValue(cfg, "simulation.iterations"); !ok || v != 250 {
		t.Errorf("simulation.iterations = %v, want 250", v)
	}
}

func TestValueOrDefault(t *testing.T) {
	if got := valueOrDefault("", "info"); got != "info" {
		t.Errorf("valueOrDefault(\"\") = %q", got)
	}
	if got := valueOrDefault("debug", "info"); got != "debug" {
		t.Errorf("valueOrDefault(\"debug\") = %q", got)
	}
	if got := seedOrDefault(0); got != "(random)" {
		t.Errorf("seedOrDefault(0) = %q", got)
	}
}
