package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seatsim",
		Short: "Airplane seating puzzle simulator",
		Long: `seatsim estimates, by repeated random trials, the probability that the
last passenger to board a plane sits in their own assigned seat.

The first passenger sits in a uniformly random seat. Every later passenger
takes their assigned seat if it is free, and a uniformly random free seat
otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.seatsim/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSeatsCmd(),
		newSeatingCmd(),
		newSimulateCmd(),
		newConfigCmd(),
		newMCPServerCmd(),
	)

	return rootCmd
}
