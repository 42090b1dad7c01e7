package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/seatsim/internal/montecarlo"
	"github.com/nvandessel/seatsim/internal/puzzle"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate the probability that the last passenger gets their seat",
		Long: `Run repeated boarding trials and report the fraction in which the last
passenger sat in their own assigned seat.

Examples:
  seatsim simulate                                # classic 100/100 plane
  seatsim simulate --iterations 1000000 --workers 8
  seatsim simulate --passengers 50 --seats 60 --seed 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			p, err := puzzle.New(cfg.Plane.Passengers, cfg.Plane.Seats, cfg.Plane.Columns, cfg.Simulation.Seed,
				montecarlo.WithWorkers(cfg.Simulation.Workers),
				montecarlo.WithLogger(logger))
			if err != nil {
				return err
			}

			res, err := p.Simulate(cmd.Context(), cfg.Simulation.Iterations)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"passengers":  p.Plane().Passengers(),
					"seats":       p.Plane().Seats(),
					"columns":     p.Plane().Columns(),
					"iterations":  res.Iterations,
					"successes":   res.Successes,
					"workers":     res.Workers,
					"seed":        res.Seed,
					"probability": res.Probability,
				})
			}

			fmt.Fprintf(out, "Passengers:  %d\n", p.Plane().Passengers())
			fmt.Fprintf(out, "Seats:       %d (%s)\n", p.Plane().Seats(), p.Plane().Columns())
			fmt.Fprintf(out, "Trials:      %d (%d worker(s), seed %d)\n", res.Iterations, res.Workers, res.Seed)
			fmt.Fprintf(out, "Successes:   %d\n", res.Successes)
			fmt.Fprintf(out, "Probability: %.4f\n", res.Probability)
			return nil
		},
	}

	addPlaneFlags(cmd)
	addRunFlags(cmd, true)
	return cmd
}
