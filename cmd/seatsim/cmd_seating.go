package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/seatsim/internal/puzzle"
)

type seatAssignment struct {
	Passenger int    `json:"passenger"`
	Seat      string `json:"seat"`
}

func newSeatingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seating",
		Short: "Draw a random passenger-to-seat assignment",
		Long: `Shuffle the seat universe and assign the first seats to passengers
1..N in order.

Examples:
  seatsim seating --passengers 10 --seats 30
  seatsim seating --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			p, err := puzzle.New(cfg.Plane.Passengers, cfg.Plane.Seats, cfg.Plane.Columns, cfg.Simulation.Seed)
			if err != nil {
				return err
			}

			assignment, err := p.GenerateSeating()
			if err != nil {
				return fmt.Errorf("failed to generate seating: %w", err)
			}

			out := cmd.OutOrStdout()
			passengers := assignment.Passengers()
			if jsonOut {
				rows := make([]seatAssignment, 0, len(passengers))
				for _, passenger := range passengers {
					rows = append(rows, seatAssignment{Passenger: passenger, Seat: string(assignment[passenger])})
				}
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"assignments": rows,
					"count":       len(rows),
					"seed":        p.SeatingSeed(),
				})
			}

			fmt.Fprintf(out, "Seating for %d passengers on %d seats (seed %d):\n", p.Plane().Passengers(), p.Plane().Seats(), p.SeatingSeed())
			for _, passenger := range passengers {
				fmt.Fprintf(out, "  %4d  %s\n", passenger, assignment[passenger])
			}
			return nil
		},
	}

	addPlaneFlags(cmd)
	addRunFlags(cmd, false)
	return cmd
}
