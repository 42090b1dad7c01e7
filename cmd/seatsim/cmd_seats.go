package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/nvandessel/seatsim/internal/seating"
)

func newSeatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seats",
		Short: "List the seat labels of the plane",
		Long: `List every seat of the plane in row-major order, one row per line.

Examples:
  seatsim seats                       # 100 seats in rows of ABCDEF
  seatsim seats --seats 12 --columns ABC`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := seating.ValidateLayout(cfg.Plane.Seats, cfg.Plane.Columns); err != nil {
				return err
			}

			universe := seating.BuildSeatUniverse(cfg.Plane.Seats, cfg.Plane.Columns)
			width := utf8.RuneCountInString(cfg.Plane.Columns)
			out := cmd.OutOrStdout()
			if jsonOut {
				labels := make([]string, len(universe))
				for i, label := range universe {
					labels[i] = string(label)
				}
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"seats":     labels,
					"count":     len(labels),
					"row_width": width,
				})
			}

			for start := 0; start < len(universe); start += width {
				end := min(start+width, len(universe))
				row := make([]string, 0, width)
				for _, label := range universe[start:end] {
					row = append(row, string(label))
				}
				fmt.Fprintln(out, strings.Join(row, " "))
			}
			return nil
		},
	}

	addLayoutFlags(cmd)
	return cmd
}
