package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/seatsim/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve seatsim tools over the Model Context Protocol (stdio)",
		Long: `Run an MCP server on stdin/stdout exposing the seatsim_seats,
seatsim_seating and seatsim_simulate tools. Tool arguments left unset take
their values from the loaded configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			maxIterations, _ := cmd.Flags().GetInt("max-iterations")

			server, err := mcp.NewServer(&mcp.Config{
				Name:          "seatsim",
				Version:       version,
				Defaults:      cfg,
				Logger:        newLogger(cmd, cfg),
				MaxIterations: maxIterations,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().Int("max-iterations", mcp.DefaultMaxIterations, "Upper bound on trials per seatsim_simulate call")
	return cmd
}
