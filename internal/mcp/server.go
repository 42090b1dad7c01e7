// Package mcp provides an MCP (Model Context Protocol) server for seatsim.
//
// The server exposes the seating puzzle to agent hosts as three tools:
// seatsim_seats lists the seat universe, seatsim_seating draws a random
// assignment, and seatsim_simulate runs a Monte Carlo estimate.
package mcp

import (
	"context"
	"log/slog"
	"os/signal"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nvandessel/seatsim/internal/config"
)

// DefaultMaxIterations caps a single seatsim_simulate call.
const DefaultMaxIterations = 10_000_000

// Server wraps the MCP SDK server and provides seatsim-specific tools.
type Server struct {
	server        *sdk.Server
	defaults      *config.SeatsimConfig
	logger        *slog.Logger
	maxIterations int
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "seatsim")
	Version string // Server version

	// Defaults fills in tool arguments the caller leaves at zero.
	// Nil means config.Default().
	Defaults *config.SeatsimConfig

	// Logger receives one line per tool call. Nil discards.
	Logger *slog.Logger

	// MaxIterations caps seatsim_simulate. 0 means DefaultMaxIterations.
	MaxIterations int
}

// NewServer creates a new MCP server with seatsim tools registered.
func NewServer(cfg *Config) (*Server, error) {
	defaults := cfg.Defaults
	if defaults == nil {
		defaults = config.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	s := &Server{
		server:        mcpServer,
		defaults:      defaults,
		logger:        logger,
		maxIterations: maxIterations,
	}
	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	return s.server.Run(ctx, &sdk.StdioTransport{})
}
