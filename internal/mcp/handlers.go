package mcp

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nvandessel/seatsim/internal/montecarlo"
	"github.com/nvandessel/seatsim/internal/puzzle"
	"github.com/nvandessel/seatsim/internal/seating"
)

// registerTools registers all seatsim MCP tools with the server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "seatsim_seats",
		Description: "List every seat label of the aircraft in row-major order",
	}, s.handleSeats)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "seatsim_seating",
		Description: "Draw a uniformly random passenger-to-seat assignment",
	}, s.handleSeating)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "seatsim_simulate",
		Description: "Estimate the probability that the last passenger to board sits in their own seat when the first passenger sits at random",
	}, s.handleSimulate)
}

// plane builds the plane for a tool call, filling zero fields from defaults.
func (s *Server) plane(passengers, seats int, columns string) (seating.Plane, error) {
	if passengers == 0 {
		passengers = s.defaults.Plane.Passengers
	}
	if seats == 0 {
		seats = s.defaults.Plane.Seats
	}
	if columns == "" {
		columns = s.defaults.Plane.Columns
	}
	return seating.New(passengers, seats, columns)
}

// handleSeats implements the seatsim_seats tool.
func (s *Server) handleSeats(ctx context.Context, req *sdk.CallToolRequest, args SeatsInput) (_ *sdk.CallToolResult, _ SeatsOutput, retErr error) {
	start := time.Now()
	defer func() {
		s.auditTool(ctx, "seatsim_seats", start, retErr)
	}()

	seats, columns := args.Seats, args.Columns
	if seats == 0 {
		seats = s.defaults.Plane.Seats
	}
	if columns == "" {
		columns = s.defaults.Plane.Columns
	}
	if err := seating.ValidateLayout(seats, columns); err != nil {
		return nil, SeatsOutput{}, err
	}

	universe := seating.BuildSeatUniverse(seats, columns)
	labels := make([]string, len(universe))
	for i, label := range universe {
		labels[i] = string(label)
	}

	return nil, SeatsOutput{
		Seats:    labels,
		Count:    len(labels),
		RowWidth: utf8.RuneCountInString(columns),
	}, nil
}

// handleSeating implements the seatsim_seating tool.
func (s *Server) handleSeating(ctx context.Context, req *sdk.CallToolRequest, args SeatingInput) (_ *sdk.CallToolResult, _ SeatingOutput, retErr error) {
	start := time.Now()
	defer func() {
		s.auditTool(ctx, "seatsim_seating", start, retErr, "seed", args.Seed)
	}()

	plane, err := s.plane(args.Passengers, args.Seats, args.Columns)
	if err != nil {
		return nil, SeatingOutput{}, err
	}

	seed := args.Seed
	if seed == 0 {
		seed = s.defaults.Simulation.Seed
	}

	p := puzzle.FromPlane(plane, seed)
	assignment, err := p.GenerateSeating()
	if err != nil {
		return nil, SeatingOutput{}, fmt.Errorf("generating seating: %w", err)
	}

	out := SeatingOutput{
		Assignments: make([]SeatAssignment, 0, len(assignment)),
		Count:       len(assignment),
		Seed:        p.SeatingSeed(),
	}
	for _, passenger := range assignment.Passengers() {
		out.Assignments = append(out.Assignments, SeatAssignment{
			Passenger: passenger,
			Seat:      string(assignment[passenger]),
		})
	}
	return nil, out, nil
}

// handleSimulate implements the seatsim_simulate tool.
func (s *Server) handleSimulate(ctx context.Context, req *sdk.CallToolRequest, args SimulateInput) (_ *sdk.CallToolResult, _ SimulateOutput, retErr error) {
	start := time.Now()
	defer func() {
		s.auditTool(ctx, "seatsim_simulate", start, retErr,
			"iterations", args.Iterations, "workers", args.Workers, "seed", args.Seed)
	}()

	plane, err := s.plane(args.Passengers, args.Seats, args.Columns)
	if err != nil {
		return nil, SimulateOutput{}, err
	}

	iterations := args.Iterations
	if iterations == 0 {
		iterations = s.defaults.Simulation.Iterations
	}
	if iterations > s.maxIterations {
		return nil, SimulateOutput{}, fmt.Errorf("iterations %d exceeds the per-call limit of %d", iterations, s.maxIterations)
	}

	workers := args.Workers
	if workers == 0 {
		workers = s.defaults.Simulation.Workers
	}
	seed := args.Seed
	if seed == 0 {
		seed = s.defaults.Simulation.Seed
	}

	res, err := montecarlo.Run(ctx, plane, iterations,
		montecarlo.WithWorkers(workers),
		montecarlo.WithSeed(seed),
		montecarlo.WithLogger(s.logger))
	if err != nil {
		return nil, SimulateOutput{}, err
	}

	return nil, SimulateOutput{
		Probability: res.Probability,
		Successes:   res.Successes,
		Iterations:  res.Iterations,
		Workers:     res.Workers,
		Seed:        res.Seed,
		Message: fmt.Sprintf("Last passenger got their own seat in %d of %d trials (%.4f) with %d passengers on %d seats",
			res.Successes, res.Iterations, res.Probability, plane.Passengers(), plane.Seats()),
	}, nil
}
