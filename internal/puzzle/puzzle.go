// Package puzzle is the entry point for callers of the seating puzzle: build
// a Puzzle once, then draw assignments or run estimates against it.
package puzzle

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/nvandessel/seatsim/internal/montecarlo"
	"github.com/nvandessel/seatsim/internal/seating"
)

// Puzzle binds an immutable plane to a random source and estimator options.
// It is safe for concurrent use.
type Puzzle struct {
	plane       seating.Plane
	opts        []montecarlo.Option
	seatingSeed uint64

	mu  sync.Mutex
	rng *rand.Rand
}

// New constructs a Puzzle. It fails with seating.ErrConfiguration when the
// plane is invalid, including when passengers exceed seats.
// Seed 0 seeds GenerateSeating from a freshly drawn seed, reported by
// SeatingSeed; estimates then draw their own seed per run.
func New(passengers, seats int, columns string, seed uint64, opts ...montecarlo.Option) (*Puzzle, error) {
	plane, err := seating.New(passengers, seats, columns)
	if err != nil {
		return nil, err
	}
	return FromPlane(plane, seed, opts...), nil
}

// FromPlane wraps an already validated plane.
func FromPlane(plane seating.Plane, seed uint64, opts ...montecarlo.Option) *Puzzle {
	seatingSeed := seed
	if seatingSeed == 0 {
		seatingSeed = montecarlo.FreshSeed()
	}
	return &Puzzle{
		plane:       plane,
		opts:        append([]montecarlo.Option{montecarlo.WithSeed(seed)}, opts...),
		seatingSeed: seatingSeed,
		rng:         rand.New(rand.NewPCG(seatingSeed, seatingSeed)),
	}
}

// Plane returns the puzzle's configuration.
func (p *Puzzle) Plane() seating.Plane { return p.plane }

// SeatingSeed returns the seed behind GenerateSeating. A new Puzzle built
// with this seed draws the same sequence of assignments.
func (p *Puzzle) SeatingSeed() uint64 { return p.seatingSeed }

// SeatUniverse returns every seat label of the plane in row-major order.
func (p *Puzzle) SeatUniverse() []seating.SeatLabel { return p.plane.Universe() }

// GenerateSeating draws a fresh random assignment.
func (p *Puzzle) GenerateSeating() (seating.Assignment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plane.GenerateSeating(p.rng)
}

// RunSimulation estimates the probability that the last passenger sits in
// their own seat. It fails with montecarlo.ErrDivisionUndefined when
// iterations is not positive.
func (p *Puzzle) RunSimulation(ctx context.Context, iterations int) (float64, error) {
	return montecarlo.Estimate(ctx, p.plane, iterations, p.opts...)
}

// Simulate is RunSimulation with the full run summary. extra options are
// applied after the puzzle's own.
func (p *Puzzle) Simulate(ctx context.Context, iterations int, extra ...montecarlo.Option) (montecarlo.Result, error) {
	opts := append(append([]montecarlo.Option(nil), p.opts...), extra...)
	return montecarlo.Run(ctx, p.plane, iterations, opts...)
}
