// Package montecarlo estimates the probability that the last passenger gets
// their own seat by repeating independent boarding trials.
//
// Each trial draws a fresh assignment from the plane and boards it once.
// The estimate is the plain success ratio; there is no smoothing and no
// early stopping. Trials may be spread over several workers, each with its
// own random stream, and their success counts are summed.
package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nvandessel/seatsim/internal/boarding"
	"github.com/nvandessel/seatsim/internal/logging"
	"github.com/nvandessel/seatsim/internal/seating"
)

// ErrDivisionUndefined is returned when a run is requested with no trials.
var ErrDivisionUndefined = errors.New("montecarlo: iterations must be positive")

// cancelCheckInterval is how many trials run between context checks.
const cancelCheckInterval = 256

// Result summarizes one estimation run.
type Result struct {
	Iterations  int     `json:"iterations"`
	Successes   int     `json:"successes"`
	Workers     int     `json:"workers"`
	Seed        uint64  `json:"seed"`
	Probability float64 `json:"probability"`
}

// Estimate runs iterations trials against plane and returns the fraction in
// which the last passenger sat in their assigned seat.
func Estimate(ctx context.Context, plane seating.Plane, iterations int, opts ...Option) (float64, error) {
	res, err := Run(ctx, plane, iterations, opts...)
	if err != nil {
		return 0, err
	}
	return res.Probability, nil
}

// Run is Estimate with the full run summary.
func Run(ctx context.Context, plane seating.Plane, iterations int, opts ...Option) (Result, error) {
	if iterations <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrDivisionUndefined, iterations)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	seed := o.seed
	if seed == 0 {
		seed = FreshSeed()
	}
	workers := min(o.workers, iterations)

	start := time.Now()
	successes := make([]int, workers)
	if workers == 1 {
		n, err := runTrials(ctx, plane, iterations, workerRand(seed, 0))
		if err != nil {
			return Result{}, err
		}
		successes[0] = n
	} else {
		g, gctx := errgroup.WithContext(ctx)
		share, extra := iterations/workers, iterations%workers
		for w := range workers {
			trials := share
			if w < extra {
				trials++
			}
			g.Go(func() error {
				n, err := runTrials(gctx, plane, trials, workerRand(seed, w))
				if err != nil {
					return err
				}
				successes[w] = n
				o.logger.Log(gctx, logging.LevelTrace, "worker finished",
					"worker", w, "trials", trials, "successes", n)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}

	total := 0
	for _, n := range successes {
		total += n
	}

	res := Result{
		Iterations:  iterations,
		Successes:   total,
		Workers:     workers,
		Seed:        seed,
		Probability: float64(total) / float64(iterations),
	}
	o.logger.Debug("estimation complete",
		"plane", plane.String(),
		"iterations", iterations,
		"workers", workers,
		"seed", seed,
		"successes", total,
		"probability", res.Probability,
		"elapsed", time.Since(start))
	return res, nil
}

// runTrials runs n trials with rng and returns the number of successes.
func runTrials(ctx context.Context, plane seating.Plane, n int, rng *rand.Rand) (int, error) {
	successes := 0
	for i := range n {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		assignment, err := plane.GenerateSeating(rng)
		if err != nil {
			return 0, err
		}
		ok, err := boarding.Run(assignment, rng)
		if err != nil {
			return 0, fmt.Errorf("trial %d: %w", i+1, err)
		}
		if ok {
			successes++
		}
	}
	return successes, nil
}
