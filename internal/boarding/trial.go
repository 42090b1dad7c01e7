// Package boarding simulates a single boarding sequence of the airplane
// seating puzzle.
//
// Passenger 1 ignores their ticket and sits in a uniformly random free seat.
// Every later passenger sits in their assigned seat when it is free, and in a
// uniformly random free seat otherwise. A trial succeeds when the last
// passenger ends up in their own seat.
package boarding

import (
	"errors"
	"fmt"

	"github.com/nvandessel/seatsim/internal/seating"
)

var (
	// ErrInvariantViolation means a passenger took a seat that was not free.
	// It signals a defect in the boarding rule and aborts the trial.
	ErrInvariantViolation = errors.New("boarding: invariant violation")

	// ErrInvalidAssignment means the assignment is empty or its passengers
	// are not numbered 1..n.
	ErrInvalidAssignment = errors.New("boarding: invalid assignment")
)

// Rand is the source of random seat choices. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Run boards every passenger of a in order and reports whether the last one
// sat in their assigned seat.
func Run(a seating.Assignment, rng Rand) (bool, error) {
	n := len(a)
	if n == 0 {
		return false, fmt.Errorf("%w: no passengers", ErrInvalidAssignment)
	}

	pool := newOpenPool(a)
	var last seating.SeatLabel
	for passenger := 1; passenger <= n; passenger++ {
		assigned, ok := a[passenger]
		if !ok {
			return false, fmt.Errorf("%w: passenger %d of %d has no seat", ErrInvalidAssignment, passenger, n)
		}

		seat := assigned
		if passenger == 1 || !pool.contains(assigned) {
			if pool.len() == 0 {
				return false, fmt.Errorf("%w: no free seat left for passenger %d", ErrInvariantViolation, passenger)
			}
			seat = pool.at(rng.IntN(pool.len()))
		}

		if !pool.take(seat) {
			return false, fmt.Errorf("%w: passenger %d took occupied seat %s", ErrInvariantViolation, passenger, seat)
		}
		last = seat
	}

	return last == a[n], nil
}
