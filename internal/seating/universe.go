package seating

import (
	"fmt"
	"strconv"
)

// Rand is the source of randomness used to shuffle the seat universe.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

// BuildSeatUniverse returns exactly seats labels in row-major order.
// Seat i sits in column columns[i mod width] of row (i div width)+1.
func BuildSeatUniverse(seats int, columns string) []SeatLabel {
	cols := []rune(columns)
	if seats <= 0 || len(cols) == 0 {
		return nil
	}

	width := len(cols)
	universe := make([]SeatLabel, seats)
	for i := range seats {
		row := i/width + 1
		universe[i] = SeatLabel(strconv.Itoa(row) + string(cols[i%width]))
	}
	return universe
}

// Universe returns the plane's seat universe.
func (p Plane) Universe() []SeatLabel {
	return BuildSeatUniverse(p.seats, string(p.columns))
}

// GenerateSeating shuffles the plane's seat universe with rng and assigns the
// first Passengers() seats to passengers 1..Passengers() in order.
// Every permutation is equally likely as long as rng is uniform.
func (p Plane) GenerateSeating(rng Rand) (Assignment, error) {
	universe := p.Universe()
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}
	if p.passengers > len(universe) {
		return nil, fmt.Errorf("%w: passenger count exceeds seat count (%d > %d)", ErrConfiguration, p.passengers, len(universe))
	}

	rng.Shuffle(len(universe), func(i, j int) {
		universe[i], universe[j] = universe[j], universe[i]
	})

	seating := make(Assignment, p.passengers)
	for passenger := 1; passenger <= p.passengers; passenger++ {
		seating[passenger] = universe[passenger-1]
	}
	return seating, nil
}
