// Package seating builds the seat universe of an aircraft and draws random
// passenger-to-seat assignments from it.
//
// A Plane is an immutable configuration: the number of passengers boarding,
// the number of physical seats, and the column labels of a row. Seats are
// numbered row-major, so with columns "AB" the universe is 1A, 1B, 2A, 2B, ...
package seating

import (
	"fmt"
	"sort"
)

// Defaults match the classic puzzle: a full 100-seat plane in rows of six.
const (
	DefaultPassengers = 100
	DefaultSeats      = 100
	DefaultColumns    = "ABCDEF"
)

// Plane is the immutable seating configuration for one estimation run.
// The zero value is not usable; construct with New.
type Plane struct {
	passengers int
	seats      int
	columns    []rune
}

// New validates and returns a Plane.
// It fails with ErrConfiguration when passengers or seats is below one,
// columns is empty or repeats a label, or passengers exceeds seats.
func New(passengers, seats int, columns string) (Plane, error) {
	if passengers < 1 {
		return Plane{}, fmt.Errorf("%w: passenger count must be at least 1, got %d", ErrConfiguration, passengers)
	}
	if err := ValidateLayout(seats, columns); err != nil {
		return Plane{}, err
	}
	if passengers > seats {
		return Plane{}, fmt.Errorf("%w: passenger count exceeds seat count (%d > %d)", ErrConfiguration, passengers, seats)
	}
	return Plane{passengers: passengers, seats: seats, columns: []rune(columns)}, nil
}

// ValidateLayout checks the physical layout alone: at least one seat and a
// non-empty set of distinct column labels. The seat universe depends on
// nothing else.
func ValidateLayout(seats int, columns string) error {
	if seats < 1 {
		return fmt.Errorf("%w: seat count must be at least 1, got %d", ErrConfiguration, seats)
	}
	cols := []rune(columns)
	if len(cols) == 0 {
		return fmt.Errorf("%w: column labels must not be empty", ErrConfiguration)
	}
	seen := make(map[rune]bool, len(cols))
	for _, c := range cols {
		if seen[c] {
			return fmt.Errorf("%w: duplicate column label %q", ErrConfiguration, c)
		}
		seen[c] = true
	}
	return nil
}

// Passengers returns the number of passengers boarding.
func (p Plane) Passengers() int { return p.passengers }

// Seats returns the number of physical seats.
func (p Plane) Seats() int { return p.seats }

// Columns returns the column labels of a row.
func (p Plane) Columns() string { return string(p.columns) }

// RowWidth returns the number of seats in one row.
func (p Plane) RowWidth() int { return len(p.columns) }

func (p Plane) String() string {
	return fmt.Sprintf("Plane{Passengers:%d, Seats:%d, Columns:%s}", p.passengers, p.seats, string(p.columns))
}

// SeatLabel identifies one physical seat by row number and column label,
// e.g. "12C".
type SeatLabel string

// Assignment maps passenger numbers (1-based) to their assigned seat.
type Assignment map[int]SeatLabel

// Passengers returns the passenger numbers of a in ascending order.
func (a Assignment) Passengers() []int {
	ids := make([]int, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
