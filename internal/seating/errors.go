package seating

import "errors"

// ErrConfiguration indicates a plane that cannot be built from the given
// passenger count, seat count, and column labels. Check with errors.Is.
var ErrConfiguration = errors.New("seating: invalid configuration")

// ErrEmptyUniverse indicates a seat universe with no seats.
var ErrEmptyUniverse = errors.New("seating: empty seat universe")
