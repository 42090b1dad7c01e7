package boarding

import "github.com/nvandessel/seatsim/internal/seating"

// openPool is the set of seats still free during one trial. It holds only
// seats that appear in the assignment; physical seats nobody was assigned are
// never offered. Removal is O(1): the removed slot is filled with the last seat.
type openPool struct {
	seats []seating.SeatLabel
	index map[seating.SeatLabel]int
}

func newOpenPool(a seating.Assignment) *openPool {
	p := &openPool{
		seats: make([]seating.SeatLabel, 0, len(a)),
		index: make(map[seating.SeatLabel]int, len(a)),
	}
	for _, passenger := range a.Passengers() {
		seat := a[passenger]
		if _, ok := p.index[seat]; ok {
			continue
		}
		p.index[seat] = len(p.seats)
		p.seats = append(p.seats, seat)
	}
	return p
}

func (p *openPool) len() int { return len(p.seats) }

func (p *openPool) contains(seat seating.SeatLabel) bool {
	_, ok := p.index[seat]
	return ok
}

func (p *openPool) at(i int) seating.SeatLabel { return p.seats[i] }

// take removes seat from the pool. It reports false if seat was not free.
func (p *openPool) take(seat seating.SeatLabel) bool {
	i, ok := p.index[seat]
	if !ok {
		return false
	}
	last := len(p.seats) - 1
	p.seats[i] = p.seats[last]
	p.index[p.seats[i]] = i
	p.seats = p.seats[:last]
	delete(p.index, seat)
	return true
}
