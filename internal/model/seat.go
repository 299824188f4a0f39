package model

// Seat identifies a physical seat on the bus.  A seat carries identity
// only: whether it is booked depends on the travel date and direction,
// which the inventory engine tracks separately, because the same
// physical seat is sold independently for every scheduled run.
//
// Fields:
//  SeatNumber – row number followed by the row label, e.g. "1A" or "10D".
type Seat struct {
    SeatNumber string
}
