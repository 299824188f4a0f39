package catalog

import (
    "strconv"

    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

// SeatTemplate is the fixed physical seat plan of the bus.  It is
// date-independent: the inventory engine layers per-run booking state
// over it.  Iteration order is row-major ("1A", "1B", ... "10D") and
// doubles as the allocation tie-break, so identical sequential
// requests always receive the same seats.
type SeatTemplate struct {
    seats []model.Seat
}

// NewSeatTemplate builds the standard coach layout: ten rows of four
// seats labelled A through D.
func NewSeatTemplate() *SeatTemplate {
    return NewSeatTemplateLayout(10, "A", "B", "C", "D")
}

// NewSeatTemplateLayout builds a template with the given number of
// rows and seat labels per row.  Smaller layouts are handy in tests.
func NewSeatTemplateLayout(rows int, labels ...string) *SeatTemplate {
    t := &SeatTemplate{seats: make([]model.Seat, 0, rows*len(labels))}
    for row := 1; row <= rows; row++ {
        for _, label := range labels {
            t.seats = append(t.seats, model.Seat{SeatNumber: strconv.Itoa(row) + label})
        }
    }
    return t
}

// Seats returns the template in allocation order.  Callers must not
// modify the returned slice.
func (t *SeatTemplate) Seats() []model.Seat { return t.seats }

// Size is the number of physical seats on the bus.
func (t *SeatTemplate) Size() int { return len(t.seats) }
