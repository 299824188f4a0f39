package inventory

import (
    "fmt"
    "sync"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

// bucket holds the booking state for one (travel date, direction)
// pair.  Every read and write goes through mu: the invariant this
// package exists to protect is that "find N unbooked seats and mark
// them booked" happens as one critical section, never as a separate
// check followed by a separate act.
type bucket struct {
    mu     sync.Mutex
    booked map[string]bool // seat number -> booked
}

// Engine is the seat-inventory allocator.  It keys booking state by
// travel date and direction; the outbound and return runs of the same
// calendar date are distinct buckets and never contend for a seat.
// Buckets for different dates are likewise independent, so
// allocations on separate runs proceed fully in parallel.
type Engine struct {
    template *catalog.SeatTemplate

    mu       sync.Mutex         // guards the two bucket maps
    outbound map[string]*bucket // travel date (YYYY-MM-DD) -> outbound run
    inbound  map[string]*bucket // travel date -> return run
}

// NewEngine returns an engine with no booking state.  All runs share
// the given seat template.
func NewEngine(template *catalog.SeatTemplate) *Engine {
    return &Engine{
        template: template,
        outbound: make(map[string]*bucket),
        inbound:  make(map[string]*bucket),
    }
}

// bucketFor returns the bucket for the route's direction on the given
// travel date, creating it on first use.  Creation runs under the
// engine lock so a first booking for a new date cannot race with
// lookups of existing dates.
func (e *Engine) bucketFor(route model.Route, travelDate string) *bucket {
    e.mu.Lock()
    defer e.mu.Unlock()
    buckets := e.outbound
    if route.IsReturn {
        buckets = e.inbound
    }
    b, ok := buckets[travelDate]
    if !ok {
        b = &bucket{booked: make(map[string]bool)}
        buckets[travelDate] = b
    }
    return b
}

// AvailableSeats returns up to passengerCount unbooked seat numbers
// for the route and date, in template order.  It books nothing.
func (e *Engine) AvailableSeats(route model.Route, travelDate string, passengerCount int) []string {
    b := e.bucketFor(route, travelDate)
    b.mu.Lock()
    defer b.mu.Unlock()

    available := make([]string, 0, passengerCount)
    for _, seat := range e.template.Seats() {
        if len(available) >= passengerCount {
            break
        }
        if !b.booked[seat.SeatNumber] {
            available = append(available, seat.SeatNumber)
        }
    }
    return available
}

// Allocate books exactly passengerCount seats on the route's run and
// returns their numbers in template order.  The scan and the marking
// happen inside one bucket-wide critical section, so two concurrent
// calls can never be handed the same seat.  Allocation is
// all-or-nothing: when the run cannot cover the request no seat is
// touched and ErrNotEnoughSeats is returned naming the travel date.
func (e *Engine) Allocate(route model.Route, travelDate string, passengerCount int) ([]string, error) {
    b := e.bucketFor(route, travelDate)
    b.mu.Lock()
    defer b.mu.Unlock()

    allocated := make([]string, 0, passengerCount)
    for _, seat := range e.template.Seats() {
        if len(allocated) >= passengerCount {
            break
        }
        if !b.booked[seat.SeatNumber] {
            allocated = append(allocated, seat.SeatNumber)
        }
    }
    if len(allocated) < passengerCount {
        return nil, fmt.Errorf("%w for %s", ErrNotEnoughSeats, travelDate)
    }
    for _, seatNumber := range allocated {
        b.booked[seatNumber] = true
    }
    return allocated, nil
}

// Release marks the given seats unbooked again on the route's run.
// It is the inverse of Allocate and takes the same bucket lock, so a
// cancellation never interleaves with a booking on the same run.
func (e *Engine) Release(route model.Route, travelDate string, seatNumbers []string) {
    b := e.bucketFor(route, travelDate)
    b.mu.Lock()
    defer b.mu.Unlock()
    for _, seatNumber := range seatNumbers {
        b.booked[seatNumber] = false
    }
}
