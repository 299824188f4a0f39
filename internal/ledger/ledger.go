// Package ledger keeps the in-memory record of reservations.  Records
// are appended once seat allocation has succeeded and are immutable
// apart from the CONFIRMED to CANCELLED status transition.
package ledger

import (
    "errors"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

// ErrReservationNotFound is returned by Get and Cancel when no record
// carries the given id.  Handlers should translate this into an HTTP
// 404 response.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrAlreadyCancelled is returned by Cancel when the record was
// cancelled before.  Handlers should translate this into an HTTP 409
// response; the seats were already released the first time.
var ErrAlreadyCancelled = errors.New("reservation already cancelled")

// Ledger is an append-only sequence of reservations with lookup by
// id.  The order of records carries no meaning; the mutex only makes
// appends and status flips safe under concurrent requests.
type Ledger struct {
    mu           sync.Mutex
    reservations []*model.Reservation
    byID         map[string]*model.Reservation
}

// New returns an empty ledger.
func New() *Ledger {
    return &Ledger{byID: make(map[string]*model.Reservation)}
}

// Record appends a CONFIRMED reservation with a fresh UUID and
// returns a copy of it.  The seats slice is copied so later caller
// mutations cannot reach the stored record.
func (l *Ledger) Record(route model.Route, travelDate string, seats []string, totalPrice int64, departure, arrival time.Time) model.Reservation {
    r := &model.Reservation{
        ReservationID: uuid.NewString(),
        Route:         route,
        TravelDate:    travelDate,
        Seats:         append([]string(nil), seats...),
        TotalPrice:    totalPrice,
        Status:        model.ReservationConfirmed,
        DepartureTime: departure,
        ArrivalTime:   arrival,
        CreatedAt:     time.Now().UTC(),
    }
    l.mu.Lock()
    defer l.mu.Unlock()
    l.reservations = append(l.reservations, r)
    l.byID[r.ReservationID] = r
    return *r
}

// Get returns a copy of the reservation with the given id.
func (l *Ledger) Get(reservationID string) (model.Reservation, error) {
    l.mu.Lock()
    defer l.mu.Unlock()
    r, ok := l.byID[reservationID]
    if !ok {
        return model.Reservation{}, ErrReservationNotFound
    }
    return *r, nil
}

// Cancel flips a CONFIRMED reservation to CANCELLED and returns a
// copy of the record so the caller can release its seats.  No other
// transition exists; cancelling twice is a conflict.
func (l *Ledger) Cancel(reservationID string) (model.Reservation, error) {
    l.mu.Lock()
    defer l.mu.Unlock()
    r, ok := l.byID[reservationID]
    if !ok {
        return model.Reservation{}, ErrReservationNotFound
    }
    if r.Status == model.ReservationCancelled {
        return model.Reservation{}, ErrAlreadyCancelled
    }
    r.Status = model.ReservationCancelled
    return *r, nil
}

// Len reports how many reservations have ever been recorded,
// cancelled ones included.
func (l *Ledger) Len() int {
    l.mu.Lock()
    defer l.mu.Unlock()
    return len(l.reservations)
}
