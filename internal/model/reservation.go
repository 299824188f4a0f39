package model

import "time"

// Reservation status values.  A reservation is created CONFIRMED and
// the only transition it may ever make is to CANCELLED.
const (
    ReservationConfirmed = "CONFIRMED"
    ReservationCancelled = "CANCELLED"
)

// Reservation records a confirmed booking for one journey.  It is
// created only after the inventory engine has booked the seats, so a
// record in the ledger always corresponds to seats actually held in a
// bucket.
//
// Fields:
//  ReservationID – UUID assigned when the record is created.
//  Route         – route the seats were booked on.
//  TravelDate    – ISO travel date; together with the route's direction
//                  it names the bucket the seats came from, which the
//                  cancellation path needs to give them back.
//  Seats         – allocated seat numbers in allocation order.
//  TotalPrice    – computed fare for the whole party.
//  Status        – CONFIRMED or CANCELLED.
//  DepartureTime – estimated departure from the route origin.
//  ArrivalTime   – estimated arrival at the route destination.
//  CreatedAt     – when the booking was recorded.
type Reservation struct {
    ReservationID string
    Route         Route
    TravelDate    string
    Seats         []string
    TotalPrice    int64
    Status        string
    DepartureTime time.Time
    ArrivalTime   time.Time
    CreatedAt     time.Time
}
