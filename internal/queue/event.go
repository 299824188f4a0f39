// Package queue defines message payloads exchanged over the message
// broker, the publisher for confirmed reservations and the background
// consumer that turns them into log lines.
package queue

// ReservationConfirmedEvent is published after a reservation has been
// recorded.  It carries enough for downstream consumers to log,
// notify or feed analytics without calling back into the service.
type ReservationConfirmedEvent struct {
    ReservationID string   `json:"reservation_id"`
    RouteID       string   `json:"route_id"`
    Origin        string   `json:"origin"`
    Destination   string   `json:"destination"`
    TravelDate    string   `json:"travel_date"`
    SeatNumbers   []string `json:"seats"`
    TotalPrice    int64    `json:"total_price"`
    Currency      string   `json:"currency"`
    DepartureTime string   `json:"departure_time"`
    ArrivalTime   string   `json:"arrival_time"`
    ConfirmedAt   string   `json:"confirmed_at"`
}
