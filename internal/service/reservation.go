// Package service implements the reservation workflows on top of the
// network catalog, the inventory engine and the ledger.  The HTTP
// layer owns request-shape validation; by the time a request reaches
// this package its fields are present and the travel date is parsed.
package service

import (
    "context"
    "log"
    "time"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/inventory"
    "github.com/iliyamo/bus-seat-reservation/internal/ledger"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
    "github.com/iliyamo/bus-seat-reservation/internal/queue"
    "github.com/iliyamo/bus-seat-reservation/internal/utils"
)

// AvailabilityRequest carries a validated availability query.
type AvailabilityRequest struct {
    Origin         string
    Destination    string
    TravelDate     time.Time
    PassengerCount int
}

// AvailabilityResult is the normalized availability answer.  Pricing
// is attached only when the request can be satisfied.
type AvailabilityResult struct {
    Available bool               `json:"available"`
    Pricing   *model.PricingInfo `json:"pricing,omitempty"`
}

// ReservationRequest carries a validated booking request.  The
// payment amount is accepted and trusted; charging it is out of scope.
type ReservationRequest struct {
    Origin         string
    Destination    string
    TravelDate     time.Time
    PassengerCount int
    PaymentAmount  int64
}

// ReservationResult is returned to the caller after a successful
// booking.
type ReservationResult struct {
    ReservationID        string   `json:"reservationId"`
    Origin               string   `json:"origin"`
    Destination          string   `json:"destination"`
    TravelDate           string   `json:"travelDate"`
    AllocatedSeatNumbers []string `json:"allocatedSeatNumbers"`
    TotalPrice           int64    `json:"totalPrice"`
    Currency             string   `json:"currency"`
    DepartureTime        string   `json:"departureTime"`
    ArrivalTime          string   `json:"arrivalTime"`
}

// PublishFunc sends a confirmation event to the broker.  A nil
// publisher disables eventing, which tests rely on.
type PublishFunc func(context.Context, queue.ReservationConfirmedEvent) error

// ReservationService ties the catalog, inventory engine and ledger
// together behind the operations the HTTP layer exposes.
type ReservationService struct {
    catalog   *catalog.Catalog
    inventory *inventory.Engine
    ledger    *ledger.Ledger
    publish   PublishFunc
}

// NewReservationService constructs the service.  Catalog, engine and
// ledger must be non-nil; publish may be nil.
func NewReservationService(c *catalog.Catalog, e *inventory.Engine, l *ledger.Ledger, publish PublishFunc) *ReservationService {
    if c == nil || e == nil || l == nil {
        panic("nil dependency passed to NewReservationService")
    }
    return &ReservationService{catalog: c, inventory: e, ledger: l, publish: publish}
}

// CheckAvailability reports whether PassengerCount seats are free on
// the resolved route for the travel date, with pricing when they are.
// It only reads booking state; repeated calls observe, never change.
func (s *ReservationService) CheckAvailability(req AvailabilityRequest) (AvailabilityResult, error) {
    route, err := s.catalog.ResolveRoute(req.Origin, req.Destination)
    if err != nil {
        return AvailabilityResult{}, err
    }
    travelDate := utils.FormatTravelDate(req.TravelDate)
    free := s.inventory.AvailableSeats(route, travelDate, req.PassengerCount)
    log.Printf("availability on %s %s: %d of %d seats free", route.RouteID, travelDate, len(free), req.PassengerCount)
    if len(free) < req.PassengerCount {
        return AvailabilityResult{Available: false}, nil
    }
    pricing := CalculatePrice(s.catalog, route, req.PassengerCount)
    return AvailabilityResult{Available: true, Pricing: &pricing}, nil
}

// Reserve allocates seats, derives the schedule and fare, records the
// reservation and publishes a confirmation event.  Allocation is
// all-or-nothing: on ErrNotEnoughSeats no booking state has changed
// and nothing is recorded.
func (s *ReservationService) Reserve(ctx context.Context, req ReservationRequest) (ReservationResult, error) {
    route, err := s.catalog.ResolveRoute(req.Origin, req.Destination)
    if err != nil {
        return ReservationResult{}, err
    }
    travelDate := utils.FormatTravelDate(req.TravelDate)

    seats, err := s.inventory.Allocate(route, travelDate, req.PassengerCount)
    if err != nil {
        return ReservationResult{}, err
    }
    log.Printf("reserved seats %v on %s for %s", seats, route.RouteID, travelDate)

    departure := EstimatedDeparture(s.catalog, route, req.TravelDate)
    arrival := EstimatedArrival(s.catalog, departure, route)
    pricing := CalculatePrice(s.catalog, route, req.PassengerCount)
    if req.PaymentAmount != pricing.TotalPrice {
        // Payments are accepted, not charged; the fare of record is
        // the computed one.
        log.Printf("payment amount %d differs from computed fare %d on %s", req.PaymentAmount, pricing.TotalPrice, route.RouteID)
    }

    res := s.ledger.Record(route, travelDate, seats, pricing.TotalPrice, departure, arrival)
    log.Printf("recorded reservation %s", res.ReservationID)

    if s.publish != nil {
        // Best effort: the publisher logs its own failures and the
        // booking stands regardless.
        _ = s.publish(ctx, queue.ReservationConfirmedEvent{
            ReservationID: res.ReservationID,
            RouteID:       route.RouteID,
            Origin:        route.Origin,
            Destination:   route.Destination,
            TravelDate:    travelDate,
            SeatNumbers:   seats,
            TotalPrice:    pricing.TotalPrice,
            Currency:      pricing.Currency,
            DepartureTime: departure.Format(time.RFC3339),
            ArrivalTime:   arrival.Format(time.RFC3339),
            ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
        })
    }

    return ReservationResult{
        ReservationID:        res.ReservationID,
        Origin:               req.Origin,
        Destination:          req.Destination,
        TravelDate:           travelDate,
        AllocatedSeatNumbers: seats,
        TotalPrice:           pricing.TotalPrice,
        Currency:             pricing.Currency,
        DepartureTime:        departure.Format(time.RFC3339),
        ArrivalTime:          arrival.Format(time.RFC3339),
    }, nil
}

// Reservation returns the ledger record for the given id.
func (s *ReservationService) Reservation(reservationID string) (model.Reservation, error) {
    return s.ledger.Get(reservationID)
}

// Cancel marks the reservation CANCELLED and returns its seats to the
// run they were booked on.  Release takes the same per-bucket lock as
// allocation, so a cancel never interleaves with a concurrent booking
// on that run.
func (s *ReservationService) Cancel(reservationID string) error {
    res, err := s.ledger.Cancel(reservationID)
    if err != nil {
        return err
    }
    s.inventory.Release(res.Route, res.TravelDate, res.Seats)
    log.Printf("cancelled reservation %s, released seats %v", reservationID, res.Seats)
    return nil
}
