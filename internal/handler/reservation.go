package handler

import (
    "errors"
    "fmt"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/inventory"
    "github.com/iliyamo/bus-seat-reservation/internal/ledger"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
    "github.com/iliyamo/bus-seat-reservation/internal/service"
    "github.com/iliyamo/bus-seat-reservation/internal/utils"
)

// ReservationHandler serves the availability and reservation
// endpoints on top of the reservation service.  Request-shape
// validation, including the booking window, lives here; the service
// assumes validated input.
type ReservationHandler struct {
    Service *service.ReservationService

    // Booking window in days relative to today.  A travel date must
    // fall between today+Min and today+Max inclusive.
    MinReservationDays int
    MaxReservationDays int
}

// NewReservationHandler constructs the handler.  The service must be
// non-nil.
func NewReservationHandler(svc *service.ReservationService, minDays, maxDays int) *ReservationHandler {
    if svc == nil {
        panic("nil service passed to NewReservationHandler")
    }
    return &ReservationHandler{Service: svc, MinReservationDays: minDays, MaxReservationDays: maxDays}
}

// CheckAvailability handles GET /check-availability.  Query
// parameters: origin, destination, travelDate (YYYY-MM-DD) and
// passengerCount.  A bookable route answers with pricing attached; a
// full one answers available=false with no pricing.
func (h *ReservationHandler) CheckAvailability(c echo.Context) error {
    countStr := c.QueryParam("passengerCount")
    passengerCount, err := strconv.Atoi(countStr)
    if countStr == "" || err != nil {
        return apiError(c, http.StatusBadRequest, "passengerCount must be an integer")
    }

    travelDate, verr := h.validateCommon(c.QueryParam("origin"), c.QueryParam("destination"), passengerCount, c.QueryParam("travelDate"))
    if verr != "" {
        return apiError(c, http.StatusBadRequest, verr)
    }

    result, err := h.Service.CheckAvailability(service.AvailabilityRequest{
        Origin:         c.QueryParam("origin"),
        Destination:    c.QueryParam("destination"),
        TravelDate:     travelDate,
        PassengerCount: passengerCount,
    })
    if err != nil {
        if errors.Is(err, catalog.ErrRouteNotFound) {
            return apiError(c, http.StatusBadRequest, "invalid origin or destination")
        }
        log.Printf("availability request failed: %v", err)
        return apiError(c, http.StatusInternalServerError, "internal server error")
    }
    return apiSuccess(c, http.StatusOK, result)
}

// Reserve handles POST /reserve.  The JSON body carries origin,
// destination, travelDate, passengerCount and paymentAmount.  A full
// bus is an expected outcome, not a fault: it answers 200 with a
// failure envelope naming the travel date, the same way the surface
// has always behaved.
func (h *ReservationHandler) Reserve(c echo.Context) error {
    var body struct {
        Origin         string `json:"origin"`
        Destination    string `json:"destination"`
        TravelDate     string `json:"travelDate"`
        PassengerCount int    `json:"passengerCount"`
        PaymentAmount  int64  `json:"paymentAmount"`
    }
    if err := c.Bind(&body); err != nil {
        return apiError(c, http.StatusBadRequest, "invalid request body")
    }

    travelDate, verr := h.validateCommon(body.Origin, body.Destination, body.PassengerCount, body.TravelDate)
    if verr != "" {
        return apiError(c, http.StatusBadRequest, verr)
    }
    if body.PaymentAmount < 0 {
        return apiError(c, http.StatusBadRequest, "paid amount must be a non-negative value")
    }

    result, err := h.Service.Reserve(c.Request().Context(), service.ReservationRequest{
        Origin:         body.Origin,
        Destination:    body.Destination,
        TravelDate:     travelDate,
        PassengerCount: body.PassengerCount,
        PaymentAmount:  body.PaymentAmount,
    })
    if err != nil {
        switch {
        case errors.Is(err, inventory.ErrNotEnoughSeats):
            return c.JSON(http.StatusOK, echo.Map{"success": false, "message": err.Error()})
        case errors.Is(err, catalog.ErrRouteNotFound):
            return apiError(c, http.StatusBadRequest, "invalid origin or destination")
        default:
            log.Printf("reservation request failed: %v", err)
            return apiError(c, http.StatusInternalServerError, "internal server error")
        }
    }
    return apiSuccess(c, http.StatusOK, result)
}

// GetReservation handles GET /v1/reservations/:id.
func (h *ReservationHandler) GetReservation(c echo.Context) error {
    res, err := h.Service.Reservation(c.Param("id"))
    if err != nil {
        if errors.Is(err, ledger.ErrReservationNotFound) {
            return apiError(c, http.StatusNotFound, "reservation not found")
        }
        log.Printf("reservation lookup failed: %v", err)
        return apiError(c, http.StatusInternalServerError, "internal server error")
    }
    return apiSuccess(c, http.StatusOK, reservationView(res))
}

// CancelReservation handles DELETE /v1/reservations/:id.  The seats
// return to the run they were booked on; cancelling a second time is
// a conflict.
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
    id := c.Param("id")
    if err := h.Service.Cancel(id); err != nil {
        switch {
        case errors.Is(err, ledger.ErrReservationNotFound):
            return apiError(c, http.StatusNotFound, "reservation not found")
        case errors.Is(err, ledger.ErrAlreadyCancelled):
            return apiError(c, http.StatusConflict, "reservation already cancelled")
        default:
            log.Printf("cancellation failed: %v", err)
            return apiError(c, http.StatusInternalServerError, "internal server error")
        }
    }
    return apiSuccess(c, http.StatusOK, echo.Map{"reservationId": id, "status": model.ReservationCancelled})
}

// validateCommon applies the request rules shared by both booking
// endpoints: every field present, a positive passenger count and a
// travel date inside the booking window.  It returns the parsed date
// or a message describing the first violation.
func (h *ReservationHandler) validateCommon(origin, destination string, passengerCount int, travelDate string) (time.Time, string) {
    if origin == "" {
        return time.Time{}, "mandatory parameter origin is not specified"
    }
    if destination == "" {
        return time.Time{}, "mandatory parameter destination is not specified"
    }
    if passengerCount <= 0 {
        return time.Time{}, fmt.Sprintf("passenger count must be greater than zero, provided: %d", passengerCount)
    }
    if travelDate == "" {
        return time.Time{}, "mandatory parameter travelDate is not specified"
    }
    date, err := utils.ParseTravelDate(travelDate)
    if err != nil {
        return time.Time{}, "invalid date format, please provide the date in YYYY-MM-DD format"
    }
    now := time.Now().UTC()
    today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
    start := today.AddDate(0, 0, h.MinReservationDays)
    end := today.AddDate(0, 0, h.MaxReservationDays)
    if date.Before(start) || date.After(end) {
        return time.Time{}, fmt.Sprintf("reservations are only allowed from %s to %s",
            utils.FormatTravelDate(start), utils.FormatTravelDate(end))
    }
    return date, ""
}

// reservationView shapes a ledger record for JSON responses.
func reservationView(r model.Reservation) echo.Map {
    return echo.Map{
        "reservationId": r.ReservationID,
        "origin":        r.Route.Origin,
        "destination":   r.Route.Destination,
        "travelDate":    r.TravelDate,
        "seats":         r.Seats,
        "totalPrice":    r.TotalPrice,
        "status":        r.Status,
        "departureTime": r.DepartureTime.Format(time.RFC3339),
        "arrivalTime":   r.ArrivalTime.Format(time.RFC3339),
    }
}
