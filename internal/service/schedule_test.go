package service

import (
    "testing"
    "time"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

var travelDay = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

func mustRoute(t *testing.T, c *catalog.Catalog, origin, destination string) model.Route {
    t.Helper()
    r, err := c.ResolveRoute(origin, destination)
    if err != nil {
        t.Fatalf("resolve %s->%s: %v", origin, destination, err)
    }
    return r
}

func TestDepartureFromFirstStopIsBaseHour(t *testing.T) {
    c := catalog.New()
    dep := EstimatedDeparture(c, mustRoute(t, c, "A", "D"), travelDay)
    want := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
    if !dep.Equal(want) {
        t.Errorf("departure = %v, want %v", dep, want)
    }
}

func TestDepartureFromIntermediateStopAddsLegDuration(t *testing.T) {
    c := catalog.New()
    // The outbound run reaches B 90 minutes after leaving A at 09:00.
    dep := EstimatedDeparture(c, mustRoute(t, c, "B", "D"), travelDay)
    want := time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)
    if !dep.Equal(want) {
        t.Errorf("departure = %v, want %v", dep, want)
    }
}

func TestReturnDepartureFromLastStopIsReturnHour(t *testing.T) {
    c := catalog.New()
    dep := EstimatedDeparture(c, mustRoute(t, c, "D", "A"), travelDay)
    want := time.Date(2026, time.September, 1, 14, 0, 0, 0, time.UTC)
    if !dep.Equal(want) {
        t.Errorf("departure = %v, want %v", dep, want)
    }
}

func TestReturnDepartureFromIntermediateStop(t *testing.T) {
    c := catalog.New()
    // The return run leaves D at 14:00 and reaches C 90 minutes later.
    dep := EstimatedDeparture(c, mustRoute(t, c, "C", "A"), travelDay)
    want := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC)
    if !dep.Equal(want) {
        t.Errorf("departure = %v, want %v", dep, want)
    }
}

func TestArrivalAddsRouteDuration(t *testing.T) {
    c := catalog.New()
    for _, tc := range []struct {
        origin, destination string
        wantMinutes         int
    }{
        {"A", "B", 90},
        {"A", "D", 240},
        {"C", "A", 180}, // return route, forward key A-C
    } {
        route := mustRoute(t, c, tc.origin, tc.destination)
        dep := EstimatedDeparture(c, route, travelDay)
        arr := EstimatedArrival(c, dep, route)
        if got := int(arr.Sub(dep).Minutes()); got != tc.wantMinutes {
            t.Errorf("%s->%s ride = %d minutes, want %d", tc.origin, tc.destination, got, tc.wantMinutes)
        }
    }
}

func TestArrivalFallsBackToDefaultDuration(t *testing.T) {
    c := catalog.New()
    ghost := model.Route{RouteID: "XY", Origin: "X", Destination: "Y"}
    dep := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
    arr := EstimatedArrival(c, dep, ghost)
    if got := int(arr.Sub(dep).Minutes()); got != catalog.DefaultDurationMinutes {
        t.Errorf("default ride = %d minutes, want %d", got, catalog.DefaultDurationMinutes)
    }
}
