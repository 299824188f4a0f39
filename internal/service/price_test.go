package service

import (
    "testing"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

func TestCalculatePriceIsLinearInPassengers(t *testing.T) {
    c := catalog.New()
    route, err := c.ResolveRoute("A", "B")
    if err != nil {
        t.Fatalf("resolve: %v", err)
    }
    single := CalculatePrice(c, route, 1)
    if single.PricePerPassenger != 50 {
        t.Fatalf("A->B fare = %d, want 50", single.PricePerPassenger)
    }
    for k := 0; k <= 5; k++ {
        p := CalculatePrice(c, route, k)
        if p.TotalPrice != int64(k)*single.TotalPrice {
            t.Errorf("total for %d passengers = %d, want %d", k, p.TotalPrice, int64(k)*single.TotalPrice)
        }
        if p.Currency != Currency {
            t.Errorf("currency = %q, want %q", p.Currency, Currency)
        }
    }
}

func TestCalculatePriceReturnRouteUsesForwardFare(t *testing.T) {
    c := catalog.New()
    back, err := c.ResolveRoute("C", "A")
    if err != nil {
        t.Fatalf("resolve: %v", err)
    }
    p := CalculatePrice(c, back, 2)
    if p.PricePerPassenger != 100 || p.TotalPrice != 200 {
        t.Errorf("C->A pricing = %+v, want per=100 total=200", p)
    }
}

func TestCalculatePriceUnknownRouteIsZero(t *testing.T) {
    c := catalog.New()
    ghost := model.Route{RouteID: "XY", Origin: "X", Destination: "Y"}
    p := CalculatePrice(c, ghost, 3)
    if p.PricePerPassenger != 0 || p.TotalPrice != 0 {
        t.Errorf("unpriced route produced %+v", p)
    }
}
