package service

import (
    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

// Currency is the fare currency for the whole network.
const Currency = "LKR"

// CalculatePrice derives the fare for carrying passengerCount
// passengers over the route.  The per-passenger fare comes from the
// catalog's canonical-key table (zero when the table has no entry)
// and the total is strictly linear in the passenger count.  Pure
// computation; nothing is stored.
func CalculatePrice(c *catalog.Catalog, route model.Route, passengerCount int) model.PricingInfo {
    perPassenger := c.PriceFor(route)
    return model.PricingInfo{
        PricePerPassenger: perPassenger,
        TotalPrice:        perPassenger * int64(passengerCount),
        Currency:          Currency,
    }
}
