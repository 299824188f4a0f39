package model

// PricingInfo is the computed fare for a journey.  It is derived on
// demand by the price calculator and never stored.
//
// Fields:
//  PricePerPassenger – fare for a single passenger on the route.
//  TotalPrice        – PricePerPassenger multiplied by the passenger count.
//  Currency          – ISO 4217 code, fixed for the whole network.
type PricingInfo struct {
    PricePerPassenger int64  `json:"pricePerPassenger"`
    TotalPrice        int64  `json:"totalPrice"`
    Currency          string `json:"currency"`
}
