package model

// Route describes one direction of travel between two stops on the
// network.  Routes are derived from the ordered stop list at startup
// and never change afterwards: every unordered pair of stops yields
// exactly one forward route and one return route.
//
// Fields:
//  RouteID     – short identifier built from the stop codes (e.g. "AB").
//  Origin      – stop where the journey begins.
//  Destination – stop where the journey ends.
//  IsReturn    – true when the route runs against the network stop order.
type Route struct {
    RouteID     string `json:"routeId"`
    Origin      string `json:"origin"`
    Destination string `json:"destination"`
    IsReturn    bool   `json:"isReturn"`
}
