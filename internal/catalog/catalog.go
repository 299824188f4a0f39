// Package catalog holds the static definition of the bus network: the
// ordered stop list, the routes derived from it, the fare and
// travel-duration tables and the base departure hours.  A Catalog is
// built once at startup and shared read-only by every other component;
// nothing in this package mutates after New returns.
package catalog

import (
    "errors"

    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

// DefaultDurationMinutes is the travel time assumed for a route whose
// canonical key has no entry in the duration table.
const DefaultDurationMinutes = 120

// ErrRouteNotFound is returned by ResolveRoute when the origin and
// destination do not name any route on the network.  Handlers should
// translate this into an HTTP 400 response.
var ErrRouteNotFound = errors.New("no route exists between the given origin and destination")

// Catalog is the immutable network definition.  The fare and duration
// tables are indexed by canonical keys: "origin-destination" in forward
// stop order, shared by both directions of travel.
type Catalog struct {
    stops        []string
    routes       []model.Route // forward routes, in network stop order
    returnRoutes []model.Route // reversed counterparts of the above

    prices    map[string]int64 // canonical key -> fare per passenger
    durations map[string]int   // canonical key -> travel time in minutes

    departureHour       int // outbound run leaves the first stop at this hour
    returnDepartureHour int // return run leaves the last stop at this hour
}

// New builds the fixed four-stop network.  For every ordered pair of
// stops it derives one forward and one return route; the fare and
// duration tables cover the forward keys only and serve both
// directions.
func New() *Catalog {
    c := &Catalog{
        stops: []string{"A", "B", "C", "D"},
        prices: map[string]int64{
            "A-B": 50,
            "A-C": 100,
            "A-D": 150,
            "B-C": 50,
            "B-D": 100,
            "C-D": 50,
        },
        durations: map[string]int{
            "A-B": 90,
            "A-C": 180,
            "A-D": 240,
            "B-C": 120,
            "B-D": 180,
            "C-D": 90,
        },
        departureHour:       9,
        returnDepartureHour: 14,
    }
    for i := 0; i < len(c.stops)-1; i++ {
        for j := i + 1; j < len(c.stops); j++ {
            c.routes = append(c.routes, model.Route{
                RouteID:     c.stops[i] + c.stops[j],
                Origin:      c.stops[i],
                Destination: c.stops[j],
            })
            c.returnRoutes = append(c.returnRoutes, model.Route{
                RouteID:     c.stops[j] + c.stops[i],
                Origin:      c.stops[j],
                Destination: c.stops[i],
                IsReturn:    true,
            })
        }
    }
    return c
}

// ResolveRoute looks up the route matching an exact (origin,
// destination) pair.  The forward set is checked before the return
// set.  A pair that matches neither yields ErrRouteNotFound.
func (c *Catalog) ResolveRoute(origin, destination string) (model.Route, error) {
    for _, r := range c.routes {
        if r.Origin == origin && r.Destination == destination {
            return r, nil
        }
    }
    for _, r := range c.returnRoutes {
        if r.Origin == origin && r.Destination == destination {
            return r, nil
        }
    }
    return model.Route{}, ErrRouteNotFound
}

// CanonicalKey builds the "origin-destination" key in forward stop
// order.  Return routes swap their endpoints so that both directions
// index the same fare and duration entries.
func CanonicalKey(r model.Route) string {
    if r.IsReturn {
        return r.Destination + "-" + r.Origin
    }
    return r.Origin + "-" + r.Destination
}

// PriceFor returns the per-passenger fare for the route's canonical
// key.  A key missing from the table prices as zero rather than
// failing the lookup.
func (c *Catalog) PriceFor(r model.Route) int64 {
    return c.prices[CanonicalKey(r)]
}

// Duration reports the travel time in minutes for a forward-order
// stop-pair key such as "A-C", and whether the table has an entry for
// it.  Callers choose their own fallback; the schedule calculator
// treats an unknown intermediate leg as adding no time, while route
// arrival estimates fall back to DefaultDurationMinutes.
func (c *Catalog) Duration(key string) (int, bool) {
    d, ok := c.durations[key]
    return d, ok
}

// RouteDuration returns the route's own travel time via its canonical
// key, or DefaultDurationMinutes when the table has no entry.
func (c *Catalog) RouteDuration(r model.Route) int {
    if d, ok := c.durations[CanonicalKey(r)]; ok {
        return d
    }
    return DefaultDurationMinutes
}

// Stops returns the ordered stop list.  The slice is a copy; the
// network itself cannot be altered through it.
func (c *Catalog) Stops() []string {
    return append([]string(nil), c.stops...)
}

// FirstStop is the origin of the outbound run.
func (c *Catalog) FirstStop() string { return c.stops[0] }

// LastStop is the origin of the return run.
func (c *Catalog) LastStop() string { return c.stops[len(c.stops)-1] }

// Routes returns every route on the network, forward routes first.
func (c *Catalog) Routes() []model.Route {
    all := make([]model.Route, 0, len(c.routes)+len(c.returnRoutes))
    all = append(all, c.routes...)
    all = append(all, c.returnRoutes...)
    return all
}

// DepartureHour is the hour of day the outbound run leaves FirstStop.
func (c *Catalog) DepartureHour() int { return c.departureHour }

// ReturnDepartureHour is the hour of day the return run leaves LastStop.
func (c *Catalog) ReturnDepartureHour() int { return c.returnDepartureHour }
