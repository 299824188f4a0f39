package service

import (
    "time"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

// EstimatedDeparture derives when the bus leaves the route's origin
// on the given travel date.  The network runs a single bus on a loop:
// one outbound run leaving the first stop at the outbound base hour
// and one return run leaving the last stop at the return base hour.
// When the origin is the run's base stop the base time is returned
// as-is; for an intermediate origin the base time is advanced by the
// duration of the leg between the base stop and the origin, so
// intermediate departures follow from cumulative leg durations rather
// than a stored per-stop timetable.
func EstimatedDeparture(c *catalog.Catalog, route model.Route, travelDate time.Time) time.Time {
    var base time.Time
    var baseStop, legKey string
    if !route.IsReturn {
        base = atHour(travelDate, c.DepartureHour())
        baseStop = c.FirstStop()
        legKey = baseStop + "-" + route.Origin
    } else {
        base = atHour(travelDate, c.ReturnDepartureHour())
        baseStop = c.LastStop()
        legKey = route.Origin + "-" + baseStop
    }
    if route.Origin == baseStop {
        return base
    }
    minutes, _ := c.Duration(legKey) // an unknown leg adds no time
    return base.Add(time.Duration(minutes) * time.Minute)
}

// EstimatedArrival adds the route's own travel duration to the
// departure time.  The duration comes from the catalog's canonical
// key, falling back to the default when the table has no entry.
func EstimatedArrival(c *catalog.Catalog, departure time.Time, route model.Route) time.Time {
    return departure.Add(time.Duration(c.RouteDuration(route)) * time.Minute)
}

func atHour(day time.Time, hour int) time.Time {
    return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
