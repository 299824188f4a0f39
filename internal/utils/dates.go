// Package utils holds small helpers shared across the service.
package utils

import "time"

// TravelDateLayout is the wire format for travel dates.
const TravelDateLayout = "2006-01-02"

// ParseTravelDate parses an ISO YYYY-MM-DD travel date.  The result
// is midnight UTC of that day.
func ParseTravelDate(s string) (time.Time, error) {
    return time.Parse(TravelDateLayout, s)
}

// FormatTravelDate renders a timestamp as an ISO travel date.  The
// inventory engine keys its buckets by this string.
func FormatTravelDate(t time.Time) string {
    return t.Format(TravelDateLayout)
}
