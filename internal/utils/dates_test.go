package utils

import (
    "testing"
    "time"
)

func TestParseTravelDate(t *testing.T) {
    d, err := ParseTravelDate("2026-09-01")
    if err != nil {
        t.Fatalf("parse: %v", err)
    }
    if d.Year() != 2026 || d.Month() != time.September || d.Day() != 1 {
        t.Errorf("parsed %v", d)
    }
    if FormatTravelDate(d) != "2026-09-01" {
        t.Errorf("round trip produced %q", FormatTravelDate(d))
    }
}

func TestParseTravelDateRejectsOtherFormats(t *testing.T) {
    for _, s := range []string{"", "01-09-2026", "2026/09/01", "tomorrow", "2026-13-01"} {
        if _, err := ParseTravelDate(s); err == nil {
            t.Errorf("ParseTravelDate(%q) should fail", s)
        }
    }
}
