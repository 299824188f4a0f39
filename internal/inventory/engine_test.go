package inventory

import (
    "errors"
    "strings"
    "sync"
    "testing"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
)

var (
    forwardAB = model.Route{RouteID: "AB", Origin: "A", Destination: "B"}
    returnCA  = model.Route{RouteID: "CA", Origin: "C", Destination: "A", IsReturn: true}
)

func TestAllocateIsDeterministicAndDisjoint(t *testing.T) {
    e := NewEngine(catalog.NewSeatTemplateLayout(1, "A", "B", "C", "D"))

    first, err := e.Allocate(forwardAB, "2026-09-01", 2)
    if err != nil {
        t.Fatalf("first allocate: %v", err)
    }
    if first[0] != "1A" || first[1] != "1B" {
        t.Errorf("first allocation = %v, want [1A 1B]", first)
    }

    second, err := e.Allocate(forwardAB, "2026-09-01", 2)
    if err != nil {
        t.Fatalf("second allocate: %v", err)
    }
    if second[0] != "1C" || second[1] != "1D" {
        t.Errorf("second allocation = %v, want [1C 1D]", second)
    }
}

func TestAllocateInsufficientCapacityLeavesStateUnchanged(t *testing.T) {
    e := NewEngine(catalog.NewSeatTemplateLayout(1, "A", "B", "C", "D"))
    date := "2026-09-02"

    if _, err := e.Allocate(forwardAB, date, 3); err != nil {
        t.Fatalf("seed allocate: %v", err)
    }
    before := e.AvailableSeats(forwardAB, date, 10)

    _, err := e.Allocate(forwardAB, date, 2)
    if !errors.Is(err, ErrNotEnoughSeats) {
        t.Fatalf("err = %v, want ErrNotEnoughSeats", err)
    }
    if !strings.Contains(err.Error(), date) {
        t.Errorf("error %q does not name the travel date", err.Error())
    }

    after := e.AvailableSeats(forwardAB, date, 10)
    if len(after) != len(before) {
        t.Fatalf("failed allocate changed state: %v -> %v", before, after)
    }
    for i := range before {
        if before[i] != after[i] {
            t.Fatalf("failed allocate changed state: %v -> %v", before, after)
        }
    }
}

func TestAvailableSeatsDoesNotBook(t *testing.T) {
    e := NewEngine(catalog.NewSeatTemplateLayout(1, "A", "B"))
    date := "2026-09-03"

    for i := 0; i < 3; i++ {
        free := e.AvailableSeats(forwardAB, date, 2)
        if len(free) != 2 {
            t.Fatalf("query %d: %d seats free, want 2", i, len(free))
        }
    }
}

func TestDirectionsUseSeparateBuckets(t *testing.T) {
    e := NewEngine(catalog.NewSeatTemplateLayout(1, "A"))
    date := "2026-09-04"

    out, err := e.Allocate(forwardAB, date, 1)
    if err != nil {
        t.Fatalf("outbound allocate: %v", err)
    }
    back, err := e.Allocate(returnCA, date, 1)
    if err != nil {
        t.Fatalf("return allocate on the same date should not contend: %v", err)
    }
    if out[0] != "1A" || back[0] != "1A" {
        t.Errorf("each direction should hand out its own 1A: got %v and %v", out, back)
    }
}

func TestDatesUseSeparateBuckets(t *testing.T) {
    e := NewEngine(catalog.NewSeatTemplateLayout(1, "A"))
    if _, err := e.Allocate(forwardAB, "2026-09-05", 1); err != nil {
        t.Fatalf("first date: %v", err)
    }
    if _, err := e.Allocate(forwardAB, "2026-09-06", 1); err != nil {
        t.Fatalf("second date: %v", err)
    }
}

func TestReleaseReturnsSeatsToThePool(t *testing.T) {
    e := NewEngine(catalog.NewSeatTemplateLayout(1, "A", "B"))
    date := "2026-09-07"

    seats, err := e.Allocate(forwardAB, date, 2)
    if err != nil {
        t.Fatalf("allocate: %v", err)
    }
    if _, err := e.Allocate(forwardAB, date, 1); !errors.Is(err, ErrNotEnoughSeats) {
        t.Fatalf("bus should be full, err = %v", err)
    }

    e.Release(forwardAB, date, seats)
    again, err := e.Allocate(forwardAB, date, 2)
    if err != nil {
        t.Fatalf("allocate after release: %v", err)
    }
    if again[0] != "1A" || again[1] != "1B" {
        t.Errorf("released seats not reusable in order: %v", again)
    }
}

// Concurrent allocations requesting more seats in total than exist
// must end with no seat handed out twice and no more successes than
// the template can carry.
func TestConcurrentAllocationsNeverDoubleBook(t *testing.T) {
    tpl := catalog.NewSeatTemplate() // 40 seats
    e := NewEngine(tpl)
    date := "2026-09-08"

    const callers = 30
    const perCall = 2 // 60 requested > 40 available

    var wg sync.WaitGroup
    results := make(chan []string, callers)
    for i := 0; i < callers; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            seats, err := e.Allocate(forwardAB, date, perCall)
            if err == nil {
                results <- seats
            }
        }()
    }
    wg.Wait()
    close(results)

    seen := make(map[string]bool)
    successes := 0
    for seats := range results {
        successes++
        if len(seats) != perCall {
            t.Errorf("partial allocation observed: %v", seats)
        }
        for _, s := range seats {
            if seen[s] {
                t.Errorf("seat %s allocated twice", s)
            }
            seen[s] = true
        }
    }
    if successes != tpl.Size()/perCall {
        t.Errorf("successes = %d, want %d", successes, tpl.Size()/perCall)
    }
    if len(e.AvailableSeats(forwardAB, date, tpl.Size())) != 0 {
        t.Error("seats left over after capacity was exhausted")
    }
}
