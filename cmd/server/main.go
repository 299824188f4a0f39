package main

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/config"
    "github.com/iliyamo/bus-seat-reservation/internal/handler"
    "github.com/iliyamo/bus-seat-reservation/internal/inventory"
    "github.com/iliyamo/bus-seat-reservation/internal/ledger"
    "github.com/iliyamo/bus-seat-reservation/internal/queue"
    "github.com/iliyamo/bus-seat-reservation/internal/router"
    "github.com/iliyamo/bus-seat-reservation/internal/service"
)

func main() {
    // A .env file is optional; deployments set the environment directly.
    _ = godotenv.Load()
    cfg := config.Load()

    // The catalog is built once and shared read-only everywhere.
    cat := catalog.New()
    engine := inventory.NewEngine(catalog.NewSeatTemplate())
    book := ledger.New()
    svc := service.NewReservationService(cat, engine, book, queue.PublishReservationConfirmed)

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Printf("redis unavailable; rate limiting and response caching disabled")
    }

    e := echo.New()
    router.RegisterRoutes(e,
        handler.NewReservationHandler(svc, cfg.MinReservationDays, cfg.MaxReservationDays),
        handler.NewCatalogHandler(cat),
        rdb,
    )

    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("reservation consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
