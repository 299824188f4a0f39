// Package router wires HTTP paths to their handlers and attaches the
// rate-limiting and caching middleware.
package router

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/bus-seat-reservation/internal/config"
    "github.com/iliyamo/bus-seat-reservation/internal/handler"
    "github.com/iliyamo/bus-seat-reservation/internal/middleware"
)

// RegisterRoutes registers every endpoint of the service on the
// provided Echo instance.  The two booking operations keep their
// historical top-level paths; read-only catalog browse endpoints live
// under /v1 behind the response cache.  A nil Redis client turns the
// limiter and the cache into pass-throughs.
func RegisterRoutes(e *echo.Echo, rh *handler.ReservationHandler, ch *handler.CatalogHandler, rdb *redis.Client) {
    e.GET("/healthz", handler.Health)

    rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    e.GET("/check-availability", rh.CheckAvailability, rateLimit)
    e.POST("/reserve", rh.Reserve, rateLimit)

    v1 := e.Group("/v1")
    v1.GET("/reservations/:id", rh.GetReservation, rateLimit)
    v1.DELETE("/reservations/:id", rh.CancelReservation, rateLimit)

    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
    v1.GET("/stops", ch.GetStops, cache)
    v1.GET("/routes", ch.GetRoutes, cache)
    v1.GET("/routes/:origin/:destination", ch.GetRoute, cache)
}
