package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
    "github.com/iliyamo/bus-seat-reservation/internal/model"
    "github.com/iliyamo/bus-seat-reservation/internal/service"
)

// CatalogHandler serves the static network data: stops, routes, fares
// and travel times.  Responses never change at runtime, so the router
// puts the Redis response cache in front of these endpoints.
type CatalogHandler struct {
    Catalog *catalog.Catalog
}

// NewCatalogHandler constructs the handler.  The catalog must be
// non-nil.
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
    if c == nil {
        panic("nil catalog passed to NewCatalogHandler")
    }
    return &CatalogHandler{Catalog: c}
}

// GetStops handles GET /v1/stops and returns the ordered stop list.
func (h *CatalogHandler) GetStops(c echo.Context) error {
    return apiSuccess(c, http.StatusOK, echo.Map{"stops": h.Catalog.Stops()})
}

// GetRoutes handles GET /v1/routes.  Both directions are listed,
// forward routes first, each with its fare and travel time.
func (h *CatalogHandler) GetRoutes(c echo.Context) error {
    routes := h.Catalog.Routes()
    views := make([]echo.Map, 0, len(routes))
    for _, r := range routes {
        views = append(views, routeView(h.Catalog, r))
    }
    return apiSuccess(c, http.StatusOK, echo.Map{"routes": views})
}

// GetRoute handles GET /v1/routes/:origin/:destination.
func (h *CatalogHandler) GetRoute(c echo.Context) error {
    route, err := h.Catalog.ResolveRoute(c.Param("origin"), c.Param("destination"))
    if err != nil {
        return apiError(c, http.StatusNotFound, "no route between the given stops")
    }
    return apiSuccess(c, http.StatusOK, routeView(h.Catalog, route))
}

func routeView(cat *catalog.Catalog, r model.Route) echo.Map {
    return echo.Map{
        "routeId":           r.RouteID,
        "origin":            r.Origin,
        "destination":       r.Destination,
        "isReturn":          r.IsReturn,
        "pricePerPassenger": cat.PriceFor(r),
        "currency":          service.Currency,
        "durationMinutes":   cat.RouteDuration(r),
    }
}
