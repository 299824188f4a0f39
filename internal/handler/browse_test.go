package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/bus-seat-reservation/internal/catalog"
)

func TestGetStops(t *testing.T) {
    h := NewCatalogHandler(catalog.New())
    req := httptest.NewRequest(http.MethodGet, "/v1/stops", nil)
    rec := httptest.NewRecorder()
    if err := h.GetStops(echo.New().NewContext(req, rec)); err != nil {
        t.Fatalf("handler: %v", err)
    }
    var body map[string]any
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("body: %v", err)
    }
    stops := body["data"].(map[string]any)["stops"].([]any)
    if len(stops) != 4 || stops[0] != "A" || stops[3] != "D" {
        t.Errorf("stops = %v", stops)
    }
}

func TestGetRoutesListsBothDirections(t *testing.T) {
    h := NewCatalogHandler(catalog.New())
    req := httptest.NewRequest(http.MethodGet, "/v1/routes", nil)
    rec := httptest.NewRecorder()
    if err := h.GetRoutes(echo.New().NewContext(req, rec)); err != nil {
        t.Fatalf("handler: %v", err)
    }
    var body map[string]any
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("body: %v", err)
    }
    routes := body["data"].(map[string]any)["routes"].([]any)
    if len(routes) != 12 { // 6 pairs, both directions
        t.Fatalf("route count = %d, want 12", len(routes))
    }
}

func TestGetRouteDetail(t *testing.T) {
    h := NewCatalogHandler(catalog.New())
    req := httptest.NewRequest(http.MethodGet, "/v1/routes/C/A", nil)
    rec := httptest.NewRecorder()
    c := echo.New().NewContext(req, rec)
    c.SetParamNames("origin", "destination")
    c.SetParamValues("C", "A")
    if err := h.GetRoute(c); err != nil {
        t.Fatalf("handler: %v", err)
    }
    var body map[string]any
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("body: %v", err)
    }
    data := body["data"].(map[string]any)
    if data["isReturn"] != true || data["pricePerPassenger"].(float64) != 100 {
        t.Errorf("route detail = %v", data)
    }
}

func TestGetRouteUnknownPair(t *testing.T) {
    h := NewCatalogHandler(catalog.New())
    req := httptest.NewRequest(http.MethodGet, "/v1/routes/A/A", nil)
    rec := httptest.NewRecorder()
    c := echo.New().NewContext(req, rec)
    c.SetParamNames("origin", "destination")
    c.SetParamValues("A", "A")
    if err := h.GetRoute(c); err != nil {
        t.Fatalf("handler: %v", err)
    }
    if rec.Code != http.StatusNotFound {
        t.Errorf("status = %d, want 404", rec.Code)
    }
}
