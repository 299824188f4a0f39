// Package handler contains the HTTP handlers.  Handlers own request
// parsing and shape validation and translate the service's sentinel
// errors into status codes; everything of algorithmic interest
// happens below them.
package handler

import (
    "github.com/labstack/echo/v4"
)

// Every endpoint answers inside the same envelope: {"success": bool}
// plus either "data", an "error" string for request faults, or a
// "message" for expected negative outcomes.

func apiSuccess(c echo.Context, status int, data any) error {
    return c.JSON(status, echo.Map{"success": true, "data": data})
}

func apiError(c echo.Context, status int, message string) error {
    return c.JSON(status, echo.Map{"success": false, "error": message})
}
