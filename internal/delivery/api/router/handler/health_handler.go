package handler

import (
	"net/http"

	"gadgetshop/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root answers GET / with a plain liveness string.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Server is running...!")
}

// HealthCheck answers GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
