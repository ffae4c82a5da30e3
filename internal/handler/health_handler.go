package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health responds with service status for load balancer checks
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"service": "tracking-service",
	})
}
