package handler // HTTP handlers for the KPA form data API

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root handles GET / and returns service metadata with the endpoint map.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "KPA Form Data API - Railway Operations",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": echo.Map{
			"wheel_specs_post": "/api/forms/wheel-specifications",
			"wheel_specs_get":  "/api/forms/wheel-specifications",
			"bogie_checksheet": "/api/forms/bogie-checksheet",
			"login":            "/api/auth/login",
		},
	})
}
