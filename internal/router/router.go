package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/kpa-form-data/internal/handler"
	"github.com/iliyamo/kpa-form-data/internal/middleware"
)

// RegisterRoutes registers the unauthenticated service endpoints: the root
// metadata document and the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the form and auth endpoints under the /api prefix.
// Everything except /api/auth/me is open; the form endpoints perform no
// authentication. jwtSecret is used to verify bearer tokens on the protected
// route.
func RegisterAPI(e *echo.Echo, f *handler.FormHandler, a *handler.AuthHandler, jwtSecret string) {
	api := e.Group("/api")

	api.POST("/forms/wheel-specifications", f.CreateWheelSpec)
	api.GET("/forms/wheel-specifications", f.ListWheelSpecs)
	api.POST("/forms/bogie-checksheet", f.CreateBogieChecksheet)

	api.POST("/auth/login", a.Login)
	api.GET("/auth/me", a.Me, middleware.JWTAuth(jwtSecret))
}
