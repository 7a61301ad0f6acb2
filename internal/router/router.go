package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/iliyamo/railway-ticket-reservation/internal/handler"    // handlers implementing the endpoints
	"github.com/iliyamo/railway-ticket-reservation/internal/middleware" // JWT and rate limit middleware
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints.  Login and register are
// open; the session profile endpoints live under /v1 behind the JWT
// middleware.  There is no role middleware: a valid token is the only gate,
// and the admin flag is deliberately just a client-side view toggle.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/register", a.Register)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.POST("/auth/logout", a.Logout)
	auth.GET("/me", a.Me)
	auth.POST("/me/admin-mode", a.ToggleAdminMode)
}

// RegisterSearch registers the unauthenticated browse endpoints: the
// station directory, the timetable and the train search.  The search route
// additionally runs the rate limiter since it is the one endpoint guests
// can hammer.
func RegisterSearch(e *echo.Echo, s *handler.SearchHandler, limiter echo.MiddlewareFunc) {
	e.GET("/v1/stations", s.GetStations)
	e.GET("/v1/trains", s.GetTrains)
	e.GET("/v1/trains/:id", s.GetTrain)
	e.GET("/v1/trains/search", s.Search, limiter)
}

// RegisterBooking registers the booking lifecycle endpoints behind JWT
// auth: list, lookups, cancellation, the draft staging step and the payment
// commit.  Payment also runs the rate limiter.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, p *handler.PaymentHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))

	// Draft routes must be registered before /bookings/:id so "draft" is
	// not captured as an id.
	auth.PUT("/bookings/draft", b.StageDraft)
	auth.GET("/bookings/draft", b.GetDraft)
	auth.DELETE("/bookings/draft", b.ClearDraft)

	auth.GET("/bookings", b.List)
	auth.GET("/bookings/:id", b.Get)
	auth.GET("/bookings/pnr/:pnr", b.GetByPNR)
	auth.POST("/bookings/:id/cancel", b.Cancel)

	auth.POST("/payments", p.Process, limiter)
	auth.GET("/payments/state", p.State)
}
