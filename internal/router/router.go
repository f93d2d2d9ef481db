package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handles routing

	"github.com/iliyamo/cinema-commerce-api/internal/handler"    // handlers implement the endpoint logic
	"github.com/iliyamo/cinema-commerce-api/internal/middleware" // middleware for JWT authentication and caching
)

// Handlers groups every handler the router wires up.  All fields except
// Health-related ones must be non-nil.
type Handlers struct {
	Auth         *handler.AuthHandler
	Orders       *handler.OrderHandler
	Products     *handler.ProductHandler
	Reservations *handler.ReservationHandler
	Schedules    *handler.ScheduleHandler
	Movies       *handler.MovieHandler
}

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the unauthenticated account endpoints under
// /v1/auth.  Login is where the tokens required by every protected
// route are minted.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterAPI registers all entity endpoints under /v1 behind the JWT
// middleware.  The cache middleware is applied per GET route so writes
// never pass through the cache path.
func RegisterAPI(e *echo.Echo, jwtSecret string, cache echo.MiddlewareFunc, h Handlers) {
	api := e.Group("/v1")
	api.Use(middleware.JWTAuth(jwtSecret))

	// Orders
	api.POST("/orders", h.Orders.CreateOrder)
	api.GET("/orders", h.Orders.ListOrdersByUser, cache)

	// Products
	api.GET("/products", h.Products.ListProducts, cache)
	api.POST("/products", h.Products.AddProduct)
	api.DELETE("/products/:product_id", h.Products.DeleteProduct)

	// Reservations
	api.GET("/reservations", h.Reservations.ListReservationsByEmail, cache)
	api.POST("/reservations", h.Reservations.CreateReservation)

	// Schedules
	api.GET("/schedules", h.Schedules.ListSchedules, cache)
	api.POST("/schedules", h.Schedules.CreateSchedule)

	// Movies
	api.GET("/movies", h.Movies.ListMovies, cache)
	api.GET("/movies/:movie_id", h.Movies.GetMovie, cache)
	api.POST("/movies", h.Movies.AddMovie)
}
