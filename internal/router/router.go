package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	CreateRestaurant(c *ginext.Context)
	GetRestaurant(c *ginext.Context)
	ListRestaurants(c *ginext.Context)
	ReplaceTables(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListRestaurantBookings(c *ginext.Context)
}

// InitRouter wires the HTTP surface. auth resolves the current user and
// requireStaff additionally gates manager-only routes.
func InitRouter(mode string, h Handler, auth, requireStaff ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Restaurants
		api.GET("/restaurants", h.ListRestaurants)
		api.GET("/restaurants/:id", h.GetRestaurant)
		api.GET("/restaurants/:id/availability", h.GetAvailability)
		api.POST("/restaurants", auth, requireStaff, h.CreateRestaurant)
		api.PUT("/restaurants/:id/tables", auth, requireStaff, h.ReplaceTables)
		api.GET("/restaurants/:id/bookings", auth, requireStaff, h.ListRestaurantBookings)

		// Bookings
		api.POST("/bookings", auth, h.CreateBooking)
		api.GET("/bookings", auth, h.ListMyBookings)
		api.DELETE("/bookings/:id", auth, h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
