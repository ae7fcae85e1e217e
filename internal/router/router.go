package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListCategories(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetAttendees(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetAllBookings(c *ginext.Context)
	GetMyBookings(c *ginext.Context)
	GetMyStats(c *ginext.Context)
	GetPlatformStats(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, adminOnly ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events (catalog reads are public)
		api.GET("/events", h.ListEvents)
		api.GET("/events/categories/list", h.ListCategories)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/availability", h.GetAvailability)
		api.POST("/events", auth, adminOnly, h.CreateEvent)
		api.PUT("/events/:id", auth, adminOnly, h.UpdateEvent)
		api.DELETE("/events/:id", auth, adminOnly, h.DeleteEvent)
		api.GET("/events/:id/attendees", auth, adminOnly, h.GetAttendees)

		// Bookings
		api.GET("/bookings", auth, adminOnly, h.GetAllBookings)
		api.POST("/bookings", auth, h.CreateBooking)
		api.PUT("/bookings/:id/cancel", auth, h.CancelBooking)
		api.GET("/bookings/my", auth, h.GetMyBookings)
		api.GET("/bookings/my/stats", auth, h.GetMyStats)
		api.GET("/bookings/stats", auth, adminOnly, h.GetPlatformStats)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
