package http

import (
	"github.com/gin-gonic/gin"

	"meeting-room-booking/internal/middleware"
)

// RegisterRoutes maps the room booking routes. All of them require a session.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.GET("/rooms", mw.Auth(), h.ListEvents)
	r.GET("/available-rooms", mw.Auth(), h.AvailableRooms)
	r.GET("/highest-seat-count", mw.Auth(), h.HighestSeatCount)
	r.GET("/floors", mw.Auth(), h.ListFloors)

	room := r.Group("/room", mw.Auth())
	{
		room.POST("", h.CreateEvent)
		room.PUT("", h.UpdateEvent)
		room.DELETE("", h.DeleteEvent)
	}
}
