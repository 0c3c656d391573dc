package http

import (
	"github.com/gin-gonic/gin"

	"gcal-relay/internal/middleware"
)

// RegisterRoutes maps the /events/ endpoints. Every route requires an API key.
// The engine must route on the raw path without unescaping (see middleware.RawPath);
// handlers decode ids themselves.
func RegisterRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.GET("/events/", mw.Auth(), h.List)
	r.POST("/events/:calendarId/create/", mw.Auth(), h.Create)
	r.PUT("/events/:calendarId/:eventId/edit/", mw.Auth(), h.Edit)
	r.DELETE("/events/:calendarId/:eventId/delete/", mw.Auth(), h.Delete)
}
