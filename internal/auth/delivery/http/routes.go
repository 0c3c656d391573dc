package http

import (
	"github.com/gin-gonic/gin"

	"gcal-relay/internal/middleware"
)

// RegisterRoutes maps the login and logout endpoints. Only logout needs an API key.
func RegisterRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.GET("/login/", h.Login)
	r.POST("/login/", h.Login)
	r.POST("/logout/", mw.Auth(), h.Logout)
}
