package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public auth routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	a := r.Group("/auth")
	{
		a.POST("/signup", h.Signup)
		a.POST("/login", h.Login)
	}
}
