package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the admin-only routes. The group is expected to
// already run JWTAuth; the role gate is applied here.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, adminOnly gin.HandlerFunc) {
	a := r.Group("/admin")
	a.Use(adminOnly)
	{
		a.GET("/users", h.ListUsers)
		a.GET("/stats", h.Stats)
		a.GET("/users/:id/uploads", h.UserUploads)
	}
}
