package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes registers upload routes under the authenticated group.
// Any authenticated role may ingest and manage its own uploads.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	uploads := r.Group("/uploads")
	{
		uploads.POST("", h.Ingest)
		uploads.GET("", h.List)
		uploads.GET("/:id/data", h.GetData)
		uploads.DELETE("/:id", h.Delete)
	}
}
