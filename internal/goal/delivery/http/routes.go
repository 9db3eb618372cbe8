package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	goals := rg.Group("/goals")
	{
		goals.POST("", h.Create)
		goals.GET("", h.List)
		goals.GET("/:id", h.Detail)
		goals.PUT("/:id", h.Update)
		goals.DELETE("/:id", h.Delete)
		goals.PUT("/:id/progress", h.Progress)
		goals.POST("/:id/reschedule", h.Reschedule)
	}
}
