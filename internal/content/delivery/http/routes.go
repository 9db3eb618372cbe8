package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/content/items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/move", h.Move)
		items.POST("/:id/reschedule", h.Reschedule)
	}
	rg.GET("/content/board", h.Board)
}
