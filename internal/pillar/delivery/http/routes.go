package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. These
// are the paths the pillars page calls, scoped by user id in the URL.
// The suggestion route spends YouTube API quota, so it is rate
// limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	pillars := rg.Group("/pillars")
	{
		pillars.GET("/:user_id", h.List)
		pillars.POST("/:user_id", h.Create)
		pillars.PUT("/:user_id/:pillar_id", h.Update)
		pillars.DELETE("/:user_id/:pillar_id", h.Delete)
	}

	yt := rg.Group("/youtube")
	{
		yt.POST("/content-pillars", mw.RateLimit(), h.Suggest)
	}
}
