package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	calendar := rg.Group("/calendar")
	{
		calendar.GET("/day", h.Day)
		calendar.GET("/day.ics", h.DayICS)
		calendar.GET("/month", h.Month)
	}

	rg.GET("/dashboard/summary", h.Summary)
	rg.GET("/notifications", h.Notifications)
}
