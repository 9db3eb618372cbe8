package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/schedule"
	"creator-studio/pkg/datemath"
	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
)

// Handler is the public interface for the schedule HTTP delivery layer:
// calendar reads, the dashboard summary and the notification feed.
type Handler interface {
	Day(c *gin.Context)
	DayICS(c *gin.Context)
	Month(c *gin.Context)
	Summary(c *gin.Context)
	Notifications(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     schedule.UseCase
	parser *datemath.Parser
	nc     *notify.Center
}

// New creates a new HTTP handler for the schedule views. The parser
// resolves relative date phrases in query strings.
func New(l log.Logger, uc schedule.UseCase, parser *datemath.Parser, nc *notify.Center) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
		nc:     nc,
	}
}
