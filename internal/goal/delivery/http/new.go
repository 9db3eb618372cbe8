package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/goal"
	"creator-studio/pkg/log"
)

// Handler is the public interface for the goal HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Progress(c *gin.Context)
	Reschedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc goal.UseCase
}

// New creates a new HTTP handler for the goal domain.
func New(l log.Logger, uc goal.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
