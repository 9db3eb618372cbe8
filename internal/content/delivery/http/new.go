package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/content"
	"creator-studio/pkg/log"
)

// Handler is the public interface for the content HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Board(c *gin.Context)
	Move(c *gin.Context)
	Reschedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc content.UseCase
}

// New creates a new HTTP handler for the content domain.
func New(l log.Logger, uc content.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
