package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/pillar"
	"creator-studio/pkg/log"
)

// Handler is the public interface for the pillar HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Suggest(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc pillar.UseCase
}

// New creates a new HTTP handler for the pillar domain.
func New(l log.Logger, uc pillar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
