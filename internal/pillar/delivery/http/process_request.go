package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/pillar"
)

// processCreateReq binds and validates the create pillar request body + URI param.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID = c.Param("user_id")
	if req.UserID == "" {
		return req, pillar.ErrMissingUserID
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update pillar request body + URI params.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID = c.Param("user_id")
	if req.UserID == "" {
		return req, pillar.ErrMissingUserID
	}
	req.ID = c.Param("pillar_id")
	if req.ID == "" {
		return req, pillar.ErrPillarNotFound
	}
	return req, req.validate()
}

// processSuggestReq binds and validates the suggestion request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
