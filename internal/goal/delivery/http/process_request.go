package http

import (
	"github.com/gin-gonic/gin"

	"creator-studio/internal/goal"
)

// processCreateReq binds and validates the create goal request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list goals query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update goal request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, goal.ErrGoalNotFound
	}
	return req, req.validate()
}

// processProgressReq binds and validates the progress request body + URI param.
func (h *handler) processProgressReq(c *gin.Context) (progressReq, error) {
	var req progressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, goal.ErrGoalNotFound
	}
	return req, req.validate()
}

// processRescheduleReq binds and validates the reschedule request body + URI param.
func (h *handler) processRescheduleReq(c *gin.Context) (rescheduleReq, error) {
	var req rescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, goal.ErrGoalNotFound
	}
	return req, req.validate()
}
