package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creator-studio/pkg/response"
)

// Create godoc
// @Summary     Create a goal
// @Description Adds a new metric goal. Target must be positive; priority defaults to medium.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Goal data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List goals
// @Description Returns metric goals, optionally filtered by achievement.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       achieved query string false "Filter by achievement (true/false)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get goal detail
// @Description Returns a single goal by its ID, with derived progress and achievement.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a goal
// @Description Updates an existing goal. All fields are optional (partial update). The current value moves through the progress endpoint.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Goal ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a goal
// @Description Permanently removes a goal by ID.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Progress godoc
// @Summary     Record goal progress
// @Description Sets the goal's current metric value and reports whether the target was reached.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Goal ID"
// @Param       body body progressReq true "New current value"
// @Success     200 {object} progressResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id}/progress [PUT]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProgressReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Progress(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Progress: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProgressResp(output))
}

// Reschedule godoc
// @Summary     Reschedule a goal
// @Description Drops a goal onto another calendar day. Dropping onto the current day is a no-op.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Goal ID"
// @Param       body body rescheduleReq true "Target date"
// @Success     200 {object} rescheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id}/reschedule [POST]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRescheduleReq(c)
	if err != nil {
		h.l.Warnf(ctx, "malformed reschedule payload: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Reschedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reschedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRescheduleResp(output))
}
