package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creator-studio/pkg/response"
)

// Create godoc
// @Summary     Create a content item
// @Description Adds a new item to the studio board. Stage defaults to ideas, priority to medium.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/content/items [POST]
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
// @Summary     List content items
// @Description Returns content items, optionally filtered by stage and pillar.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by stage (ideas/planning/in-progress/published)"
// @Param       pillar query string false "Filter by pillar name"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/content/items [GET]
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
// @Summary     Get content item detail
// @Description Returns a single content item by its ID.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/content/items/{id} [GET]
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
// @Summary     Update a content item
// @Description Updates an existing item. All fields are optional (partial update). Changing the stage marks earlier stages completed.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/content/items/{id} [PUT]
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
// @Summary     Delete a content item
// @Description Permanently removes a content item by ID.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/content/items/{id} [DELETE]
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

// Board godoc
// @Summary     Get the studio board
// @Description Returns every item grouped into kanban columns in production-stage order.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Success     200 {object} boardResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/content/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Board(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBoardResp(output))
}

// Move godoc
// @Summary     Move an item to another column
// @Description Drops an item into another board column. Dropping onto the current column is a no-op and changes nothing.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Item ID"
// @Param       body body moveReq true "Target column"
// @Success     200 {object} moveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/content/items/{id}/move [POST]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveReq(c)
	if err != nil {
		h.l.Warnf(ctx, "malformed move payload: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Move(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Move: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMoveResp(output))
}

// Reschedule godoc
// @Summary     Reschedule an item
// @Description Drops an item onto another calendar day, moving a per-stage deadline or the overall due date.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Item ID"
// @Param       body body rescheduleReq true "Target date"
// @Success     200 {object} moveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/content/items/{id}/reschedule [POST]
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
