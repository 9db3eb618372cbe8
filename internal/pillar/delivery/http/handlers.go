package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creator-studio/internal/pillar"
	"creator-studio/pkg/response"
)

// List godoc
// @Summary     List a user's pillars
// @Description Returns the user's content pillars in insertion order.
// @Tags        Pillars
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/pillars/{user_id} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	output, err := h.uc.List(ctx, pillar.ListPillarsInput{UserID: userID})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a pillar
// @Description Adds a content pillar to the user's collection. Name is required.
// @Tags        Pillars
// @Accept      json
// @Produce     json
// @Param       user_id path string    true "User ID"
// @Param       body    body createReq true "Pillar data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/pillars/{user_id} [POST]
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

// Update godoc
// @Summary     Update a pillar
// @Description Updates one of the user's pillars. All fields are optional (partial update).
// @Tags        Pillars
// @Accept      json
// @Produce     json
// @Param       user_id   path string    true "User ID"
// @Param       pillar_id path string    true "Pillar ID"
// @Param       body      body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/pillars/{user_id}/{pillar_id} [PUT]
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
// @Summary     Delete a pillar
// @Description Permanently removes one of the user's pillars.
// @Tags        Pillars
// @Accept      json
// @Produce     json
// @Param       user_id   path string true "User ID"
// @Param       pillar_id path string true "Pillar ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/pillars/{user_id}/{pillar_id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	pillarID := c.Param("pillar_id")
	if userID == "" || pillarID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and pillar_id are required"})
		return
	}

	if err := h.uc.Delete(ctx, pillar.DeletePillarInput{UserID: userID, ID: pillarID}); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Suggest godoc
// @Summary     Suggest pillars from a YouTube channel
// @Description Analyzes the channel's recent uploads and proposes content pillars. Falls back to a starter library when the channel cannot be analyzed. Nothing is persisted; accept a suggestion by creating it.
// @Tags        Pillars
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Channel to analyze"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/youtube/content-pillars [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}
