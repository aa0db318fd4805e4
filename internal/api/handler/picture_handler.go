package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

// PictureHandler removal of stored photos
type PictureHandler struct {
	pictureSvc service.PictureService
}

// NewPictureHandler creates a PictureHandler
func NewPictureHandler(pictureSvc service.PictureService) *PictureHandler {
	return &PictureHandler{pictureSvc: pictureSvc}
}

type deletePictureRequest struct {
	URL     string `json:"url" form:"url" binding:"required"`
	Confirm bool   `json:"confirm" form:"confirm"`
}

// Delete removes the stored object behind a photo URL; requires confirm=true
// DELETE /api/v1/pictures?url=...&confirm=true
func (h *PictureHandler) Delete(c *gin.Context) {
	var req deletePictureRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ve := bindError(err)
		response.BadRequest(c, response.CodeValidation, ve.Error())
		return
	}
	if !req.Confirm {
		response.ErrorWithData(c, http.StatusConflict, response.CodeConfirmRequired, "confirmation required",
			gin.H{"url": req.URL, "prompt": deletePrompt})
		return
	}

	if err := h.pictureSvc.DeleteByURL(c.Request.Context(), req.URL); err != nil {
		handleError(c, err, nil)
		return
	}
	response.OK(c, nil)
}
