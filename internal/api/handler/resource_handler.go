package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

// deletePrompt the confirmation question shown before a record is removed
const deletePrompt = "Hapus data ini? Tindakan ini tidak dapat dibatalkan."

// ResourceHandler list, detail, create, update and delete of one entity.
// C and U are the create and update request types.
type ResourceHandler[T, C, U any] struct {
	svc service.ResourceService[T, C, U]
}

// NewResourceHandler creates a ResourceHandler
func NewResourceHandler[T, C, U any](svc service.ResourceService[T, C, U]) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{svc: svc}
}

// List the table view: rows, column metadata and search highlights
// GET /api/v1/{entity}?searchColumn=&searchTerm=&filter=col:value&sortColumn=&sortOrder=
func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
	var req dto.TableQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ve := bindError(err)
		response.BadRequest(c, response.CodeBadRequest, ve.Error())
		return
	}

	resp, err := h.svc.Table(c.Request.Context(), req.Query())
	if err != nil {
		handleError(c, err, nil)
		return
	}

	response.OK(c, resp)
}

// Get one record
// GET /api/v1/{entity}/:id
func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, nil)
		return
	}

	response.OK(c, rec)
}

// Create a record from a JSON body, or a multipart form when a photo is attached
// POST /api/v1/{entity}
func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBind(&req); err != nil {
		ve := bindError(err)
		formRejected(c, http.StatusBadRequest, response.CodeValidation, ve.Error(), ve.Field, req)
		return
	}

	photo, err := formPhoto(c, h.svc.PictureField())
	if err != nil {
		handleError(c, err, req)
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), &req, photo)
	if err != nil {
		handleError(c, err, req)
		return
	}

	response.Created(c, rec)
}

// Update a record; absent fields are left unchanged
// PUT /api/v1/{entity}/:id
func (h *ResourceHandler[T, C, U]) Update(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	var req U
	if err := c.ShouldBind(&req); err != nil {
		ve := bindError(err)
		formRejected(c, http.StatusBadRequest, response.CodeValidation, ve.Error(), ve.Field, req)
		return
	}

	photo, err := formPhoto(c, h.svc.PictureField())
	if err != nil {
		handleError(c, err, req)
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), id, &req, photo)
	if err != nil {
		handleError(c, err, req)
		return
	}

	response.OK(c, rec)
}

// Delete a record. Without ?confirm=true nothing is deleted and the confirmation prompt is returned.
// DELETE /api/v1/{entity}/:id?confirm=true
func (h *ResourceHandler[T, C, U]) Delete(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id, c.Query("confirm") == "true")
	if errors.Is(err, service.ErrDeleteNotConfirmed) {
		response.ErrorWithData(c, http.StatusConflict, response.CodeConfirmRequired, "confirmation required",
			dto.DeleteConfirmationResponse{Entity: h.svc.Name(), ID: id, Prompt: deletePrompt})
		return
	}
	if err != nil {
		handleError(c, err, nil)
		return
	}

	response.OK(c, nil)
}
