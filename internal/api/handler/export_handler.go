package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

// ExportHandler spreadsheet downloads of the table views
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export the entity's table, with the same query as the list endpoint, as .xlsx
// GET /api/v1/export/:entity
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.TableQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ve := bindError(err)
		response.BadRequest(c, response.CodeBadRequest, ve.Error())
		return
	}

	buf, filename, err := h.exportSvc.Export(c.Request.Context(), c.Param("entity"), req.Query())
	if err != nil {
		handleError(c, err, nil)
		return
	}

	response.Attachment(c, filename, buf.Bytes())
}

// Entities the exportable entity names
// GET /api/v1/export
func (h *ExportHandler) Entities(c *gin.Context) {
	response.OK(c, gin.H{"list": h.exportSvc.Entities()})
}
