package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

// DashboardHandler landing-page counts and form option lists
type DashboardHandler struct {
	dashSvc service.DashboardService
}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler(dashSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashSvc: dashSvc}
}

// Counts per-entity totals
// GET /api/v1/dashboard/counts
func (h *DashboardHandler) Counts(c *gin.Context) {
	counts, err := h.dashSvc.Counts(c.Request.Context())
	if err != nil {
		handleError(c, err, nil)
		return
	}
	response.OK(c, counts)
}

// FormOptions select options for the create forms
// GET /api/v1/form-options
func (h *DashboardHandler) FormOptions(c *gin.Context) {
	opts, err := h.dashSvc.FormOptions(c.Request.Context())
	if err != nil {
		handleError(c, err, nil)
		return
	}
	response.OK(c, opts)
}
