package handler

import (
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
)

// Handler aggregates every handler
type Handler struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	Picture   *PictureHandler

	Employee *ResourceHandler[model.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
	Partner  *ResourceHandler[model.Partner, dto.CreatePartnerRequest, dto.UpdatePartnerRequest]
	Wali     *ResourceHandler[model.Wali, dto.CreateWaliRequest, dto.UpdateWaliRequest]
	Children *ResourceHandler[model.Children, dto.CreateChildrenRequest, dto.UpdateChildrenRequest]
	Home     *ResourceHandler[model.Home, dto.CreateHomeRequest, dto.UpdateHomeRequest]
	Umkm     *ResourceHandler[model.Umkm, dto.CreateUmkmRequest, dto.UpdateUmkmRequest]
	Staff    *ResourceHandler[model.Staff, dto.CreateStaffRequest, dto.UpdateStaffRequest]
}

// NewHandler creates the handler aggregate
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	RegisterFieldNames()
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth, &cfg.Auth),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Export:    NewExportHandler(svc.Export),
		Picture:   NewPictureHandler(svc.Picture),

		Employee: NewResourceHandler(svc.Employee),
		Partner:  NewResourceHandler(svc.Partner),
		Wali:     NewResourceHandler(svc.Wali),
		Children: NewResourceHandler(svc.Children),
		Home:     NewResourceHandler[model.Home, dto.CreateHomeRequest, dto.UpdateHomeRequest](svc.Home),
		Umkm:     NewResourceHandler(svc.Umkm),
		Staff:    NewResourceHandler(svc.Staff),
	}
}
