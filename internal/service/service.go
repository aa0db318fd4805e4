package service

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/export"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/jwt"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/metrics"
)

// Entity names, used in routes, export filenames and metrics
const (
	EntityEmployees = "employees"
	EntityPartners  = "partners"
	EntityWalis     = "walis"
	EntityChildren  = "children"
	EntityHomes     = "homes"
	EntityUmkm      = "umkm"
	EntityStaff     = "staff"
)

// Service aggregates every service
type Service struct {
	Employee  ResourceService[model.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
	Partner   ResourceService[model.Partner, dto.CreatePartnerRequest, dto.UpdatePartnerRequest]
	Wali      ResourceService[model.Wali, dto.CreateWaliRequest, dto.UpdateWaliRequest]
	Children  ResourceService[model.Children, dto.CreateChildrenRequest, dto.UpdateChildrenRequest]
	Umkm      ResourceService[model.Umkm, dto.CreateUmkmRequest, dto.UpdateUmkmRequest]
	Staff     ResourceService[model.Staff, dto.CreateStaffRequest, dto.UpdateStaffRequest]
	Home      HomeService
	Picture   PictureService
	Dashboard DashboardService
	Export    ExportService
	Auth      AuthService
}

// ExportOptions workbook formatting from config
func ExportOptions(cfg *config.ExportConfig) (export.Options, error) {
	opts := export.Options{DateLayout: cfg.DateLayout}
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return opts, fmt.Errorf("export timezone %q: %w", cfg.Timezone, err)
		}
		opts.Location = loc
	}
	return opts, nil
}

// NewService wires every service to the repository
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	store SessionStore,
	jwtMgr *jwt.Manager,
	m *metrics.Metrics,
	logger *zap.Logger,
) (*Service, error) {
	opts, err := ExportOptions(&cfg.Export)
	if err != nil {
		return nil, err
	}
	pictures := NewPictureService(repo, &cfg.Upload, logger)

	employee := NewResourceService[model.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest](Entity[model.Employee]{
		Name:         EntityEmployees,
		Title:        "Pegawai",
		Lookups:      NeedRegions,
		Columns:      EmployeeColumns,
		PictureField: "employeePicture",
		Picture:      func(e model.Employee) string { return e.EmployeePicture },
	}, repo, repo.Employee, pictures, opts, logger)

	partner := NewResourceService[model.Partner, dto.CreatePartnerRequest, dto.UpdatePartnerRequest](Entity[model.Partner]{
		Name:         EntityPartners,
		Title:        "Pasangan",
		Lookups:      NeedRegions | NeedSubdistricts | NeedEmployees,
		Columns:      PartnerColumns,
		PictureField: "partnerPicture",
		Picture:      func(p model.Partner) string { return p.PartnerPicture },
	}, repo, repo.Partner, pictures, opts, logger)

	wali := NewResourceService[model.Wali, dto.CreateWaliRequest, dto.UpdateWaliRequest](Entity[model.Wali]{
		Name:         EntityWalis,
		Title:        "Wali",
		Lookups:      NeedRegions,
		Columns:      WaliColumns,
		PictureField: "waliPicture",
		Picture:      func(w model.Wali) string { return w.WaliPicture },
	}, repo, repo.Wali, pictures, opts, logger)

	children := NewResourceService[model.Children, dto.CreateChildrenRequest, dto.UpdateChildrenRequest](Entity[model.Children]{
		Name:         EntityChildren,
		Title:        "Anak",
		Lookups:      NeedEmployees | NeedPartners | NeedWalis,
		Columns:      ChildrenColumns,
		PictureField: "childrenPicture",
		Picture:      func(c model.Children) string { return c.ChildrenPicture },
	}, repo, repo.Children, pictures, opts, logger)

	umkm := NewResourceService[model.Umkm, dto.CreateUmkmRequest, dto.UpdateUmkmRequest](Entity[model.Umkm]{
		Name:         EntityUmkm,
		Title:        "UMKM",
		Lookups:      NeedRegions | NeedSubdistricts,
		Columns:      UmkmColumns,
		PictureField: "umkmPicture",
		Picture:      func(u model.Umkm) string { return u.UmkmPicture },
	}, repo, repo.Umkm, pictures, opts, logger)

	staff := NewResourceService[model.Staff, dto.CreateStaffRequest, dto.UpdateStaffRequest](Entity[model.Staff]{
		Name:         EntityStaff,
		Title:        "Staf",
		Columns:      StaffColumns,
		PictureField: "avatar",
		Picture:      func(s model.Staff) string { return s.Avatar },
	}, repo, repo.Staff, pictures, opts, logger)

	home := NewHomeService(newResourceService[model.Home, dto.CreateHomeRequest, dto.UpdateHomeRequest](Entity[model.Home]{
		Name:    EntityHomes,
		Title:   "Rumah",
		Lookups: NeedEmployees | NeedPartners | NeedWalis | NeedRegions,
		Columns: HomeColumns,
	}, repo, repo.Home, pictures, opts, logger), partner, wali)

	exporters := map[string]Exporter{
		EntityEmployees: employee,
		EntityPartners:  partner,
		EntityWalis:     wali,
		EntityChildren:  children,
		EntityHomes:     home,
		EntityUmkm:      umkm,
		EntityStaff:     staff,
	}

	return &Service{
		Employee: employee,
		Partner:  partner,
		Wali:     wali,
		Children: children,
		Umkm:     umkm,
		Staff:    staff,
		Home:     home,
		Picture:  pictures,
		Dashboard: NewDashboardService(DashboardCounters{
			Employees: employee,
			Partners:  partner,
			Walis:     wali,
			Children:  children,
			Homes:     home,
			Umkm:      umkm,
			Staff:     staff,
		}, repo, logger),
		Export: NewExportService(exporters, m, logger),
		Auth:   NewAuthService(repo, store, jwtMgr, logger),
	}, nil
}
