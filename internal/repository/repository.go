package repository

import (
	"context"
	"net/http"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
)

// Upstream the gateway operations repositories need. *gateway.Client implements it.
type Upstream interface {
	Do(ctx context.Context, req gateway.Request) (*http.Response, error)
	Public(ctx context.Context, req gateway.Request) (*http.Response, error)
}

// Backend resource paths
const (
	PathEmployees     = "/employees"
	PathPartners      = "/partners"
	PathWalis         = "/walis"
	PathChildren      = "/children"
	PathHomes         = "/homes"
	PathUmkm          = "/umkm"
	PathRegions       = "/regions"
	PathSubdistricts  = "/subdistricts"
	PathStaff         = "/users"
	PathLogin         = "/auth/login"
	PathDeletePicture = "/delete-picture"
)

// Repository aggregates every backend resource
type Repository struct {
	Employee    ResourceRepository[model.Employee]
	Partner     ResourceRepository[model.Partner]
	Wali        ResourceRepository[model.Wali]
	Children    ResourceRepository[model.Children]
	Home        ResourceRepository[model.Home]
	Umkm        ResourceRepository[model.Umkm]
	Region      ResourceRepository[model.Region]
	Subdistrict ResourceRepository[model.Subdistrict]
	Staff       ResourceRepository[model.Staff]
	Picture     PictureRepository
	Auth        AuthRepository
}

// NewRepository wires every repository to the same upstream
func NewRepository(up Upstream) *Repository {
	return &Repository{
		Employee:    NewResourceRepo[model.Employee](up, PathEmployees),
		Partner:     NewResourceRepo[model.Partner](up, PathPartners),
		Wali:        NewResourceRepo[model.Wali](up, PathWalis),
		Children:    NewResourceRepo[model.Children](up, PathChildren),
		Home:        NewResourceRepo[model.Home](up, PathHomes),
		Umkm:        NewResourceRepo[model.Umkm](up, PathUmkm),
		Region:      NewResourceRepo[model.Region](up, PathRegions),
		Subdistrict: NewResourceRepo[model.Subdistrict](up, PathSubdistricts),
		Staff:       NewResourceRepo[model.Staff](up, PathStaff),
		Picture:     NewPictureRepo(up),
		Auth:        NewAuthRepo(up),
	}
}
