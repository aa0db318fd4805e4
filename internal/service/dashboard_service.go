package service

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
)

// Counter counts the records of one entity
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardService landing-page summary and the option lists of the create forms
type DashboardService interface {
	Counts(ctx context.Context) (*dto.CountsResponse, error)
	FormOptions(ctx context.Context) (*dto.FormOptionsResponse, error)
}

// DashboardCounters one counter per summary tile
type DashboardCounters struct {
	Employees Counter
	Partners  Counter
	Walis     Counter
	Children  Counter
	Homes     Counter
	Umkm      Counter
	Staff     Counter
}

type dashboardService struct {
	counters DashboardCounters
	repo     *repository.Repository
	logger   *zap.Logger
}

// NewDashboardService creates a DashboardService
func NewDashboardService(counters DashboardCounters, repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{counters: counters, repo: repo, logger: logger}
}

func (s *dashboardService) Counts(ctx context.Context) (*dto.CountsResponse, error) {
	out := &dto.CountsResponse{}
	g, gctx := errgroup.WithContext(ctx)

	count := func(name string, c Counter, dst *int) {
		g.Go(func() error {
			n, err := c.Count(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	count("employees", s.counters.Employees, &out.Employees)
	count("partners", s.counters.Partners, &out.Partners)
	count("walis", s.counters.Walis, &out.Walis)
	count("children", s.counters.Children, &out.Children)
	count("homes", s.counters.Homes, &out.Homes)
	count("umkm", s.counters.Umkm, &out.Umkm)
	g.Go(func() error {
		n, err := s.counters.Staff.Count(gctx)
		if ue, ok := apperrors.AsUpstream(err); ok && ue.Status == http.StatusForbidden {
			s.logger.Debug("staff count forbidden for this session, omitted")
			return nil
		}
		if err != nil {
			return fmt.Errorf("count staff: %w", err)
		}
		out.Staff = &n
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard counts failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (s *dashboardService) FormOptions(ctx context.Context) (*dto.FormOptionsResponse, error) {
	lk, err := LoadLookups(ctx, s.repo, NeedEmployees|NeedPartners|NeedWalis|NeedRegions|NeedSubdistricts)
	if err != nil {
		s.logger.Error("form options failed", zap.Error(err))
		return nil, err
	}
	return &dto.FormOptionsResponse{
		Employees:    options(lk.Employees),
		Partners:     options(lk.Partners),
		Walis:        options(lk.Walis),
		Regions:      options(lk.Regions),
		Subdistricts: options(lk.Subdistricts),
	}, nil
}

// options select options sorted by label, then id
func options(m map[int64]string) []dto.OptionResponse {
	out := make([]dto.OptionResponse, 0, len(m))
	for id, name := range m {
		out = append(out, dto.OptionResponse{Label: name, Value: id})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Value < out[j].Value
	})
	return out
}
