package service

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/export"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
)

// HomeService homes are created from a composite form that can also create the
// partner and the wali on the way
type HomeService interface {
	ResourceService[model.Home, dto.CreateHomeRequest, dto.UpdateHomeRequest]
}

type homeService struct {
	*resourceService[model.Home, dto.CreateHomeRequest, dto.UpdateHomeRequest]
	partners ResourceService[model.Partner, dto.CreatePartnerRequest, dto.UpdatePartnerRequest]
	walis    ResourceService[model.Wali, dto.CreateWaliRequest, dto.UpdateWaliRequest]
}

// NewHomeService creates a HomeService. partners and walis create the sub-entities of the form.
func NewHomeService(
	base *resourceService[model.Home, dto.CreateHomeRequest, dto.UpdateHomeRequest],
	partners ResourceService[model.Partner, dto.CreatePartnerRequest, dto.UpdatePartnerRequest],
	walis ResourceService[model.Wali, dto.CreateWaliRequest, dto.UpdateWaliRequest],
) HomeService {
	return &homeService{resourceService: base, partners: partners, walis: walis}
}

// ValidateHomeModes checks the partner and wali sections of the form, reporting the first problem
func ValidateHomeModes(req *dto.CreateHomeRequest) error {
	if req.EmployeeID <= 0 {
		return apperrors.Required("employeeId")
	}

	switch req.PartnerMode {
	case dto.ModeExisting:
		if req.PartnerID == nil || *req.PartnerID <= 0 {
			return apperrors.Required("partnerId")
		}
	case dto.ModeNew:
		if req.Partner == nil {
			return apperrors.Required("partner")
		}
	case dto.ModeNone:
		return &apperrors.ValidationError{Field: "partnerMode", Reason: "a home must have a partner"}
	default:
		return &apperrors.ValidationError{Field: "partnerMode", Reason: "must be existing or new"}
	}

	switch req.WaliMode {
	case dto.ModeExisting:
		if req.WaliID == nil || *req.WaliID <= 0 {
			return apperrors.Required("waliId")
		}
	case dto.ModeNew:
		if req.Wali == nil {
			return apperrors.Required("wali")
		}
	case dto.ModeNone, "":
	default:
		return &apperrors.ValidationError{Field: "waliMode", Reason: "must be existing, new or none"}
	}
	return nil
}

// ────────────────────── Create ──────────────────────

// Create resolves the partner and wali to ids, creating them first when the form asks
// for new ones, then creates the home. If the home is rejected, sub-entities created
// here are deleted again.
func (s *homeService) Create(ctx context.Context, req *dto.CreateHomeRequest, photo *gateway.File) (*model.Home, error) {
	if photo != nil {
		return nil, ErrNoPictureField
	}
	if err := ValidateHomeModes(req); err != nil {
		return nil, err
	}

	body := dto.HomeBody{
		EmployeeID:  req.EmployeeID,
		ChildrenIDs: req.ChildrenIDs,
		RegionID:    req.RegionID,
		PostalCode:  req.PostalCode,
	}

	var createdPartner, createdWali *int64

	switch req.PartnerMode {
	case dto.ModeExisting:
		body.PartnerID = *req.PartnerID
	case dto.ModeNew:
		p, err := s.partners.Create(ctx, req.Partner, nil)
		if err != nil {
			return nil, fmt.Errorf("create partner: %w", err)
		}
		body.PartnerID = p.PartnerID
		createdPartner = &p.PartnerID
	}

	switch req.WaliMode {
	case dto.ModeExisting:
		body.WaliID = req.WaliID
	case dto.ModeNew:
		w, err := s.walis.Create(ctx, req.Wali, nil)
		if err != nil {
			s.rollback(ctx, createdPartner, nil)
			return nil, fmt.Errorf("create wali: %w", err)
		}
		body.WaliID = &w.WaliID
		createdWali = &w.WaliID
	}

	home, err := s.rows.Create(ctx, gateway.JSONPayload{Value: body})
	if err != nil {
		s.logUpstream("create failed", err)
		s.rollback(ctx, createdPartner, createdWali)
		return nil, err
	}
	return home, nil
}

func (s *homeService) rollback(ctx context.Context, partnerID, waliID *int64) {
	if partnerID != nil {
		if err := s.partners.Delete(ctx, *partnerID, true); err != nil {
			s.logger.Warn("rollback partner failed", zap.Int64("partner_id", *partnerID), zap.Error(err))
		}
	}
	if waliID != nil {
		if err := s.walis.Delete(ctx, *waliID, true); err != nil {
			s.logger.Warn("rollback wali failed", zap.Int64("wali_id", *waliID), zap.Error(err))
		}
	}
}

// ────────────────────── Export ──────────────────────

// Export writes one row per child; the home columns are merged across each home's rows
func (s *homeService) Export(ctx context.Context, q table.Query) (*bytes.Buffer, error) {
	rows, lk, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	v := table.NewView(s.entity.Columns(lk))
	if err := v.Load(rows); err != nil {
		return nil, err
	}
	if _, err := v.Apply(q); err != nil {
		return nil, err
	}

	opts := s.export
	opts.MergeDuplicates = true
	return export.Workbook(FamilyColumns(lk), FamilyRows(v.Current()), opts)
}
