package service

import (
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
)

func newPartnerRequest() *dto.CreatePartnerRequest {
	return &dto.CreatePartnerRequest{
		PartnerName: "Siti",
		PartnerNik:  "3201010101010001",
		Address:     "Jl. Melati 1",
		PhoneNumber: "08123",
	}
}

func TestHomeService_Create_NewPartnerThenLink(t *testing.T) {
	svc, mocks, _ := setupTestService()
	mocks.partner.created = model.Partner{PartnerID: 77}
	mocks.home.created = model.Home{HomeID: 5}

	home, err := svc.Home.Create(context.Background(), &dto.CreateHomeRequest{
		EmployeeID:  1,
		PartnerMode: dto.ModeNew,
		Partner:     newPartnerRequest(),
		WaliMode:    dto.ModeNone,
		ChildrenIDs: []int64{3, 4},
	}, nil)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if home.HomeID != 5 {
		t.Errorf("expected home 5, got %d", home.HomeID)
	}
	if len(mocks.partner.calls) != 1 || mocks.partner.calls[0] != "create" {
		t.Errorf("expected the partner to be created first, got %v", mocks.partner.calls)
	}

	body := mocks.home.payloads[0].(gateway.JSONPayload).Value.(dto.HomeBody)
	if body.PartnerID != 77 {
		t.Errorf("expected partner 77 linked, got %d", body.PartnerID)
	}
	if body.WaliID != nil {
		t.Errorf("expected no wali, got %v", *body.WaliID)
	}
	if len(body.ChildrenIDs) != 2 {
		t.Errorf("expected children linked by id, got %v", body.ChildrenIDs)
	}
}

func TestHomeService_Create_ExistingPartnerNewWali(t *testing.T) {
	svc, mocks, _ := setupTestService()
	mocks.wali.created = model.Wali{WaliID: 8}

	_, err := svc.Home.Create(context.Background(), &dto.CreateHomeRequest{
		EmployeeID:  1,
		PartnerMode: dto.ModeExisting,
		PartnerID:   ptr(int64(12)),
		WaliMode:    dto.ModeNew,
		Wali:        &dto.CreateWaliRequest{WaliName: "Pak RT", Relation: "Paman", WaliPhone: "0812"},
	}, nil)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if mocks.partner.callCount() != 0 {
		t.Errorf("existing partner must not be created, got %v", mocks.partner.calls)
	}
	body := mocks.home.payloads[0].(gateway.JSONPayload).Value.(dto.HomeBody)
	if body.PartnerID != 12 || body.WaliID == nil || *body.WaliID != 8 {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestHomeService_Create_ModeValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.CreateHomeRequest
		field string
	}{
		{"missing employee", dto.CreateHomeRequest{PartnerMode: dto.ModeExisting, PartnerID: ptr(int64(1))}, "employeeId"},
		{"partner none", dto.CreateHomeRequest{EmployeeID: 1, PartnerMode: dto.ModeNone}, "partnerMode"},
		{"existing partner without id", dto.CreateHomeRequest{EmployeeID: 1, PartnerMode: dto.ModeExisting}, "partnerId"},
		{"new partner without body", dto.CreateHomeRequest{EmployeeID: 1, PartnerMode: dto.ModeNew}, "partner"},
		{"existing wali without id", dto.CreateHomeRequest{EmployeeID: 1, PartnerMode: dto.ModeExisting, PartnerID: ptr(int64(1)), WaliMode: dto.ModeExisting}, "waliId"},
		{"new wali without body", dto.CreateHomeRequest{EmployeeID: 1, PartnerMode: dto.ModeExisting, PartnerID: ptr(int64(1)), WaliMode: dto.ModeNew}, "wali"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks, _ := setupTestService()
			req := tt.req
			_, err := svc.Home.Create(context.Background(), &req, nil)
			ve, ok := apperrors.AsValidation(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, ve.Field)
			}
			if mocks.home.callCount()+mocks.partner.callCount()+mocks.wali.callCount() != 0 {
				t.Error("expected no upstream calls on validation failure")
			}
		})
	}
}

func TestHomeService_Create_RollsBackNewPartner(t *testing.T) {
	svc, mocks, _ := setupTestService()
	mocks.partner.created = model.Partner{PartnerID: 77}
	mocks.home.writeErr = &apperrors.UpstreamError{Status: 422, Message: "employee already has a home"}

	_, err := svc.Home.Create(context.Background(), &dto.CreateHomeRequest{
		EmployeeID:  1,
		PartnerMode: dto.ModeNew,
		Partner:     newPartnerRequest(),
	}, nil)
	if _, ok := apperrors.AsUpstream(err); !ok {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(mocks.partner.calls) != 2 || mocks.partner.calls[1] != "delete" {
		t.Errorf("expected created partner deleted again, got %v", mocks.partner.calls)
	}
}

func TestHomeService_Export_MergesHomeColumns(t *testing.T) {
	svc, mocks, _ := setupTestService()
	mocks.employee.rows = []model.Employee{{EmployeeID: 1, EmployeeName: "Budi"}, {EmployeeID: 2, EmployeeName: "Agus"}}
	mocks.partner.rows = []model.Partner{{PartnerID: 10, PartnerName: "Siti"}, {PartnerID: 11, PartnerName: "Rina"}}
	mocks.home.rows = []model.Home{
		{HomeID: 1, EmployeeID: 1, PartnerID: 10, Children: []model.Children{
			{ChildrenName: "Ani", ChildrenGender: "P", Index: 1},
			{ChildrenName: "Bayu", ChildrenGender: "L", Index: 2},
		}},
		{HomeID: 2, EmployeeID: 2, PartnerID: 11, Children: []model.Children{
			{ChildrenName: "Citra", ChildrenGender: "P", Index: 1},
		}},
	}

	buf, err := svc.Home.Export(context.Background(), table.Query{})
	if err != nil {
		t.Fatalf("Export should succeed: %v", err)
	}
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Rumah", "E3"); v != "Bayu" {
		t.Errorf("expected second child in E3, got %q", v)
	}
	merges, err := f.GetMergeCells("Rumah")
	if err != nil {
		t.Fatalf("merge cells: %v", err)
	}
	found := false
	for _, m := range merges {
		if m.GetStartAxis() == "A2" && m.GetEndAxis() == "A3" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected A2:A3 merged for Budi's home, got %v", merges)
	}
}

func TestFamilyRows_HomeWithoutChildrenKeepsOneRow(t *testing.T) {
	rows := FamilyRows([]model.Home{
		{HomeID: 1},
		{HomeID: 2, Children: []model.Children{{ChildrenName: "A"}, {ChildrenName: "B"}}},
	})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Home.HomeID != 1 || rows[0].Child.ChildrenName != "" {
		t.Errorf("unexpected first row %+v", rows[0])
	}
}

func TestHomeService_Export_SameRegionHomesStaySeparate(t *testing.T) {
	svc, mocks, _ := setupTestService()
	mocks.employee.rows = []model.Employee{{EmployeeID: 1, EmployeeName: "Budi"}, {EmployeeID: 2, EmployeeName: "Agus"}}
	mocks.region.rows = []model.Region{{RegionID: 5, RegionName: "Jakarta"}}
	mocks.home.rows = []model.Home{
		{HomeID: 1, EmployeeID: 1, RegionID: ptr(int64(5)), Children: []model.Children{
			{ChildrenName: "Ani", ChildrenGender: "P", Index: 1},
		}},
		{HomeID: 2, EmployeeID: 2, RegionID: ptr(int64(5)), Children: []model.Children{
			{ChildrenName: "Citra", ChildrenGender: "P", Index: 1},
		}},
		{HomeID: 3, EmployeeID: 2, RegionID: ptr(int64(5))},
	}

	buf, err := svc.Home.Export(context.Background(), table.Query{})
	if err != nil {
		t.Fatalf("Export should succeed: %v", err)
	}
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	merges, err := f.GetMergeCells("Rumah")
	if err != nil {
		t.Fatalf("merge cells: %v", err)
	}
	if len(merges) != 0 {
		for _, m := range merges {
			t.Errorf("unexpected merge %s:%s (%q) across different homes", m.GetStartAxis(), m.GetEndAxis(), m.GetCellValue())
		}
	}
	for _, cell := range []string{"D2", "D3", "D4"} {
		if v, _ := f.GetCellValue("Rumah", cell); v != "Jakarta" {
			t.Errorf("expected Jakarta in %s, got %q", cell, v)
		}
	}
	if v, _ := f.GetCellValue("Rumah", "H2"); v != "1" {
		t.Errorf("expected child index 1 in H2, got %q", v)
	}
	if v, _ := f.GetCellValue("Rumah", "H4"); v != "" {
		t.Errorf("expected a blank child index for the childless home, got %q", v)
	}
}
