package dto

// Sub-entity modes of the home form
const (
	ModeExisting = "existing"
	ModeNew      = "new"
	ModeNone     = "none"
)

// CreateHomeRequest the family form. The partner and wali sections each either link an
// existing record, create a new one first, or (wali only) are left out.
type CreateHomeRequest struct {
	EmployeeID int64 `json:"employeeId" binding:"required,gt=0"`

	PartnerMode string                `json:"partnerMode" binding:"required,oneof=existing new none"`
	PartnerID   *int64                `json:"partnerId,omitempty"`
	Partner     *CreatePartnerRequest `json:"partner,omitempty"`

	WaliMode string             `json:"waliMode" binding:"omitempty,oneof=existing new none"`
	WaliID   *int64             `json:"waliId,omitempty"`
	Wali     *CreateWaliRequest `json:"wali,omitempty"`

	ChildrenIDs []int64 `json:"childrenIds,omitempty"`
	RegionID    *int64  `json:"regionId,omitempty"`
	PostalCode  string  `json:"postalCode,omitempty" binding:"omitempty,numeric,len=5"`
}

// UpdateHomeRequest partial home update
type UpdateHomeRequest struct {
	EmployeeID  *int64  `json:"employeeId,omitempty" form:"employeeId"`
	PartnerID   *int64  `json:"partnerId,omitempty" form:"partnerId"`
	WaliID      *int64  `json:"waliId,omitempty" form:"waliId"`
	ChildrenIDs []int64 `json:"childrenIds,omitempty" form:"childrenIds"`
	RegionID    *int64  `json:"regionId,omitempty" form:"regionId"`
	PostalCode  *string `json:"postalCode,omitempty" form:"postalCode" binding:"omitempty,numeric,len=5"`
}

// HomeBody the record actually sent upstream once partner and wali are resolved to ids
type HomeBody struct {
	EmployeeID  int64   `json:"employeeId"`
	PartnerID   int64   `json:"partnerId"`
	WaliID      *int64  `json:"waliId"`
	ChildrenIDs []int64 `json:"childrenIds,omitempty"`
	RegionID    *int64  `json:"regionId"`
	PostalCode  string  `json:"postalCode,omitempty"`
}
