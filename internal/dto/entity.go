package dto

// Create requests carry binding rules; update requests are partial and every
// field is a pointer so an absent field is left unchanged upstream.
// Photos travel as separate multipart file parts and are not part of these structs.

// ── employee ──

// CreateEmployeeRequest new employee record
type CreateEmployeeRequest struct {
	NipNipp        string `json:"nipNipp" form:"nipNipp" binding:"required"`
	EmployeeName   string `json:"employeeName" form:"employeeName" binding:"required"`
	EmployeeGender string `json:"employeeGender" form:"employeeGender" binding:"required,oneof=L P"`
	DeathCause     string `json:"deathCause" form:"deathCause"`
	LastPosition   string `json:"lastPosition" form:"lastPosition"`
	RegionID       *int64 `json:"regionId" form:"regionId"`
	IsAccident     bool   `json:"isAccident" form:"isAccident"`
	Notes          string `json:"notes,omitempty" form:"notes"`
}

// UpdateEmployeeRequest partial employee update
type UpdateEmployeeRequest struct {
	NipNipp        *string `json:"nipNipp,omitempty" form:"nipNipp"`
	EmployeeName   *string `json:"employeeName,omitempty" form:"employeeName" binding:"omitempty,min=1"`
	EmployeeGender *string `json:"employeeGender,omitempty" form:"employeeGender" binding:"omitempty,oneof=L P"`
	DeathCause     *string `json:"deathCause,omitempty" form:"deathCause"`
	LastPosition   *string `json:"lastPosition,omitempty" form:"lastPosition"`
	RegionID       *int64  `json:"regionId,omitempty" form:"regionId"`
	IsAccident     *bool   `json:"isAccident,omitempty" form:"isAccident"`
	Notes          *string `json:"notes,omitempty" form:"notes"`
}

// ── partner ──

// CreatePartnerRequest new partner record
type CreatePartnerRequest struct {
	EmployeeID     *int64 `json:"employeeId" form:"employeeId"`
	PartnerName    string `json:"partnerName" form:"partnerName" binding:"required"`
	PartnerNik     string `json:"partnerNik" form:"partnerNik" binding:"required,numeric,len=16"`
	PartnerJob     string `json:"partnerJob,omitempty" form:"partnerJob"`
	Address        string `json:"address" form:"address" binding:"required"`
	PhoneNumber    string `json:"phoneNumber" form:"phoneNumber" binding:"required"`
	PhoneNumberAlt string `json:"phoneNumberAlt,omitempty" form:"phoneNumberAlt"`
	IsActive       bool   `json:"isActive" form:"isActive"`
	IsAlive        bool   `json:"isAlive" form:"isAlive"`
	RegionID       *int64 `json:"regionId" form:"regionId"`
	SubdistrictID  *int64 `json:"subdistrictId" form:"subdistrictId"`
}

// UpdatePartnerRequest partial partner update
type UpdatePartnerRequest struct {
	EmployeeID     *int64  `json:"employeeId,omitempty" form:"employeeId"`
	PartnerName    *string `json:"partnerName,omitempty" form:"partnerName" binding:"omitempty,min=1"`
	PartnerNik     *string `json:"partnerNik,omitempty" form:"partnerNik" binding:"omitempty,numeric,len=16"`
	PartnerJob     *string `json:"partnerJob,omitempty" form:"partnerJob"`
	Address        *string `json:"address,omitempty" form:"address"`
	PhoneNumber    *string `json:"phoneNumber,omitempty" form:"phoneNumber"`
	PhoneNumberAlt *string `json:"phoneNumberAlt,omitempty" form:"phoneNumberAlt"`
	IsActive       *bool   `json:"isActive,omitempty" form:"isActive"`
	IsAlive        *bool   `json:"isAlive,omitempty" form:"isAlive"`
	RegionID       *int64  `json:"regionId,omitempty" form:"regionId"`
	SubdistrictID  *int64  `json:"subdistrictId,omitempty" form:"subdistrictId"`
}

// ── wali ──

// CreateWaliRequest new wali record
type CreateWaliRequest struct {
	WaliName    string `json:"waliName" form:"waliName" binding:"required"`
	Relation    string `json:"relation" form:"relation" binding:"required"`
	WaliAddress string `json:"waliAddress" form:"waliAddress"`
	WaliPhone   string `json:"waliPhone" form:"waliPhone" binding:"required"`
	RegionID    *int64 `json:"regionId" form:"regionId"`
}

// UpdateWaliRequest partial wali update
type UpdateWaliRequest struct {
	WaliName    *string `json:"waliName,omitempty" form:"waliName" binding:"omitempty,min=1"`
	Relation    *string `json:"relation,omitempty" form:"relation"`
	WaliAddress *string `json:"waliAddress,omitempty" form:"waliAddress"`
	WaliPhone   *string `json:"waliPhone,omitempty" form:"waliPhone"`
	RegionID    *int64  `json:"regionId,omitempty" form:"regionId"`
}

// ── children ──

// CreateChildrenRequest new child record. ChildrenBirthdate is YYYY-MM-DD.
type CreateChildrenRequest struct {
	HomeID            *int64 `json:"homeId" form:"homeId"`
	EmployeeID        *int64 `json:"employeeId" form:"employeeId"`
	PartnerID         *int64 `json:"partnerId" form:"partnerId"`
	WaliID            *int64 `json:"waliId" form:"waliId"`
	ChildrenName      string `json:"childrenName" form:"childrenName" binding:"required"`
	ChildrenBirthdate string `json:"childrenBirthdate" form:"childrenBirthdate" binding:"required,datetime=2006-01-02"`
	ChildrenGender    string `json:"childrenGender" form:"childrenGender" binding:"required,oneof=L P"`
	ChildrenAddress   string `json:"childrenAddress,omitempty" form:"childrenAddress"`
	ChildrenPhone     string `json:"childrenPhone,omitempty" form:"childrenPhone"`
	IsFatherAlive     bool   `json:"isFatherAlive" form:"isFatherAlive"`
	IsMotherAlive     bool   `json:"isMotherAlive" form:"isMotherAlive"`
	IsCondition       bool   `json:"isCondition" form:"isCondition"`
	Index             int    `json:"index" form:"index" binding:"omitempty,min=1"`
	Notes             string `json:"notes,omitempty" form:"notes"`
}

// UpdateChildrenRequest partial child update
type UpdateChildrenRequest struct {
	HomeID            *int64  `json:"homeId,omitempty" form:"homeId"`
	EmployeeID        *int64  `json:"employeeId,omitempty" form:"employeeId"`
	PartnerID         *int64  `json:"partnerId,omitempty" form:"partnerId"`
	WaliID            *int64  `json:"waliId,omitempty" form:"waliId"`
	ChildrenName      *string `json:"childrenName,omitempty" form:"childrenName" binding:"omitempty,min=1"`
	ChildrenBirthdate *string `json:"childrenBirthdate,omitempty" form:"childrenBirthdate" binding:"omitempty,datetime=2006-01-02"`
	ChildrenGender    *string `json:"childrenGender,omitempty" form:"childrenGender" binding:"omitempty,oneof=L P"`
	ChildrenAddress   *string `json:"childrenAddress,omitempty" form:"childrenAddress"`
	ChildrenPhone     *string `json:"childrenPhone,omitempty" form:"childrenPhone"`
	IsFatherAlive     *bool   `json:"isFatherAlive,omitempty" form:"isFatherAlive"`
	IsMotherAlive     *bool   `json:"isMotherAlive,omitempty" form:"isMotherAlive"`
	IsCondition       *bool   `json:"isCondition,omitempty" form:"isCondition"`
	Index             *int    `json:"index,omitempty" form:"index" binding:"omitempty,min=1"`
	Notes             *string `json:"notes,omitempty" form:"notes"`
}

// ── umkm ──

// CreateUmkmRequest new small-business record
type CreateUmkmRequest struct {
	PartnerID       *int64   `json:"partnerId" form:"partnerId"`
	WaliID          *int64   `json:"waliId" form:"waliId"`
	ChildrenID      *int64   `json:"childrenId" form:"childrenId"`
	OwnerName       string   `json:"ownerName" form:"ownerName" binding:"required"`
	BusinessName    string   `json:"businessName" form:"businessName" binding:"required"`
	BusinessAddress string   `json:"businessAddress" form:"businessAddress"`
	BusinessType    string   `json:"businessType" form:"businessType" binding:"required"`
	Products        string   `json:"products" form:"products"`
	RegionID        *int64   `json:"regionId" form:"regionId"`
	SubdistrictID   *int64   `json:"subdistrictId" form:"subdistrictId"`
	Latitude        *float64 `json:"latitude" form:"latitude" binding:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude" form:"longitude" binding:"omitempty,longitude"`
}

// UpdateUmkmRequest partial small-business update
type UpdateUmkmRequest struct {
	PartnerID       *int64   `json:"partnerId,omitempty" form:"partnerId"`
	WaliID          *int64   `json:"waliId,omitempty" form:"waliId"`
	ChildrenID      *int64   `json:"childrenId,omitempty" form:"childrenId"`
	OwnerName       *string  `json:"ownerName,omitempty" form:"ownerName" binding:"omitempty,min=1"`
	BusinessName    *string  `json:"businessName,omitempty" form:"businessName" binding:"omitempty,min=1"`
	BusinessAddress *string  `json:"businessAddress,omitempty" form:"businessAddress"`
	BusinessType    *string  `json:"businessType,omitempty" form:"businessType"`
	Products        *string  `json:"products,omitempty" form:"products"`
	RegionID        *int64   `json:"regionId,omitempty" form:"regionId"`
	SubdistrictID   *int64   `json:"subdistrictId,omitempty" form:"subdistrictId"`
	Latitude        *float64 `json:"latitude,omitempty" form:"latitude" binding:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude,omitempty" form:"longitude" binding:"omitempty,longitude"`
}

// ── staff ──

// CreateStaffRequest new dashboard user account
type CreateStaffRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email,omitempty" form:"email" binding:"omitempty,email"`
	Role     string `json:"role" form:"role" binding:"required,oneof=admin operator"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
	IsActive bool   `json:"isActive" form:"isActive"`
}

// UpdateStaffRequest partial account update; an empty password keeps the current one
type UpdateStaffRequest struct {
	Name     *string `json:"name,omitempty" form:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" form:"email" binding:"omitempty,email"`
	Role     *string `json:"role,omitempty" form:"role" binding:"omitempty,oneof=admin operator"`
	Password *string `json:"password,omitempty" form:"password" binding:"omitempty,min=8"`
	IsActive *bool   `json:"isActive,omitempty" form:"isActive"`
}
