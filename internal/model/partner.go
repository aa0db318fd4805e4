package model

// Partner the employee's spouse
type Partner struct {
	PartnerID      int64  `json:"partnerId"`
	EmployeeID     *int64 `json:"employeeId"`
	PartnerName    string `json:"partnerName"`
	PartnerNik     string `json:"partnerNik"`
	PartnerJob     string `json:"partnerJob,omitempty"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	PhoneNumberAlt string `json:"phoneNumberAlt,omitempty"`
	IsActive       bool   `json:"isActive"`
	IsAlive        bool   `json:"isAlive"`
	RegionID       *int64 `json:"regionId"`
	SubdistrictID  *int64 `json:"subdistrictId"`
	PartnerPicture string `json:"partnerPicture,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}
