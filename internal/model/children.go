package model

// Children a dependent of an employee/partner, grouped under a home.
// Index is the ordinal position among siblings, starting at 1.
type Children struct {
	ChildrenID        int64  `json:"childrenId"`
	HomeID            *int64 `json:"homeId"`
	EmployeeID        *int64 `json:"employeeId"`
	PartnerID         *int64 `json:"partnerId"`
	WaliID            *int64 `json:"waliId"`
	ChildrenName      string `json:"childrenName"`
	ChildrenBirthdate string `json:"childrenBirthdate"`
	ChildrenGender    string `json:"childrenGender"`
	ChildrenAddress   string `json:"childrenAddress,omitempty"`
	ChildrenPhone     string `json:"childrenPhone,omitempty"`
	IsFatherAlive     bool   `json:"isFatherAlive"`
	IsMotherAlive     bool   `json:"isMotherAlive"`
	IsCondition       bool   `json:"isCondition"`
	Index             int    `json:"index"`
	ChildrenPicture   string `json:"childrenPicture,omitempty"`
	Notes             string `json:"notes,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
	UpdatedAt         string `json:"updatedAt,omitempty"`
}
