package model

// Home the family unit: one employee, one partner, an optional wali and the children
type Home struct {
	HomeID     int64      `json:"homeId"`
	EmployeeID int64      `json:"employeeId"`
	PartnerID  int64      `json:"partnerId"`
	WaliID     *int64     `json:"waliId"`
	RegionID   *int64     `json:"regionId"`
	PostalCode string     `json:"postalCode,omitempty"`
	Children   []Children `json:"children,omitempty"`
	CreatedAt  string     `json:"createdAt,omitempty"`
	UpdatedAt  string     `json:"updatedAt,omitempty"`
}
