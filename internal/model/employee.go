package model

// Employee a deceased or affected staff member whose dependents receive support.
// Dates are kept as the ISO-8601 strings the backend sends.
type Employee struct {
	EmployeeID      int64  `json:"employeeId"`
	NipNipp         string `json:"nipNipp"`
	EmployeeName    string `json:"employeeName"`
	EmployeeGender  string `json:"employeeGender"`
	DeathCause      string `json:"deathCause"`
	LastPosition    string `json:"lastPosition"`
	RegionID        *int64 `json:"regionId"`
	IsAccident      bool   `json:"isAccident"`
	EmployeePicture string `json:"employeePicture,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}
