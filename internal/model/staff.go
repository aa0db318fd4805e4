package model

// Staff an internal user account of the organisation (not a beneficiary)
type Staff struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Staff roles
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)
