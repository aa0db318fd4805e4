package model

// Wali a substitute guardian for dependents when no partner is available
type Wali struct {
	WaliID      int64  `json:"waliId"`
	WaliName    string `json:"waliName"`
	Relation    string `json:"relation"`
	WaliAddress string `json:"waliAddress"`
	WaliPhone   string `json:"waliPhone"`
	RegionID    *int64 `json:"regionId"`
	WaliPicture string `json:"waliPicture,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
