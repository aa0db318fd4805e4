package model

// Umkm a small business run by a partner, wali or child
type Umkm struct {
	UmkmID          int64    `json:"umkmId"`
	PartnerID       *int64   `json:"partnerId"`
	WaliID          *int64   `json:"waliId"`
	ChildrenID      *int64   `json:"childrenId"`
	OwnerName       string   `json:"ownerName"`
	BusinessName    string   `json:"businessName"`
	BusinessAddress string   `json:"businessAddress"`
	BusinessType    string   `json:"businessType"`
	Products        string   `json:"products"`
	RegionID        *int64   `json:"regionId"`
	SubdistrictID   *int64   `json:"subdistrictId"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	UmkmPicture     string   `json:"umkmPicture,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}
