package model

// Region administrative region lookup row
type Region struct {
	RegionID   int64  `json:"regionId"`
	RegionName string `json:"regionName"`
}

// Subdistrict subdistrict lookup row
type Subdistrict struct {
	SubdistrictID   int64  `json:"subdistrictId"`
	SubdistrictName string `json:"subdistrictName"`
	RegionID        *int64 `json:"regionId"`
}
