package dto

import (
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
)

// ── table responses ──

// TableResponse one screen's worth of rows plus what the UI needs to draw the grid.
// Highlights is keyed by row position in Rows.
type TableResponse[T any] struct {
	Columns    []table.ColumnMeta      `json:"columns"`
	Rows       []T                     `json:"rows"`
	Highlights map[int][]table.Segment `json:"highlights,omitempty"`
	Total      int                     `json:"total"`
	Filtered   int                     `json:"filtered"`
	Query      TableQueryResponse      `json:"query"`
}

// TableQueryResponse echoes the applied query so the UI can restore its controls
type TableQueryResponse struct {
	SearchColumn string              `json:"searchColumn,omitempty"`
	SearchTerm   string              `json:"searchTerm,omitempty"`
	Filters      map[string][]string `json:"filters,omitempty"`
	SortColumn   string              `json:"sortColumn,omitempty"`
	SortOrder    string              `json:"sortOrder,omitempty"`
}

// ── dashboard ──

// CountsResponse dashboard summary counts
type CountsResponse struct {
	Employees int `json:"employees"`
	Partners  int `json:"partners"`
	Walis     int `json:"walis"`
	Children  int `json:"children"`
	Homes     int `json:"homes"`
	Umkm      int `json:"umkm"`
	// Staff is omitted when the backend refuses the caller the staff list.
	Staff *int `json:"staff,omitempty"`
}

// OptionResponse a select option in a create/edit form
type OptionResponse struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// FormOptionsResponse every lookup list the create forms need
type FormOptionsResponse struct {
	Employees    []OptionResponse `json:"employees"`
	Partners     []OptionResponse `json:"partners"`
	Walis        []OptionResponse `json:"walis"`
	Regions      []OptionResponse `json:"regions"`
	Subdistricts []OptionResponse `json:"subdistricts"`
}

// DeleteConfirmationResponse returned when a delete arrives without confirmation
type DeleteConfirmationResponse struct {
	Entity string `json:"entity"`
	ID     int64  `json:"id"`
	Prompt string `json:"prompt"`
}

// FormErrorResponse a rejected form: the first failing field and the submitted values,
// so the form can be shown again as entered
type FormErrorResponse struct {
	Field  string `json:"field,omitempty"`
	Values any    `json:"values,omitempty"`
}
