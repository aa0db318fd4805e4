package dto

import (
	"strings"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
)

// TableQueryRequest list/export query string.
//
//	?searchColumn=employeeName&searchTerm=budi&filter=isAccident:true&filter=regionName:Jakarta&sortColumn=createdAt&sortOrder=descend
type TableQueryRequest struct {
	SearchColumn string   `form:"searchColumn"`
	SearchTerm   string   `form:"searchTerm"`
	Filter       []string `form:"filter"`
	SortColumn   string   `form:"sortColumn"`
	SortOrder    string   `form:"sortOrder" binding:"omitempty,oneof=ascend descend asc desc"`
}

// FilterMap groups "column:value" pairs by column
func (q *TableQueryRequest) FilterMap() map[string][]string {
	if len(q.Filter) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, f := range q.Filter {
		col, val, ok := strings.Cut(f, ":")
		if !ok || col == "" {
			continue
		}
		out[col] = append(out[col], val)
	}
	return out
}

// Descending reports whether the sort order is descending
func (q *TableQueryRequest) Descending() bool {
	return q.SortOrder == "descend" || q.SortOrder == "desc"
}

// Query the table query it describes
func (q *TableQueryRequest) Query() table.Query {
	return table.Query{
		Search:  table.Search{Column: q.SearchColumn, Term: q.SearchTerm},
		Filters: q.FilterMap(),
		Sort:    table.Sort{Column: q.SortColumn, Desc: q.Descending()},
	}
}
