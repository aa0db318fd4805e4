// Package table is the declarative, column-driven view over a list of records:
// per-column text search, discrete filters, single-column sort and the
// per-column values used when the view is exported.
package table

import (
	"fmt"
	"strconv"
)

// FilterOption one selectable value of a column filter
type FilterOption struct {
	Label string `json:"text"`
	Value string `json:"value"`
}

// Column describes how one field of T is displayed, searched, filtered, sorted and exported.
// Only Key, Title and Value are required; every other behaviour is opt-in.
type Column[T any] struct {
	Key   string
	Title string

	// Value extracts the raw field value.
	Value func(T) any
	// Render formats the cell for display. Defaults to FormatValue(Value(row)).
	Render func(T) string

	// Searchable enables the inline text search. SearchText overrides the text
	// searched, e.g. a parents column searching employee and partner names together.
	Searchable bool
	SearchText func(T) string

	// Filters lists the discrete filter values. Match decides whether a row
	// carries a selected value; it defaults to equality with Render.
	Filters []FilterOption
	Match   func(row T, value string) bool

	// Compare makes the column sortable. It orders rows ascending.
	Compare func(a, b T) int

	// Export overrides the spreadsheet value. Defaults to Render, then Value.
	Export func(T) any

	// Mergeable marks the column for merging vertically adjacent equal cells on export.
	// When MergeKey is set, only adjacent rows with the same key are merged.
	Mergeable bool
	MergeKey  func(T) string
}

// ColumnMeta the parts of a column the UI needs to draw its header
type ColumnMeta struct {
	Key        string         `json:"key"`
	Title      string         `json:"title"`
	Searchable bool           `json:"searchable"`
	Sortable   bool           `json:"sortable"`
	Filters    []FilterOption `json:"filters,omitempty"`
}

// Meta describes the column for the UI
func (c Column[T]) Meta() ColumnMeta {
	return ColumnMeta{
		Key:        c.Key,
		Title:      c.Title,
		Searchable: c.Searchable,
		Sortable:   c.Compare != nil,
		Filters:    c.Filters,
	}
}

// Display the text shown in the cell
func (c Column[T]) Display(row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	if c.Value == nil {
		return ""
	}
	return FormatValue(c.Value(row))
}

// ExportValue the value written to the spreadsheet cell
func (c Column[T]) ExportValue(row T) any {
	switch {
	case c.Export != nil:
		return c.Export(row)
	case c.Render != nil:
		return c.Render(row)
	case c.Value != nil:
		return deref(c.Value(row))
	default:
		return ""
	}
}

func (c Column[T]) searchText(row T) string {
	if c.SearchText != nil {
		return c.SearchText(row)
	}
	return c.Display(row)
}

func (c Column[T]) matches(row T, value string) bool {
	if c.Match != nil {
		return c.Match(row, value)
	}
	return c.Display(row) == value
}

// Yes/no labels used for boolean cells
const (
	Yes = "Ya"
	No  = "Tidak"
)

// FormatValue stringifies a raw field value for display
func FormatValue(v any) string {
	switch t := deref(v).(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return Yes
		}
		return No
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func deref(v any) any {
	switch t := v.(type) {
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *int64:
		if t == nil {
			return nil
		}
		return *t
	case *int:
		if t == nil {
			return nil
		}
		return *t
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	case *bool:
		if t == nil {
			return nil
		}
		return *t
	default:
		return v
	}
}
