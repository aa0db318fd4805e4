package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotSearchable = errors.New("column is not searchable")
	ErrNotFilterable = errors.New("column has no filters")
	ErrNotSortable   = errors.New("column is not sortable")
)

// Search the retained search term and the column it applies to
type Search struct {
	Column string `json:"column"`
	Term   string `json:"term"`
}

// Active reports whether the search restricts rows
func (s Search) Active() bool { return s.Column != "" && strings.TrimSpace(s.Term) != "" }

// Sort single-column ordering
type Sort struct {
	Column string `json:"column"`
	Desc   bool   `json:"desc"`
}

// Query the user's current search, filter and sort choices
type Query struct {
	Search  Search              `json:"search"`
	Filters map[string][]string `json:"filters,omitempty"`
	Sort    Sort                `json:"sort"`
}

// Apply returns the rows that pass the search and every column filter, in sort order.
// Filter values within one column are alternatives; filters on different columns all apply.
// rows is not modified.
func Apply[T any](columns []Column[T], rows []T, q Query) ([]T, error) {
	byKey := make(map[string]Column[T], len(columns))
	for _, c := range columns {
		byKey[c.Key] = c
	}

	var preds []func(T) bool

	if q.Search.Active() {
		col, ok := byKey[q.Search.Column]
		if !ok {
			return nil, fmt.Errorf("search %q: %w", q.Search.Column, ErrUnknownColumn)
		}
		if !col.Searchable {
			return nil, fmt.Errorf("search %q: %w", q.Search.Column, ErrNotSearchable)
		}
		term := strings.TrimSpace(q.Search.Term)
		preds = append(preds, func(row T) bool {
			return ContainsFold(col.searchText(row), term)
		})
	}

	filterKeys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		filterKeys = append(filterKeys, k)
	}
	slices.Sort(filterKeys)

	for _, key := range filterKeys {
		values := q.Filters[key]
		if len(values) == 0 {
			continue
		}
		col, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("filter %q: %w", key, ErrUnknownColumn)
		}
		if len(col.Filters) == 0 && col.Match == nil {
			return nil, fmt.Errorf("filter %q: %w", key, ErrNotFilterable)
		}
		preds = append(preds, func(row T) bool {
			for _, v := range values {
				if col.matches(row, v) {
					return true
				}
			}
			return false
		})
	}

	out := make([]T, 0, len(rows))
rowLoop:
	for _, row := range rows {
		for _, p := range preds {
			if !p(row) {
				continue rowLoop
			}
		}
		out = append(out, row)
	}

	if q.Sort.Column != "" {
		col, ok := byKey[q.Sort.Column]
		if !ok {
			return nil, fmt.Errorf("sort %q: %w", q.Sort.Column, ErrUnknownColumn)
		}
		if col.Compare == nil {
			return nil, fmt.Errorf("sort %q: %w", q.Sort.Column, ErrNotSortable)
		}
		cmp := col.Compare
		if q.Sort.Desc {
			cmp = func(a, b T) int { return col.Compare(b, a) }
		}
		slices.SortStableFunc(out, cmp)
	}

	return out, nil
}

// ContainsFold reports whether term occurs in text, ignoring case
func ContainsFold(text, term string) bool {
	return indexFold([]rune(text), foldRunes(term), 0) >= 0
}

// Segment a piece of cell text, marked when it matched the search term
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits text around every case-insensitive occurrence of term.
// A blank term yields the whole text as one unmatched segment.
func Highlight(text, term string) []Segment {
	term = strings.TrimSpace(term)
	runes := []rune(text)
	needle := foldRunes(term)
	if len(needle) == 0 {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	pos := 0
	for {
		i := indexFold(runes, needle, pos)
		if i < 0 {
			break
		}
		if i > pos {
			segs = append(segs, Segment{Text: string(runes[pos:i])})
		}
		segs = append(segs, Segment{Text: string(runes[i : i+len(needle)]), Match: true})
		pos = i + len(needle)
	}
	if pos < len(runes) || len(segs) == 0 {
		segs = append(segs, Segment{Text: string(runes[pos:])})
	}
	return segs
}

func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func indexFold(haystack, needle []rune, from int) int {
	if len(needle) == 0 {
		return from
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, r := range needle {
			if unicode.ToLower(haystack[i+j]) != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
