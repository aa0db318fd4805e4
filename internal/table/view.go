package table

// View holds one screen's dataset together with the query last applied to it.
// Current always reflects what the user sees, which is what export writes.
type View[T any] struct {
	columns []Column[T]
	all     []T
	query   Query
	current []T
}

// NewView creates an empty view over columns
func NewView[T any](columns []Column[T]) *View[T] {
	return &View[T]{columns: columns}
}

// Columns the column specification
func (v *View[T]) Columns() []Column[T] { return v.columns }

// Load replaces the whole dataset and re-applies the retained query.
// On error the previous dataset stays in view.
func (v *View[T]) Load(rows []T) error {
	current, err := Apply(v.columns, rows, v.query)
	if err != nil {
		return err
	}
	v.all = rows
	v.current = current
	return nil
}

// Apply retains q and recomputes the visible rows
func (v *View[T]) Apply(q Query) ([]T, error) {
	current, err := Apply(v.columns, v.all, q)
	if err != nil {
		return nil, err
	}
	v.query = q
	v.current = current
	return current, nil
}

// Query the retained query
func (v *View[T]) Query() Query { return v.query }

// Current the filtered and sorted rows
func (v *View[T]) Current() []T { return v.current }

// Total size of the loaded dataset before filtering
func (v *View[T]) Total() int { return len(v.all) }

// Meta column metadata for the UI
func (v *View[T]) Meta() []ColumnMeta {
	out := make([]ColumnMeta, len(v.columns))
	for i, c := range v.columns {
		out[i] = c.Meta()
	}
	return out
}

// Highlights the search segments of the searched column for each visible row,
// keyed by row position in Current. Segments cover the same text the search
// matched, so every visible row has at least one match. Empty when no search is active.
func (v *View[T]) Highlights() map[int][]Segment {
	if !v.query.Search.Active() {
		return nil
	}
	var col *Column[T]
	for i := range v.columns {
		if v.columns[i].Key == v.query.Search.Column {
			col = &v.columns[i]
			break
		}
	}
	if col == nil {
		return nil
	}
	out := make(map[int][]Segment, len(v.current))
	for i, row := range v.current {
		out[i] = Highlight(col.searchText(row), v.query.Search.Term)
	}
	return out
}
