// Package export writes a table view to an .xlsx workbook.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
)

// ErrEmpty there are no rows to export
var ErrEmpty = errors.New("nothing to export")

const (
	pictureWidth = 15
	minWidth     = 8
	maxWidth     = 60
	widthPadding = 2
)

// Options formatting of the generated workbook
type Options struct {
	SheetName string
	// Location dates are shown in. Defaults to UTC.
	Location *time.Location
	// DateLayout Go layout for ISO-8601 date strings. Defaults to 02/01/2006.
	DateLayout string
	// MergeDuplicates merges vertically adjacent equal cells of Mergeable columns.
	MergeDuplicates bool
}

func (o Options) withDefaults() Options {
	if o.SheetName == "" {
		o.SheetName = "Data"
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.DateLayout == "" {
		o.DateLayout = "02/01/2006"
	}
	return o
}

// Workbook renders rows, in the given order, as one sheet: a styled header row and
// one row per record using each column's export value.
func Workbook[T any](columns []table.Column[T], rows []T, opts Options) (*bytes.Buffer, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if len(columns) == 0 {
		return nil, errors.New("export: no columns")
	}
	opts = opts.withDefaults()

	f := excelize.NewFile()
	defer f.Close()

	sheet := opts.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(columns))

	// ── header ──
	for c, col := range columns {
		ref, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, ref, col.Title); err != nil {
			return nil, err
		}
		widths[c] = utf8.RuneCountInString(col.Title)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", styles.header); err != nil {
		return nil, err
	}

	// ── data ──
	for r, row := range rows {
		excelRow := r + 2
		for c, col := range columns {
			ref, _ := excelize.CoordinatesToCellName(c+1, excelRow)
			v := CellValue(col.ExportValue(row), opts)
			if err := f.SetCellValue(sheet, ref, v); err != nil {
				return nil, err
			}
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[c] {
				widths[c] = n
			}
		}
		style := styles.odd
		if r%2 == 1 {
			style = styles.even
		}
		first, _ := excelize.CoordinatesToCellName(1, excelRow)
		last, _ := excelize.CoordinatesToCellName(len(columns), excelRow)
		if err := f.SetCellStyle(sheet, first, last, style); err != nil {
			return nil, err
		}
	}

	// ── widths ──
	for c, col := range columns {
		name, _ := excelize.ColumnNumberToName(c + 1)
		w := float64(clamp(widths[c]+widthPadding, minWidth, maxWidth))
		if IsPictureColumn(col.Key) {
			w = pictureWidth
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return nil, err
		}
	}

	if opts.MergeDuplicates {
		if err := mergeDuplicates(f, sheet, columns, rows, opts); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// Filename the download name for an entity export, e.g. employee_20261019.xlsx
func Filename(entity string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", entity, now.Format("20060102"))
}

// IsPictureColumn reports whether a column holds a photo URL.
// Such columns are kept narrow and not sized by content.
func IsPictureColumn(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), "picture")
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:?\d{2})?)?$`)

// CellValue converts an export value to what is written to the cell:
// booleans become Ya/Tidak and ISO-8601 date strings a localized date.
func CellValue(v any, opts Options) any {
	opts = opts.withDefaults()
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return table.Yes
		}
		return table.No
	case *bool:
		if t == nil {
			return ""
		}
		return CellValue(*t, opts)
	case string:
		if isoDate.MatchString(t) {
			if ts, ok := parseISO(t, opts.Location); ok {
				return ts.Format(opts.DateLayout)
			}
		}
		return t
	case *string:
		if t == nil {
			return ""
		}
		return CellValue(*t, opts)
	case *int64:
		if t == nil {
			return ""
		}
		return *t
	case *float64:
		if t == nil {
			return ""
		}
		return *t
	case time.Time:
		return t.In(opts.Location).Format(opts.DateLayout)
	default:
		return v
	}
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISO(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range isoLayouts {
		ts, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return ts.In(loc), true
		}
	}
	return time.Time{}, false
}

func mergeDuplicates[T any](f *excelize.File, sheet string, columns []table.Column[T], rows []T, opts Options) error {
	for c, col := range columns {
		if !col.Mergeable {
			continue
		}
		cell := func(r int) (key, value string) {
			if col.MergeKey != nil {
				key = col.MergeKey(rows[r])
			}
			return key, fmt.Sprint(CellValue(col.ExportValue(rows[r]), opts))
		}
		start := 0
		prevKey, prev := cell(0)
		for r := 1; r <= len(rows); r++ {
			if r < len(rows) {
				key, cur := cell(r)
				if key == prevKey && cur == prev {
					continue
				}
				if r-1 > start && prev != "" {
					if err := mergeRun(f, sheet, c, start, r-1); err != nil {
						return err
					}
				}
				start, prevKey, prev = r, key, cur
				continue
			}
			if r-1 > start && prev != "" {
				if err := mergeRun(f, sheet, c, start, r-1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// mergeRun merges data rows first..last (0-based) of column c
func mergeRun(f *excelize.File, sheet string, c, first, last int) error {
	top, _ := excelize.CoordinatesToCellName(c+1, first+2)
	bottom, _ := excelize.CoordinatesToCellName(c+1, last+2)
	if err := f.MergeCell(sheet, top, bottom); err != nil {
		return fmt.Errorf("merge %s:%s: %w", top, bottom, err)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
