package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type styles struct {
	header int
	odd    int
	even   int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#BFBFBF", Style: 1},
		{Type: "top", Color: "#BFBFBF", Style: 1},
		{Type: "right", Color: "#BFBFBF", Style: 1},
		{Type: "bottom", Color: "#BFBFBF", Style: 1},
	}
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F6F43"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return s, fmt.Errorf("header style: %w", err)
	}

	s.odd, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return s, fmt.Errorf("row style: %w", err)
	}

	s.even, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#EAF4EE"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return s, fmt.Errorf("shaded row style: %w", err)
	}
	return s, nil
}
