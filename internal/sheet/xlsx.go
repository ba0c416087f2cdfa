package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

func init() {
	openers[TXLSX] = NewXLSX
}

// XLSX writes tables as sheets of a single xlsx workbook.  The workbook is
// assembled in memory and saved on Close.
type XLSX struct {
	path      string
	f         *excelize.File
	wrapStyle int // lazily created, 0 = not yet
	sheets    int
}

// NewXLSX creates a workbook writer that saves to path on Close.
func NewXLSX(path string) (Writer, error) {
	return &XLSX{path: path, f: excelize.NewFile()}, nil
}

func (x *XLSX) WriteTable(t Table) error {
	if err := x.addSheet(t.Name); err != nil {
		return err
	}
	if err := x.setRow(t.Name, 1, t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := x.setRow(t.Name, i+2, row); err != nil {
			return err
		}
	}
	return x.applyWrap(t)
}

// addSheet creates the named sheet.  The first table takes over the
// default sheet that excelize creates with a new workbook.
func (x *XLSX) addSheet(name string) error {
	defer func() { x.sheets++ }()
	if x.sheets == 0 {
		return x.f.SetSheetName(x.f.GetSheetName(0), name)
	}
	_, err := x.f.NewSheet(name)
	return err
}

func (x *XLSX) setRow(sheet string, row int, cells []string) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]any, len(cells))
	for i, c := range cells {
		vals[i] = c
	}
	return x.f.SetSheetRow(sheet, ref, &vals)
}

// applyWrap sets the wrap-text style on every data cell of the designated
// free-text column that contains an embedded line break.
func (x *XLSX) applyWrap(t Table) error {
	col := t.WrapIndex()
	if col < 0 {
		return nil
	}
	for i, row := range t.Rows {
		if col >= len(row) || !strings.Contains(row[col], "\n") {
			continue
		}
		style, err := x.wrap()
		if err != nil {
			return err
		}
		ref, err := excelize.CoordinatesToCellName(col+1, i+2)
		if err != nil {
			return err
		}
		if err := x.f.SetCellStyle(t.Name, ref, ref, style); err != nil {
			return err
		}
	}
	return nil
}

func (x *XLSX) wrap() (int, error) {
	if x.wrapStyle != 0 {
		return x.wrapStyle, nil
	}
	style, err := x.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return 0, fmt.Errorf("wrap style: %w", err)
	}
	x.wrapStyle = style
	return style, nil
}

func (x *XLSX) Close() error {
	defer x.f.Close()
	return x.f.SaveAs(x.path)
}
