// Package sheet is the tabular sink: it takes named, fixed-schema row
// tables and persists them as sheets of an output workbook.  Two output
// formats are provided, a single xlsx workbook and a set of CSV files.
package sheet

import (
	"fmt"
	"slices"
	"strings"
)

// Table is an ordered, fixed-schema set of rows destined for one sheet.
type Table struct {
	// Name is the sheet name.
	Name string
	// Header holds the column names, in output order.
	Header []string
	// Rows are the data rows.  Every row has exactly len(Header) cells.
	Rows [][]string
	// WrapColumn names the free-text column that gets the wrap-text style
	// when a cell contains an embedded line break.  Empty means none.
	WrapColumn string
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// WrapIndex returns the index of the wrap column in the header, or -1.
func (t Table) WrapIndex() int {
	if t.WrapColumn == "" {
		return -1
	}
	return slices.Index(t.Header, t.WrapColumn)
}

// Writer persists named tables, one sheet per table, in the order they are
// written.  Writing a table with a name that was already written replaces
// the earlier sheet.  Close finalises the output; no output is guaranteed
// to exist before Close returns.
type Writer interface {
	WriteTable(t Table) error
	Close() error
}

// Type is the output format type.
type Type int

const (
	TXLSX Type = iota // xlsx workbook
	TCSV              // set of CSV files in a directory or zip
)

var typenames = map[Type]string{
	TXLSX: "xlsx",
	TCSV:  "csv",
}

func (t Type) String() string {
	if s, ok := typenames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Set implements flag.Value.
func (t *Type) Set(v string) error {
	for typ, name := range typenames {
		if strings.EqualFold(v, name) {
			*t = typ
			return nil
		}
	}
	return fmt.Errorf("unknown output format: %s", v)
}

// Ext returns the extension to append to a default output location.  For
// the CSV set it is empty: the destination is a directory (or a .zip given
// explicitly).
func (t Type) Ext() string {
	switch t {
	case TXLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// openers is the format registry, populated by the format implementations
// in their init functions.
var openers = make(map[Type]func(dst string) (Writer, error))

// New opens a Writer of the requested type writing to dst.
func New(t Type, dst string) (Writer, error) {
	fn, ok := openers[t]
	if !ok {
		return nil, fmt.Errorf("no writer for format %s", t)
	}
	return fn(dst)
}
