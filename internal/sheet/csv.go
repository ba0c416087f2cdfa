package sheet

import (
	"encoding/csv"
	"errors"

	"github.com/rusq/fsadapter"
)

func init() {
	openers[TCSV] = NewCSV
}

// CSV writes each table as a "<name>.csv" file.  The destination is
// anything fsadapter understands: a directory, or a ".zip" location.  CSV
// needs no wrap-text styling, embedded line breaks are quoted by the
// encoder.
type CSV struct {
	fsa fsadapter.FSCloser
}

// NewCSV creates a CSV set writer on the destination dst.
func NewCSV(dst string) (Writer, error) {
	fsa, err := fsadapter.New(dst)
	if err != nil {
		return nil, err
	}
	return &CSV{fsa: fsa}, nil
}

func (c *CSV) WriteTable(t Table) error {
	f, err := c.fsa.Create(t.Name + ".csv")
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	err = w.Write(t.Header)
	for _, row := range t.Rows {
		if err != nil {
			break
		}
		err = w.Write(row)
	}
	if err == nil {
		w.Flush()
		err = w.Error()
	}
	return errors.Join(err, f.Close())
}

func (c *CSV) Close() error {
	return c.fsa.Close()
}
