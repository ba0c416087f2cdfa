// Package convert holds the conversion pipeline: reading archive files,
// flattening their records into tables and feeding the tables to the sheet
// writer.  Everything is single-pass and in-memory; the whole dataset is
// held before sorting and partitioning, which sets the practical size
// ceiling.
package convert

import (
	"github.com/J-VITA/slack-channel-converter/internal/normalize"
	"github.com/J-VITA/slack-channel-converter/internal/sheet"
)

// suffix appended to the input name to derive the default output location.
const convertedSuffix = "_converted"

// Options control a conversion run.  The zero value writes an xlsx
// workbook, strips emoji shortcodes and shows no progress bar.
type Options struct {
	// Format selects the output format.
	Format sheet.Type
	// Normalizer cleans message bodies; nil means the default (remove
	// emoji shortcodes).
	Normalizer *normalize.Normalizer
	// Progress enables the console progress bar in folder mode.
	Progress bool
}
