package convert

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/J-VITA/slack-channel-converter/internal/extract"
	"github.com/J-VITA/slack-channel-converter/internal/sheet"
	"github.com/J-VITA/slack-channel-converter/internal/structures"
)

// archive fragments are discovered by this extension.
const fragmentExt = ".json"

var (
	// ErrNoInput means the directory holds no archive fragments.  It is a
	// normal "nothing to do" result, not a fatal condition.
	ErrNoInput = errors.New("no archive files found")
	// ErrEmpty means the fragments were found but yielded no messages.
	ErrEmpty = errors.New("no messages to convert")
)

// sheet names of the aggregated views.
const (
	allMessagesSheet = "All_Messages"
	statisticsSheet  = "Statistics"
	datePrefix       = "Date_"
	// rows without a derivable calendar date are collected here, so the
	// date partition fully covers All_Messages.
	unknownDate = "unknown"
)

// ConvertFolder merges every archive fragment directly inside dir into one
// workbook: an All_Messages sheet sorted by datetime, one sheet per
// calendar date, and a Statistics sheet.  Fragments are processed in
// filename order; a fragment that fails to parse is logged and skipped.
// Returns ErrNoInput or ErrEmpty when there is nothing to convert.
func ConvertFolder(ctx context.Context, dir, output string, opts Options) (string, error) {
	files, err := discover(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoInput, dir)
	}
	slog.InfoContext(ctx, "found archive fragments", "dir", dir, "count", len(files))

	results := processAll(ctx, files, opts)
	rows := gather(results)
	if len(rows) == 0 {
		return "", ErrEmpty
	}
	slices.SortStableFunc(rows, func(a, b []string) int {
		return cmp.Compare(a[colDatetime], b[colDatetime])
	})

	if output == "" {
		output = filepath.Base(filepath.Clean(dir)) + convertedSuffix + opts.Format.Ext()
	}
	w, err := sheet.New(opts.Format, output)
	if err != nil {
		return "", err
	}
	if err := writeAggregated(ctx, w, rows); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", output, err)
	}

	failed := lo.CountBy(results, FileResult.Failed)
	slog.InfoContext(ctx, "aggregation completed",
		"messages", humanize.Comma(int64(len(rows))),
		"files", len(files),
		"failed_files", failed,
		"output", output,
	)
	return output, nil
}

// discover lists the archive fragments directly inside dir, sorted by
// filename for a reproducible processing order.  Non-recursive.
func discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), fragmentExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil // ReadDir returns entries sorted by name
}

// processAll runs the single-source processor over every fragment.  Folder
// mode has no user manifest, so author IDs resolve to "Unknown".
func processAll(ctx context.Context, files []string, opts Options) []FileResult {
	pb := newProgress(len(files), opts.Progress)
	defer pb.Finish()

	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		results = append(results, ProcessFile(ctx, f, nil, opts.Normalizer))
		pb.Add(1)
	}
	return results
}

func newProgress(n int, enabled bool) *progressbar.ProgressBar {
	if !enabled {
		return progressbar.DefaultSilent(int64(n))
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// gather concatenates the per-file tables, preserving the filename-sorted
// file order and the in-file order.
func gather(results []FileResult) [][]string {
	var rows [][]string
	for _, r := range results {
		rows = append(rows, r.Table.Rows...)
	}
	return rows
}

// writeAggregated emits the All_Messages sheet, the per-date sheets and
// the statistics sheet.  rows must already be sorted by datetime.
func writeAggregated(ctx context.Context, w sheet.Writer, rows [][]string) error {
	if err := w.WriteTable(messageTable(allMessagesSheet, rows)); err != nil {
		return err
	}

	byDate := lo.GroupBy(rows, dateKey)
	for _, date := range slices.Sorted(maps.Keys(byDate)) {
		// rows inherit the global datetime sort, each group is already
		// ordered.
		if err := w.WriteTable(messageTable(datePrefix+date, byDate[date])); err != nil {
			return err
		}
	}

	return w.WriteTable(statistics(rows))
}

func messageTable(name string, rows [][]string) sheet.Table {
	return sheet.Table{
		Name:       name,
		Header:     extract.MessageHeader,
		Rows:       rows,
		WrapColumn: extract.TextColumn,
	}
}

// dateKey derives the partition key of a message row.
func dateKey(row []string) string {
	if d := structures.DateOf(row[colDatetime]); d != "" {
		return d
	}
	return unknownDate
}

// column indexes into the message schema used by the aggregation.
var (
	colDatetime   = slices.Index(extract.MessageHeader, "datetime")
	colUsername   = slices.Index(extract.MessageHeader, "username")
	colSourceFile = slices.Index(extract.MessageHeader, "source_file")
)
