package convert

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/J-VITA/slack-channel-converter/internal/fixtures"
)

func TestConvertFolder(t *testing.T) {
	dir := t.TempDir()
	day1 := time.Date(2023, 11, 14, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2023, 11, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day1.json"), fixtures.GenFragment(3, day1, "U1", "U2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day2.json"), fixtures.GenFragment(2, day2, "U1"), 0o644))
	// one corrupt fragment must not abort the batch.
	writeFile(t, dir, "corrupt.json", fixtures.TestBrokenJSON)
	// non-fragment files are ignored.
	writeFile(t, dir, "readme.txt", "not an archive")

	out := filepath.Join(t.TempDir(), "merged.xlsx")
	got, err := ConvertFolder(t.Context(), dir, out, Options{})
	require.NoError(t, err)
	assert.Equal(t, out, got)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"All_Messages",
		"Date_2023-11-14",
		"Date_2023-11-15",
		"Statistics",
	}, f.GetSheetList())

	all, err := f.GetRows("All_Messages")
	require.NoError(t, err)
	require.Len(t, all, 6, "header plus the 5 messages of the parseable fragments")
	hdr := all[0]

	// sorted non-decreasing by datetime.
	var prev string
	for _, row := range all[1:] {
		dt := rowMap(t, hdr, row)["datetime"]
		assert.GreaterOrEqual(t, dt, prev)
		prev = dt
	}

	// the date partition is a full, non-overlapping cover of All_Messages.
	d1, err := f.GetRows("Date_2023-11-14")
	require.NoError(t, err)
	d2, err := f.GetRows("Date_2023-11-15")
	require.NoError(t, err)
	assert.Equal(t, len(all), len(d1)+len(d2)-1, "every message lands in exactly one date sheet")
	for _, row := range d1[1:] {
		assert.Equal(t, "2023-11-14", rowMap(t, hdr, row)["datetime"][:10])
	}

	// statistics: every grouping sums up to the total message count.
	stats, err := f.GetRows("Statistics")
	require.NoError(t, err)
	sums := map[string]int{}
	for _, row := range stats[1:] {
		n, err := strconv.Atoi(row[2])
		require.NoError(t, err)
		sums[row[0]] += n
	}
	assert.Equal(t, 5, sums["messages_per_day"])
	assert.Equal(t, 5, sums["messages_per_user"])
	assert.Equal(t, 5, sums["messages_per_file"])

	// per-file counts carry the provenance tags.
	assert.Contains(t, stats, []string{"messages_per_file", "day1.json", "3"})
	assert.Contains(t, stats, []string{"messages_per_file", "day2.json", "2"})
}

func TestConvertFolder_defaultOutput(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "backup")
	require.NoError(t, os.Mkdir(dir, 0o755))
	writeFile(t, dir, "a.json", fixtures.TestFragmentJSON)

	// the default output derives from the directory name and lands in the
	// working directory.
	t.Chdir(base)

	out, err := ConvertFolder(t.Context(), dir, "", Options{})
	require.NoError(t, err)
	assert.Equal(t, "backup_converted.xlsx", out)
	assert.FileExists(t, filepath.Join(base, out))
}

func TestConvertFolder_empty(t *testing.T) {
	dir := t.TempDir()

	_, err := ConvertFolder(t.Context(), dir, "", Options{})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestConvertFolder_noMessages(t *testing.T) {
	dir := t.TempDir()
	// only unparsable and message-less fragments: distinct from "no files".
	writeFile(t, dir, "broken.json", fixtures.TestBrokenJSON)
	writeFile(t, dir, "nomsg.json", fixtures.TestNoMessagesJSON)

	_, err := ConvertFolder(t.Context(), dir, "", Options{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestConvertFolder_notADir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "file.json", fixtures.TestFragmentJSON)

	_, err := ConvertFolder(t.Context(), path, "", Options{})
	assert.Error(t, err)
}

func TestConvertFolder_datelessRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mixed.json", `[
		{"ts": "1700000000.000000", "user": "U1", "text": "dated"},
		{"user": "U1", "text": "dateless"}
	]`)

	out, err := ConvertFolder(t.Context(), dir, filepath.Join(t.TempDir(), "out.xlsx"), Options{})
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Date_unknown")
	rows, err := f.GetRows("Date_unknown")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "dateless", rowMap(t, rows[0], rows[1])["text"])
}
