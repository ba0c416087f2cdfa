package sheet

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_WriteTable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	w, err := NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, w.WriteTable(testTable))
	require.NoError(t, w.Close())

	f, err := os.Open(filepath.Join(dir, "Messages.csv"))
	require.NoError(t, err)
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"user", "text"}, recs[0])
	assert.Equal(t, []string{"bob", "line one\nline two"}, recs[2], "embedded newline survives quoting")
}
