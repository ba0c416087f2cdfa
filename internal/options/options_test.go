package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J-VITA/slack-channel-converter/internal/convert"
	"github.com/J-VITA/slack-channel-converter/internal/sheet"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slackconv.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f, err := Load(writeOptions(t, "format = \"csv\"\nemoji_mode = \"replace\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "csv", f.Format)
		assert.Equal(t, "replace", f.EmojiMode)
	})
	t.Run("empty file is fine", func(t *testing.T) {
		f, err := Load(writeOptions(t, ""))
		require.NoError(t, err)
		assert.Equal(t, &File{}, f)
	})
	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeOptions(t, "format = \"parquet\"\n"))
		assert.ErrorIs(t, err, ErrInvalid)
	})
	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeOptions(t, "fromat = \"csv\"\n"))
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.toml"))
		assert.Error(t, err)
	})
}

func TestFile_Apply(t *testing.T) {
	var o convert.Options
	f := &File{Format: "csv", EmojiMode: "replace"}
	require.NoError(t, f.Apply(&o))
	assert.Equal(t, sheet.TCSV, o.Format)
	require.NotNil(t, o.Normalizer)
	assert.Contains(t, o.Normalizer.Normalize("go :beer:"), "\U0001F37A")

	// an empty file changes nothing.
	var def convert.Options
	require.NoError(t, (&File{}).Apply(&def))
	assert.Equal(t, convert.Options{}, def)
}
