package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J-VITA/slack-channel-converter/internal/sheet"
)

func Test_parseCmdLine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := parseCmdLine([]string{"backup.json"})
		require.NoError(t, err)
		assert.Equal(t, "backup.json", p.cfg.Input)
		assert.Equal(t, "", p.cfg.Output)
		assert.False(t, p.cfg.Folder)
		assert.Equal(t, sheet.TXLSX, p.cfg.Format)
		assert.True(t, p.cfg.Progress)
	})
	t.Run("all flags", func(t *testing.T) {
		p, err := parseCmdLine([]string{"-o", "out.xlsx", "-folder", "-format", "csv", "-v", "exports"})
		require.NoError(t, err)
		assert.Equal(t, "exports", p.cfg.Input)
		assert.Equal(t, "out.xlsx", p.cfg.Output)
		assert.True(t, p.cfg.Folder)
		assert.Equal(t, sheet.TCSV, p.cfg.Format)
		assert.True(t, p.verbose)
	})
	t.Run("long output flag", func(t *testing.T) {
		p, err := parseCmdLine([]string{"--output", "x.xlsx", "in.json"})
		require.NoError(t, err)
		assert.Equal(t, "x.xlsx", p.cfg.Output)
	})
	t.Run("bad format", func(t *testing.T) {
		_, err := parseCmdLine([]string{"-format", "parquet", "in.json"})
		assert.Error(t, err)
	})
	t.Run("no input", func(t *testing.T) {
		p, err := parseCmdLine([]string{})
		require.NoError(t, err)
		assert.Empty(t, p.cfg.Input, "missing input is resolved interactively later")
	})
}
