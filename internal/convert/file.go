package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/J-VITA/slack-channel-converter/internal/extract"
	"github.com/J-VITA/slack-channel-converter/internal/sheet"
	"github.com/J-VITA/slack-channel-converter/internal/structures"
)

// ConvertFile converts one backup file into a workbook: Users, Channels
// and Messages sheets (each only if the source key is present), then one
// sheet per channel that carries its own nested message list.  It returns
// the output location.  An empty output derives the location from the
// input path ("<base>_converted" plus the format extension).
func ConvertFile(ctx context.Context, path, output string, opts Options) (string, error) {
	lg := slog.With("file", path)
	lg.InfoContext(ctx, "reading backup file")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	rec, ok := doc.(map[string]any)
	if !ok {
		// a bare message list is accepted here too, same as in folder mode.
		if list, isList := doc.([]any); isList {
			rec = map[string]any{"messages": list}
		} else {
			return "", fmt.Errorf("unrecognized document shape in %s", path)
		}
	}

	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + convertedSuffix + opts.Format.Ext()
	}
	lg.InfoContext(ctx, "converting", "output", output, "format", opts.Format)

	w, err := sheet.New(opts.Format, output)
	if err != nil {
		return "", err
	}
	if err := writeArchive(ctx, w, structures.Record(rec), opts); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", output, err)
	}
	return output, nil
}

// writeArchive emits the sheets of one full backup object in the fixed
// order: Users, Channels, top-level Messages, then the per-channel sheets.
func writeArchive(ctx context.Context, w sheet.Writer, rec structures.Record, opts Options) error {
	used := make(map[string]bool)
	var idx structures.UserIndex

	if users, ok := rec.List("users"); ok {
		idx = structures.NewUserIndex(users)
		if err := writeSheet(w, used, extract.Users(users)); err != nil {
			return err
		}
	}
	channels, hasChannels := rec.List("channels")
	if hasChannels {
		if err := writeSheet(w, used, extract.Channels(channels)); err != nil {
			return err
		}
	}
	if msgs, ok := rec.List("messages"); ok {
		if err := writeSheet(w, used, extract.Messages(msgs, idx, "", opts.Normalizer)); err != nil {
			return err
		}
	}
	if !hasChannels {
		return nil
	}
	for _, ch := range channels {
		msgs, ok := ch.List("messages")
		if !ok {
			continue
		}
		tbl := extract.Messages(msgs, idx, "", opts.Normalizer)
		tbl.Name = structures.NVL(ch.String("name"), ch.String("id"), "unknown")
		slog.DebugContext(ctx, "converting channel messages", "channel", tbl.Name, "messages", len(tbl.Rows))
		if err := writeSheet(w, used, tbl); err != nil {
			return err
		}
	}
	return nil
}

// writeSheet clips the sheet name to the workbook limit, resolves
// collisions and writes the table.
func writeSheet(w sheet.Writer, used map[string]bool, t sheet.Table) error {
	t.Name = sheetName(t.Name, used)
	return w.WriteTable(t)
}

// workbook sheet names are limited to 31 characters; longer names are cut
// to 28 plus an ellipsis marker.
const (
	maxSheetName  = 31
	truncsheetLen = 28
)

// sheetName clips name to the 31-character sheet name limit and, if the
// clipped name was already handed out, appends " (2)", " (3)", ... without
// exceeding the limit.
func sheetName(name string, used map[string]bool) string {
	r := []rune(name)
	if len(r) > maxSheetName {
		name = string(r[:truncsheetLen]) + "..."
		r = []rune(name)
	}
	if !used[name] {
		used[name] = true
		return name
	}
	for i := 2; ; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		cand := name
		if len(r)+len(suffix) > maxSheetName {
			cand = string(r[:maxSheetName-len(suffix)])
		}
		cand += suffix
		if !used[cand] {
			used[cand] = true
			return cand
		}
	}
}
