package convert

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/J-VITA/slack-channel-converter/internal/extract"
	"github.com/J-VITA/slack-channel-converter/internal/normalize"
	"github.com/J-VITA/slack-channel-converter/internal/sheet"
	"github.com/J-VITA/slack-channel-converter/internal/structures"
)

// FileResult is the outcome of processing one archive fragment: a message
// table on success, a diagnostic on failure.  A failed file contributes an
// empty table, it never aborts the batch.
type FileResult struct {
	Path  string
	Table sheet.Table
	Err   error
}

// Failed reports whether the file could not be read or parsed.
func (r FileResult) Failed() bool { return r.Err != nil }

// ProcessFile reads one archive fragment and produces its normalized
// message table.  Two document shapes are accepted: a bare message list,
// and an object with a "messages" key.  Anything else yields an empty
// table with a logged warning.  I/O and parse failures are captured in the
// result, logged, and never raised.
func ProcessFile(ctx context.Context, path string, idx structures.UserIndex, n *normalize.Normalizer) FileResult {
	name := filepath.Base(path)
	lg := slog.With("file", name)

	empty := func(err error) FileResult {
		return FileResult{Path: path, Table: extract.Messages(nil, idx, name, n), Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		lg.ErrorContext(ctx, "cannot read archive fragment", "error", err)
		return empty(err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		lg.ErrorContext(ctx, "cannot parse archive fragment", "error", err)
		return empty(err)
	}

	switch v := doc.(type) {
	case []any:
		// bare message list
		return FileResult{Path: path, Table: extract.Messages(structures.Records(v), idx, name, n)}
	case map[string]any:
		msgs, ok := structures.Record(v).List("messages")
		if !ok {
			lg.WarnContext(ctx, "archive object has no message list")
			return empty(nil)
		}
		return FileResult{Path: path, Table: extract.Messages(msgs, idx, name, n)}
	default:
		lg.WarnContext(ctx, "unrecognized document shape", "shape", shapeOf(doc))
		return empty(nil)
	}
}

func shapeOf(doc any) string {
	switch doc.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	}
	return "unknown"
}
