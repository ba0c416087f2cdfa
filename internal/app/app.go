// Package app wires the command line parameters to the conversion
// pipeline and decides between single-file and folder mode.
package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime/trace"
	"time"

	"github.com/J-VITA/slack-channel-converter/internal/convert"
	"github.com/J-VITA/slack-channel-converter/internal/options"
	"github.com/J-VITA/slack-channel-converter/internal/sheet"
)

// Config are the validated run parameters.
type Config struct {
	// Input is the backup file or the fragment directory.
	Input string
	// Output is the output location; empty derives it from the input.
	Output string
	// Folder forces directory-aggregation mode even if Input looks like a
	// file.  Directories always aggregate, regardless of this flag.
	Folder bool
	// Format is the output format.
	Format sheet.Type
	// OptionsFile is an optional TOML options file.
	OptionsFile string
	// Progress enables the console progress bar.
	Progress bool
}

var ErrNoInputPath = errors.New("input path is required")

// Validate checks the parameters that must be caught before the run
// starts.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrNoInputPath
	}
	if _, err := os.Stat(c.Input); err != nil {
		return err
	}
	return nil
}

// Run executes one conversion and returns the output location.  Nothing-
// to-do folder results surface as convert.ErrNoInput or convert.ErrEmpty
// for the caller to downgrade.
func Run(ctx context.Context, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	ctx, task := trace.NewTask(ctx, "Run")
	defer task.End()

	opts := convert.Options{Format: cfg.Format, Progress: cfg.Progress}
	if cfg.OptionsFile != "" {
		f, err := options.Load(cfg.OptionsFile)
		if err != nil {
			return "", err
		}
		if err := f.Apply(&opts); err != nil {
			return "", err
		}
	}

	start := time.Now()
	out, err := dispatch(ctx, cfg, opts)
	if err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "completed", "took", time.Since(start).String(), "output", out)
	return out, nil
}

func dispatch(ctx context.Context, cfg Config, opts convert.Options) (string, error) {
	fi, err := os.Stat(cfg.Input)
	if err != nil {
		return "", err
	}
	if cfg.Folder || fi.IsDir() {
		return convert.ConvertFolder(ctx, cfg.Input, cfg.Output, opts)
	}
	return convert.ConvertFile(ctx, cfg.Input, cfg.Output, opts)
}
