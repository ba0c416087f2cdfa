package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/rusq/tracer"
)

// initLog initialises the default logger.  If the filename is not empty,
// the log output is redirected to that file.  Verbose switches the level
// to debug.
func initLog(filename string, jsonHandler, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var out *os.File = os.Stderr
	if filename != "" {
		lf, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
		if err != nil {
			return slog.Default(), fmt.Errorf("failed to create the log file: %w", err)
		}
		log.SetOutput(lf) // redirect the standard log too, panics end up in the file.
		out = lf
	}

	var h slog.Handler = slog.NewTextHandler(out, opts)
	if jsonHandler {
		h = slog.NewJSONHandler(out, opts)
	}
	sl := slog.New(h)
	slog.SetDefault(sl)
	return sl, nil
}

// initTrace initialises the tracing.  If the filename is not empty, the
// trace is written to that file.  The returned stop function must be
// called in a deferred call.
func initTrace(filename string) (stop func()) {
	stop = func() {}
	if filename == "" {
		return
	}

	slog.Info("trace will be written to", "filename", filename)

	trc := tracer.New(filename)
	if err := trc.Start(); err != nil {
		slog.Warn("failed to start the trace", "filename", filename, "error", err)
		return
	}
	return func() {
		if err := trc.End(); err != nil {
			slog.Warn("failed to write the trace file", "filename", filename, "error", err)
		}
	}
}
