package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/J-VITA/slack-channel-converter/cmd/slackconv/internal/ui"
	"github.com/J-VITA/slack-channel-converter/internal/app"
)

// interactive asks for the run parameters that were not given on the
// command line.
func interactive(cfg *app.Config) error {
	input, err := ui.Input("Input file or folder",
		"Path to a backup JSON file, or to a folder of backup fragments.",
		validateExists)
	if err != nil {
		return err
	}
	cfg.Input = input

	if fi, err := os.Stat(input); err == nil && !fi.IsDir() {
		folder, err := ui.Confirm("Merge the whole folder?",
			"Aggregates all JSON files next to the input instead of converting the single file.")
		if err != nil {
			return err
		}
		if folder {
			cfg.Folder = true
			cfg.Input = filepath.Dir(input)
		}
	}

	output, err := ui.Input("Output location",
		"Leave empty to derive it from the input name.", nil)
	if err != nil {
		return err
	}
	cfg.Output = output
	return nil
}

func validateExists(path string) error {
	if path == "" {
		return errors.New("value is required")
	}
	if _, err := os.Stat(path); err != nil {
		return errors.New("file or folder not found")
	}
	return nil
}
