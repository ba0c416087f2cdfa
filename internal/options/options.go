// Package options loads the optional conversion options file.  The file
// is TOML; every key is optional and overrides the command line default.
package options

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/J-VITA/slack-channel-converter/internal/convert"
	"github.com/J-VITA/slack-channel-converter/internal/normalize"
)

// ErrInvalid is returned when the options file fails validation; the
// individual problems are printed to stderr.
var ErrInvalid = errors.New("options file validation failed")

// File is the conversion options file.
//
// Example:
//
//	format = "csv"
//	emoji_mode = "replace"
type File struct {
	// Format overrides the output format ("xlsx" or "csv").
	Format string `toml:"format" validate:"omitempty,oneof=xlsx csv"`
	// EmojiMode selects what happens to emoji shortcodes in message text
	// ("remove" or "replace").
	EmojiMode string `toml:"emoji_mode" validate:"omitempty,oneof=remove replace"`
}

// Load reads, parses and validates the options file.
func Load(filename string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(filename, &f)
	if err != nil {
		return nil, fmt.Errorf("options file %s: %w", filename, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("options file %s: unknown keys: %v", filename, undec)
	}
	if err := validator.New().Struct(&f); err != nil {
		if perr := printErrors(os.Stderr, err); perr != nil {
			return nil, perr
		}
		return nil, ErrInvalid
	}
	return &f, nil
}

// Apply overlays the file values onto the conversion options.
func (f *File) Apply(o *convert.Options) error {
	if f.Format != "" {
		if err := o.Format.Set(f.Format); err != nil {
			return err
		}
	}
	if f.EmojiMode != "" {
		mode, err := normalize.ParseMode(f.EmojiMode)
		if err != nil {
			return err
		}
		o.Normalizer = normalize.New(mode)
	}
	return nil
}

func printErrors(w io.Writer, err error) error {
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return err
	}
	var sb strings.Builder
	sb.WriteString("Detected problems:\n")
	for i, entry := range vErr {
		fmt.Fprintf(&sb, "\t%2d: key %q does not satisfy %q\n", i+1, entry.Field(), entry.Tag())
	}
	_, werr := io.WriteString(w, sb.String())
	return werr
}
