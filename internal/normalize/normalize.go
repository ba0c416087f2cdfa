// Package normalize cleans up raw message text for tabular output: Slack
// markup tags and emoji shortcodes are stripped (or rendered), line endings
// are unified and whitespace runs are collapsed.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/enescakir/emoji"
)

// Mode selects how emoji shortcodes (":smile:") are treated.
type Mode uint8

const (
	// MRemove deletes the shortcode token.
	MRemove Mode = iota
	// MReplace renders known shortcodes as the Unicode emoji; unknown ones
	// are deleted.
	MReplace
)

func (m Mode) String() string {
	switch m {
	case MRemove:
		return "remove"
	case MReplace:
		return "replace"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode converts a mode name to the Mode value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "remove":
		return MRemove, nil
	case "replace":
		return MReplace, nil
	}
	return MRemove, fmt.Errorf("unknown emoji mode: %q", s)
}

var (
	tagRE      = regexp.MustCompile(`<[^>]+>`)
	emojiRE    = regexp.MustCompile(`:[a-zA-Z0-9_+-]+:`)
	spaceRunRE = regexp.MustCompile(`[ \t]+`)
	blankRunRE = regexp.MustCompile(`\n\s*\n`)
	crlfRepl   = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Normalizer is a stateless text cleaner.  The zero value strips emoji
// shortcodes.
type Normalizer struct {
	mode Mode
}

// New returns a Normalizer with the given emoji mode.
func New(mode Mode) *Normalizer {
	return &Normalizer{mode: mode}
}

// Normalize cleans the raw text.  It never fails and always returns a
// string; empty input yields an empty string.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := tagRE.ReplaceAllString(raw, "")
	if n != nil && n.mode == MReplace {
		// render the shortcodes that the emoji library knows about, the
		// leftovers are stripped below.
		s = emoji.Parse(s)
	}
	s = emojiRE.ReplaceAllString(s, "")
	s = crlfRepl.Replace(s)
	s = spaceRunRE.ReplaceAllString(s, " ")
	s = blankRunRE.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Normalize cleans the raw text with the default (remove) emoji mode.
func Normalize(raw string) string {
	return (*Normalizer)(nil).Normalize(raw)
}
