package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"tags and emoji", "hello <b>world</b> :smile:", "hello world"},
		{"user mention tag", "hey <@U12345> look", "hey look"},
		{"emoji with plus and hyphen", "ok :+1: :point-up: done", "ok done"},
		{"digits make a token too", "10:30: meeting", "10 meeting"},
		{"crlf", "one\r\ntwo\rthree", "one\ntwo\nthree"},
		{"space runs", "a  \t b", "a b"},
		{"newlines kept", "a\nb", "a\nb"},
		{"blank line runs", "a\n\n\n\nb", "a\n\nb"},
		{"blank run with spaces", "a\n   \n\t\nb", "a\n\nb"},
		{"trim", "  padded  ", "padded"},
		{"only markup", "<http://example.com> :smile:", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizer_replaceMode(t *testing.T) {
	n := New(MReplace)

	got := n.Normalize("cheers :beer:")
	if got == "cheers" {
		t.Error("replace mode stripped a known shortcode instead of rendering it")
	}
	if want := "cheers \U0001F37A"; got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}

	// unknown shortcodes are still stripped.
	if got := n.Normalize("x :no_such_emoji_123: y"); got != "x y" {
		t.Errorf("Normalize() = %q, want %q", got, "x y")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"remove", MRemove, false},
		{"REPLACE", MReplace, false},
		{"shrug", MRemove, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
