package display

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"pathfinder/internal/fswalk"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 0, "short"},
		{"short", 10, "short"},
		{"averylongname.txt", 10, "averylo..."},
		{"abcdef", 2, "ab"},
		{"日本語のファイル", 9, "日本語..."},
	}
	for _, tc := range cases {
		got := Truncate(tc.in, tc.width)
		if got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
		if tc.width > 0 && runewidth.StringWidth(got) > tc.width {
			t.Fatalf("Truncate(%q, %d) is %d columns wide", tc.in, tc.width, runewidth.StringWidth(got))
		}
	}
}

func TestLabelPlain(t *testing.T) {
	l := NewLabeler(Options{MaxWidth: 6})
	for _, kind := range []fswalk.EntryKind{fswalk.KindFile, fswalk.KindDir, fswalk.KindSymlink, fswalk.KindOther} {
		got := l.Label(fswalk.Entry{Name: "name.go", Kind: kind})
		if got != "nam..." {
			t.Fatalf("Label(%v) = %q", kind, got)
		}
	}
}

func TestLabelColor(t *testing.T) {
	l := NewLabeler(Options{Color: true})
	dir := l.Label(fswalk.Entry{Name: "src", Kind: fswalk.KindDir})
	if !strings.Contains(dir, "\x1b[") || !strings.Contains(dir, "src") {
		t.Fatalf("expected ANSI-coloured dir label, got %q", dir)
	}
	if file := l.Label(fswalk.Entry{Name: "main.go", Kind: fswalk.KindFile}); file != "main.go" {
		t.Fatalf("files are not coloured, got %q", file)
	}
}
