// Package display turns walked entries into tree labels.
package display

import (
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pathfinder/internal/fswalk"
)

// Options configures Labeler.
type Options struct {
	Color    bool
	MaxWidth int // display columns per label, 0 = unlimited
}

// Labeler renders entry names, truncated by display width and coloured by
// kind.
type Labeler struct {
	opts    Options
	dir     *color.Color
	symlink *color.Color
	other   *color.Color
}

// NewLabeler creates a Labeler.
func NewLabeler(opts Options) *Labeler {
	l := &Labeler{
		opts:    opts,
		dir:     color.New(color.FgBlue, color.Bold),
		symlink: color.New(color.FgCyan),
		other:   color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{l.dir, l.symlink, l.other} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return l
}

// Label is a FormatTree label function.
func (l *Labeler) Label(e fswalk.Entry) string {
	name := Truncate(e.Name, l.opts.MaxWidth)
	switch e.Kind {
	case fswalk.KindDir:
		return l.dir.Sprint(name)
	case fswalk.KindSymlink:
		return l.symlink.Sprint(name)
	case fswalk.KindOther:
		return l.other.Sprint(name)
	default:
		return name
	}
}

// Truncate shortens value to width display columns, marking the cut with
// "...". Wide runes count as two columns.
func Truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
