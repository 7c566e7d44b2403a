package fswalk

import (
	"path/filepath"

	"pathfinder/internal/arena"
)

// EntryKind classifies a filesystem entry.
type EntryKind uint8

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
	KindOther
)

// String returns the string representation of EntryKind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Entry is the payload stored for every walked path.
type Entry struct {
	Name string    `msgpack:"name"` // display name
	Path string    `msgpack:"path"` // path used to reach the entry
	Kind EntryKind `msgpack:"kind"`
}

// Label returns the display name; it is the default FormatTree label.
func Label(e Entry) string { return e.Name }

// DisplayName returns the final component of path, or path itself when it
// has no final component ("/", ".", "..").
func DisplayName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	switch base {
	case ".", "..", string(filepath.Separator):
		return path
	}
	return base
}

// Stats counts the entries of a walked tree by kind.
type Stats struct {
	Dirs     int
	Files    int
	Symlinks int
	Other    int
}

// Count tallies the kinds of every node in t.
func Count(t *arena.Tree[Entry]) Stats {
	var s Stats
	for _, id := range t.DFS() {
		switch t.Get(id).Kind {
		case KindDir:
			s.Dirs++
		case KindFile:
			s.Files++
		case KindSymlink:
			s.Symlinks++
		default:
			s.Other++
		}
	}
	return s
}
