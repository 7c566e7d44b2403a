// Package snapshot stores walked trees on disk as msgpack.
//
// A snapshot is the arena's raw slot sequence plus a small header. Files
// written by a different schema version are rejected, not migrated.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pathfinder/internal/arena"
	"pathfinder/internal/fswalk"
)

// SchemaVersion is bumped whenever Payload or fswalk.Entry changes shape.
const SchemaVersion uint16 = 1

const tool = "pathfinder"

// ErrSchema reports a snapshot written by an incompatible version.
var ErrSchema = errors.New("unsupported snapshot schema")

// Meta describes where a snapshot came from.
type Meta struct {
	Schema  uint16
	Source  string    // path that was walked
	Created time.Time // UTC
}

// Payload is the on-disk document.
type Payload struct {
	Schema  uint16                  `msgpack:"schema"`
	Tool    string                  `msgpack:"tool"`
	Source  string                  `msgpack:"source"`
	Created int64                   `msgpack:"created"` // unix nanoseconds
	Tree    arena.Raw[fswalk.Entry] `msgpack:"tree"`
}

// Encode writes tree to w.
func Encode(w io.Writer, source string, tree *arena.Tree[fswalk.Entry]) error {
	payload := Payload{
		Schema:  SchemaVersion,
		Tool:    tool,
		Source:  source,
		Created: time.Now().UTC().UnixNano(),
		Tree:    tree.Raw(),
	}
	return msgpack.NewEncoder(w).Encode(&payload)
}

// Decode reads a snapshot from r and rebuilds its tree.
func Decode(r io.Reader) (*arena.Tree[fswalk.Entry], Meta, error) {
	var payload Payload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, Meta{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if payload.Tool != tool || payload.Schema != SchemaVersion {
		return nil, Meta{}, fmt.Errorf("%w: %q schema %d (want %q schema %d)",
			ErrSchema, payload.Tool, payload.Schema, tool, SchemaVersion)
	}
	tree, err := arena.FromRaw(payload.Tree)
	if err != nil {
		return nil, Meta{}, err
	}
	return tree, Meta{
		Schema:  payload.Schema,
		Source:  payload.Source,
		Created: time.Unix(0, payload.Created).UTC(),
	}, nil
}

// Save writes tree to path atomically: the data goes to a temp file in the
// same directory which is then renamed over path.
func Save(path, source string, tree *arena.Tree[fswalk.Entry]) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".pathfinder-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = Encode(f, source, tree); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Load reads the snapshot at path.
func Load(path string) (*arena.Tree[fswalk.Entry], Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Meta{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	tree, meta, err := Decode(f)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("%s: %w", path, err)
	}
	return tree, meta, nil
}
