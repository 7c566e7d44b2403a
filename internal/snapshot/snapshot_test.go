package snapshot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pathfinder/internal/arena"
	"pathfinder/internal/fswalk"
)

func entryTree() *arena.Tree[fswalk.Entry] {
	t := arena.New[fswalk.Entry]()
	root := t.SetRoot(fswalk.Entry{Name: "proj", Path: "/tmp/proj", Kind: fswalk.KindDir})
	src := t.AddChild(root, fswalk.Entry{Name: "src", Path: "/tmp/proj/src", Kind: fswalk.KindDir})
	t.AddChild(src, fswalk.Entry{Name: "main.go", Path: "/tmp/proj/src/main.go", Kind: fswalk.KindFile})
	t.AddChild(root, fswalk.Entry{Name: "latest", Path: "/tmp/proj/latest", Kind: fswalk.KindSymlink})
	return t
}

func TestSaveLoad(t *testing.T) {
	tree := entryTree()
	path := filepath.Join(t.TempDir(), "nested", "proj.mp")

	before := time.Now().Add(-time.Second)
	if err := Save(path, "/tmp/proj", tree); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, meta, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Source != "/tmp/proj" || meta.Schema != SchemaVersion || meta.Created.Before(before) {
		t.Fatalf("meta = %+v", meta)
	}
	if !slices.Equal(tree.DFS(), back.DFS()) {
		t.Fatalf("structure differs after reload")
	}
	for _, id := range tree.DFS() {
		if tree.Get(id) != back.Get(id) {
			t.Fatalf("node %d: %+v != %+v", id, tree.Get(id), back.Get(id))
		}
	}
	if tree.FormatTree(fswalk.Label) != back.FormatTree(fswalk.Label) {
		t.Fatalf("rendering differs after reload")
	}

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".pathfinder-*"))
	if err != nil || len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v %v", leftovers, err)
	}
}

func TestEmptyTreeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "", arena.New[fswalk.Entry]()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, _, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Len() != 0 || back.FormatTree(fswalk.Label) != "" {
		t.Fatalf("expected empty tree")
	}
}

func TestDecodeRejectsSchema(t *testing.T) {
	var buf bytes.Buffer
	payload := Payload{Schema: SchemaVersion + 1, Tool: tool, Tree: entryTree().Raw()}
	if err := msgpack.NewEncoder(&buf).Encode(&payload); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, _, err := Decode(&buf); !errors.Is(err, ErrSchema) {
		t.Fatalf("err = %v, want ErrSchema", err)
	}
}

func TestDecodeRejectsCorruptTree(t *testing.T) {
	raw := entryTree().Raw()
	raw.Slots[3].Parent = 4 // main.go claims the symlink as parent

	var buf bytes.Buffer
	payload := Payload{Schema: SchemaVersion, Tool: tool, Tree: raw}
	if err := msgpack.NewEncoder(&buf).Encode(&payload); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, _, err := Decode(&buf); !errors.Is(err, arena.ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := Load(filepath.Join(dir, "missing.mp")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
	garbage := filepath.Join(dir, "garbage.mp")
	if err := os.WriteFile(garbage, []byte("not msgpack at all"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := Load(garbage); err == nil {
		t.Fatalf("expected decode error")
	}
}
