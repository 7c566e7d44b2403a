package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", FileName, err)
	}
	return path
}

func TestLoadOverridesOnlyDefinedKeys(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `# partial config
[walk]
sort = true
max_depth = 3

[render]
color = "off"
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Walk.Sort || cfg.Walk.MaxDepth != 3 {
		t.Fatalf("walk = %+v", cfg.Walk)
	}
	if !cfg.Walk.FollowSymlinks || !cfg.Walk.Hidden || !cfg.Walk.Normalize {
		t.Fatalf("defaults lost: %+v", cfg.Walk)
	}
	if cfg.Render.Color != "off" || cfg.Path != path {
		t.Fatalf("render = %+v, path = %q", cfg.Render, cfg.Path)
	}
}

func TestLoadSearchesParents(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[walk]\nhidden = false\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := Load("", nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Walk.Hidden {
		t.Fatalf("expected hidden=false from parent config")
	}
	if !strings.HasSuffix(cfg.Path, FileName) {
		t.Fatalf("path = %q", cfg.Path)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	path, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		// a pathfinder.toml above the temp dir would make this test meaningless
		t.Skipf("found unrelated config at %s", path)
	}
	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "[walk\n", "failed to parse TOML"},
		{"negative depth", "[walk]\nmax_depth = -1\n", "max_depth"},
		{"negative jobs", "[walk]\njobs = -2\n", "jobs"},
		{"bad color", "[render]\ncolor = \"rainbow\"\n", "invalid color mode"},
		{"bad width", "[render]\nmax_width = -5\n", "max_width"},
		{"unknown key", "[walk]\nsortt = true\n", "unknown keys: walk.sortt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.data)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) || !strings.Contains(err.Error(), path) {
				t.Fatalf("error %q should mention %q and the file", err, tc.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml"), ""); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestParseColorMode(t *testing.T) {
	cases := map[string]ColorMode{"": ColorAuto, "AUTO": ColorAuto, "on": ColorOn, "never": ColorOff}
	for in, want := range cases {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseColorMode(%q) = %q, %v", in, got, err)
		}
	}
}
