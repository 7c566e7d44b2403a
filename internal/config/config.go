// Package config loads pathfinder.toml.
//
// The file is optional. Keys that are present override the defaults;
// command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name searched for from the working directory upwards.
const FileName = "pathfinder.toml"

// Config is the merged configuration of a run.
type Config struct {
	Path   string `toml:"-"` // file it was loaded from, "" for defaults
	Walk   Walk   `toml:"walk"`
	Render Render `toml:"render"`
}

// Walk configures the filesystem walk.
type Walk struct {
	Sort           bool `toml:"sort"`
	FollowSymlinks bool `toml:"follow_symlinks"`
	Hidden         bool `toml:"hidden"`
	Normalize      bool `toml:"normalize"`
	MaxDepth       int  `toml:"max_depth"`
	Jobs           int  `toml:"jobs"`
}

// Render configures tree output.
type Render struct {
	Color    string `toml:"color"`
	MaxWidth int    `toml:"max_width"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Walk: Walk{
			FollowSymlinks: true,
			Hidden:         true,
			Normalize:      true,
		},
		Render: Render{Color: "auto"},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads explicit when it is set, otherwise the nearest FileName above
// startDir. A missing file yields Default().
func Load(explicit, startDir string) (Config, error) {
	path := explicit
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Config{}, err
		}
		if !ok {
			return Default(), nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile parses path on top of Default() and validates the result.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no command can act on.
func (c Config) Validate() error {
	if c.Walk.MaxDepth < 0 {
		return fmt.Errorf("[walk].max_depth must be >= 0, got %d", c.Walk.MaxDepth)
	}
	if c.Walk.Jobs < 0 {
		return fmt.Errorf("[walk].jobs must be >= 0, got %d", c.Walk.Jobs)
	}
	if _, err := ParseColorMode(c.Render.Color); err != nil {
		return fmt.Errorf("[render].color: %w", err)
	}
	if c.Render.MaxWidth < 0 {
		return fmt.Errorf("[render].max_width must be >= 0, got %d", c.Render.MaxWidth)
	}
	return nil
}

// ColorMode selects when labels are coloured.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// ParseColorMode accepts auto|on|off (case-insensitive, "" = auto).
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (expected auto|on|off)", value)
	}
}
