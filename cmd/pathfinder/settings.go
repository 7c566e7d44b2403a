package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pathfinder/internal/config"
	"pathfinder/internal/display"
	"pathfinder/internal/fswalk"
)

// runSettings is pathfinder.toml merged with the command-line flags.
type runSettings struct {
	walk    fswalk.Options
	labels  display.Options
	ui      uiMode
	quiet   bool
	timings bool
	plain   bool
}

// loadSettings reads the config file and applies every flag the user set
// explicitly on top of it. out is where the tree will be written; it
// decides what --color=auto means.
func loadSettings(cmd *cobra.Command, out io.Writer) (runSettings, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return runSettings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(configPath, ".")
	if err != nil {
		return runSettings{}, err
	}

	w := &cfg.Walk
	if flags.Changed("sort") {
		if w.Sort, err = flags.GetBool("sort"); err != nil {
			return runSettings{}, err
		}
	}
	if flags.Changed("max-depth") {
		if w.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
			return runSettings{}, err
		}
	}
	if flags.Changed("jobs") {
		if w.Jobs, err = flags.GetInt("jobs"); err != nil {
			return runSettings{}, err
		}
	}
	if flags.Changed("no-follow") {
		noFollow, err := flags.GetBool("no-follow")
		if err != nil {
			return runSettings{}, err
		}
		w.FollowSymlinks = !noFollow
	}
	if flags.Changed("no-hidden") {
		noHidden, err := flags.GetBool("no-hidden")
		if err != nil {
			return runSettings{}, err
		}
		w.Hidden = !noHidden
	}
	if flags.Changed("max-width") {
		if cfg.Render.MaxWidth, err = flags.GetInt("max-width"); err != nil {
			return runSettings{}, err
		}
	}
	if flags.Changed("color") {
		if cfg.Render.Color, err = flags.GetString("color"); err != nil {
			return runSettings{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return runSettings{}, err
	}

	colorMode, err := config.ParseColorMode(cfg.Render.Color)
	if err != nil {
		return runSettings{}, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return runSettings{}, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return runSettings{}, err
	}

	s := runSettings{
		walk: fswalk.Options{
			Sort:           w.Sort,
			FollowSymlinks: w.FollowSymlinks,
			Hidden:         w.Hidden,
			Normalize:      w.Normalize,
			MaxDepth:       w.MaxDepth,
			Jobs:           w.Jobs,
		},
		labels: display.Options{
			Color:    useColor(colorMode, out),
			MaxWidth: cfg.Render.MaxWidth,
		},
		ui: mode,
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return runSettings{}, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return runSettings{}, err
	}
	if s.plain, err = flags.GetBool("plain"); err != nil {
		return runSettings{}, err
	}
	return s, nil
}

func useColor(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isTerminal(f)
}
