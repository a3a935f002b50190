// Package config loads viewer tunables from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rhex/internal/layout"
	"github.com/kk-code-lab/rhex/internal/search"
	"github.com/kk-code-lab/rhex/internal/ui/render"
	"github.com/kk-code-lab/rhex/internal/viewer"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

type Layout struct {
	BytesPerLine int `toml:"bytes_per_line"`
}

type Search struct {
	ChunkSize     int   `toml:"chunk_size"`
	LookBehind    int64 `toml:"look_behind"`
	CaseSensitive bool  `toml:"case_sensitive"`
	WholeWords    bool  `toml:"whole_words"`
	FromTop       bool  `toml:"from_top"`
}

// AutoScroll is in terminal cells.
type AutoScroll struct {
	Margin     float64 `toml:"margin"`
	Step       float64 `toml:"step"`
	IntervalMS int     `toml:"interval_ms"`
}

type Clipboard struct {
	MaxBytes int64    `toml:"max_bytes"`
	Command  []string `toml:"command"`
}

type Config struct {
	Layout     Layout     `toml:"layout"`
	Search     Search     `toml:"search"`
	AutoScroll AutoScroll `toml:"autoscroll"`
	Clipboard  Clipboard  `toml:"clipboard"`

	// Theme maps colour slots (see render.ColorTheme.Set) to tcell colour
	// names or "#rrggbb" strings.
	Theme map[string]string `toml:"theme"`
}

func DefaultConfig() *Config {
	auto := viewer.TerminalAutoScroll()
	return &Config{
		Layout: Layout{BytesPerLine: layout.DefaultBytesPerLine},
		Search: Search{
			ChunkSize:  search.DefaultChunkSize,
			LookBehind: search.DefaultLookBehind,
			FromTop:    search.DefaultOptions().FromTop,
		},
		AutoScroll: AutoScroll{
			Margin:     auto.Margin,
			Step:       auto.Step,
			IntervalMS: int(auto.Interval / time.Millisecond),
		},
		Clipboard: Clipboard{MaxBytes: viewer.DefaultCopyLimit},
		Theme:     map[string]string{},
	}
}

// DefaultPath is ~/.config/rhex/rhex.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rhex.toml"
	}
	return filepath.Join(home, ".config", "rhex", "rhex.toml")
}

// Load reads path over the defaults. A missing file is not an error. On any
// error the defaults are returned alongside it.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	loaded := DefaultConfig()
	md, err := toml.DecodeFile(path, loaded)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := loaded.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return loaded, nil
}

// Validate checks ranges and theme entries.
func (c *Config) Validate() error {
	switch {
	case c.Layout.BytesPerLine <= 0 || c.Layout.BytesPerLine > 256:
		return fmt.Errorf("%w: layout.bytes_per_line %d not in 1..256", ErrInvalid, c.Layout.BytesPerLine)
	case c.Search.ChunkSize < 2:
		return fmt.Errorf("%w: search.chunk_size %d", ErrInvalid, c.Search.ChunkSize)
	case c.Search.LookBehind < 0:
		return fmt.Errorf("%w: search.look_behind %d", ErrInvalid, c.Search.LookBehind)
	case c.AutoScroll.Margin < 0:
		return fmt.Errorf("%w: autoscroll.margin %v", ErrInvalid, c.AutoScroll.Margin)
	case c.AutoScroll.Step <= 0:
		return fmt.Errorf("%w: autoscroll.step %v", ErrInvalid, c.AutoScroll.Step)
	case c.AutoScroll.IntervalMS <= 0:
		return fmt.Errorf("%w: autoscroll.interval_ms %d", ErrInvalid, c.AutoScroll.IntervalMS)
	case c.Clipboard.MaxBytes <= 0:
		return fmt.Errorf("%w: clipboard.max_bytes %d", ErrInvalid, c.Clipboard.MaxBytes)
	}
	_, err := c.ColorTheme(render.GetColorTheme())
	return err
}

// ColorTheme applies the [theme] entries over base.
func (c *Config) ColorTheme(base render.ColorTheme) (render.ColorTheme, error) {
	names := make([]string, 0, len(c.Theme))
	for name := range c.Theme {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := strings.TrimSpace(c.Theme[name])
		color := tcell.GetColor(value)
		if color == tcell.ColorDefault && !strings.EqualFold(value, "default") {
			return base, fmt.Errorf("%w: theme.%s: unknown colour %q", ErrInvalid, name, value)
		}
		if !base.Set(name, color) {
			return base, fmt.Errorf("%w: theme.%s: unknown slot", ErrInvalid, name)
		}
	}
	return base, nil
}

// Viewer builds the controller configuration.
func (c *Config) Viewer() viewer.Config {
	vc := viewer.DefaultConfig()
	vc.Layout.BytesPerLine = c.Layout.BytesPerLine
	vc.Search = search.Config{ChunkSize: c.Search.ChunkSize, LookBehind: c.Search.LookBehind}
	vc.Options = search.Options{
		CaseSensitive: c.Search.CaseSensitive,
		WholeWords:    c.Search.WholeWords,
		FromTop:       c.Search.FromTop,
	}
	vc.AutoScroll = viewer.AutoScroll{
		Margin:   c.AutoScroll.Margin,
		Step:     c.AutoScroll.Step,
		Interval: time.Duration(c.AutoScroll.IntervalMS) * time.Millisecond,
	}
	vc.CopyLimit = c.Clipboard.MaxBytes
	return vc
}
