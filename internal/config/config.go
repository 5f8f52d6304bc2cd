// Package config loads editor settings from defaults, an optional TOML file
// and command line overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gobox/internal/editor"
	"github.com/philipparndt/gobox/pkg/grid"
)

// Config holds the editor settings. Scene contents are never stored here.
type Config struct {
	GridUnit      float64 `toml:"grid_unit"`
	Color         string  `toml:"color"` // New-box color as "#rrggbb"
	Mode          string  `toml:"mode"`  // "scale" or "move"
	DragThreshold float64 `toml:"drag_threshold"`

	Window WindowConfig `toml:"window"`
}

// WindowConfig sizes the editor window
type WindowConfig struct {
	Width  int32 `toml:"width"`
	Height int32 `toml:"height"`
	FPS    int32 `toml:"fps"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		GridUnit:      grid.DefaultUnit,
		Color:         "#ffffff",
		Mode:          editor.ModeScale.String(),
		DragThreshold: editor.DefaultDragThreshold,
		Window: WindowConfig{
			Width:  1400,
			Height: 900,
			FPS:    60,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and joins all problems into one error
func (c Config) Validate() error {
	var errs []error

	if !grid.Valid(c.GridUnit) {
		errs = append(errs, fmt.Errorf("grid_unit must be positive, got %v", c.GridUnit))
	}
	if _, err := colorful.Hex(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("color must be #rrggbb, got %q", c.Color))
	}
	if _, err := editor.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.DragThreshold < 0 {
		errs = append(errs, fmt.Errorf("drag_threshold must not be negative, got %v", c.DragThreshold))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("window fps must be positive, got %d", c.Window.FPS))
	}

	return errors.Join(errs...)
}

// ColorValue returns the parsed new-box color. Call Validate first.
func (c Config) ColorValue() colorful.Color {
	col, err := colorful.Hex(c.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return col
}

// ModeValue returns the parsed edit mode. Call Validate first.
func (c Config) ModeValue() editor.Mode {
	m, _ := editor.ParseMode(c.Mode)
	return m
}

// EditorOptions turns the settings into editor options
func (c Config) EditorOptions() []editor.Option {
	return []editor.Option{
		editor.WithGridUnit(c.GridUnit),
		editor.WithColor(c.ColorValue()),
		editor.WithMode(c.ModeValue()),
		editor.WithDragThreshold(c.DragThreshold),
	}
}

// Apply pushes the hot-reloadable settings into a running editor
func (c Config) Apply(e *editor.Editor) {
	e.SetGridUnit(c.GridUnit)
	if e.Mode() != c.ModeValue() {
		e.SetMode(c.ModeValue())
	}
	e.SetDefaultColor(c.ColorValue())
	e.SetDragThreshold(c.DragThreshold)
}
