// Package config provides YAML-based configuration loading for the colour
// grid, with embedded defaults and fallbacks for invalid values.
package config

import (
	"time"

	"github.com/vovakirdan/colourgrid/internal/core"
)

// Config contains all configuration for the colour grid.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	Palette   PaletteConfig   `yaml:"palette"`
}

// GridConfig defines the cell layout. Margin and gutter are in canvas pixels.
type GridConfig struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Margin float64 `yaml:"margin"` // Space around and between cells
	Gutter float64 `yaml:"gutter"` // Space reserved at the bottom for the toggle bar
}

// AnimationConfig defines the initial mode and redraw throttle.
type AnimationConfig struct {
	Mode      string `yaml:"mode"`
	RefreshMS int    `yaml:"refresh_ms"` // Minimum time between redraws
}

// PaletteConfig defines the colours used by the styles.
type PaletteConfig struct {
	Base       core.Colour `yaml:"base"`
	Contrast   core.Colour `yaml:"contrast"`
	Background core.Colour `yaml:"background"`
}

// Refresh returns the redraw interval as a duration.
func (c Config) Refresh() time.Duration {
	return time.Duration(c.Animation.RefreshMS) * time.Millisecond
}

// Normalize replaces invalid values with the defaults from DefaultConfig.
// Returns the keys that were replaced.
func (c *Config) Normalize() []string {
	def := DefaultConfig()
	var replaced []string

	if c.Grid.Rows <= 0 {
		c.Grid.Rows = def.Grid.Rows
		replaced = append(replaced, "grid.rows")
	}
	if c.Grid.Cols <= 0 {
		c.Grid.Cols = def.Grid.Cols
		replaced = append(replaced, "grid.cols")
	}
	if c.Grid.Margin < 0 {
		c.Grid.Margin = def.Grid.Margin
		replaced = append(replaced, "grid.margin")
	}
	if c.Grid.Gutter < 0 {
		c.Grid.Gutter = def.Grid.Gutter
		replaced = append(replaced, "grid.gutter")
	}
	if c.Animation.RefreshMS <= 0 {
		c.Animation.RefreshMS = def.Animation.RefreshMS
		replaced = append(replaced, "animation.refresh_ms")
	}
	if c.Animation.Mode == "" {
		c.Animation.Mode = def.Animation.Mode
		replaced = append(replaced, "animation.mode")
	}

	return replaced
}
