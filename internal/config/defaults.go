package config

import (
	_ "embed"

	"github.com/vovakirdan/colourgrid/internal/core"
)

//go:embed defaults/colours.yaml
var defaultColoursYAML []byte

// Fallback values.
const (
	DefaultRows      = 10
	DefaultCols      = 10
	DefaultMargin    = 4
	DefaultGutter    = 0
	DefaultRefreshMS = 200
	DefaultMode      = "colour"
)

// DefaultConfig returns the built-in configuration used when no YAML is
// available and as the source of fallbacks for invalid values.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Rows:   DefaultRows,
			Cols:   DefaultCols,
			Margin: DefaultMargin,
			Gutter: DefaultGutter,
		},
		Animation: AnimationConfig{
			Mode:      DefaultMode,
			RefreshMS: DefaultRefreshMS,
		},
		Palette: PaletteConfig{
			Base:       core.Black,
			Contrast:   core.White,
			Background: core.Black,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultColoursYAML
}
