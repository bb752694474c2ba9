// Package styles implements the built-in rendering modes and registers them
// with the mode registry.
package styles

import (
	"math"

	"github.com/vovakirdan/colourgrid/internal/core"
	"github.com/vovakirdan/colourgrid/internal/registry"
)

// Mode ids.
const (
	ModeColour      = "colour"
	ModeMonochrome  = "monochrome"
	ModeStripesV    = "stripes-v"
	ModeStripesH    = "stripes-h"
	ModeStripes     = "stripes"
	DefaultMode     = ModeColour
	monochromeSplit = 0.5
)

func init() {
	registry.Register(registry.Mode{ID: ModeColour, Title: "Colour", Order: 1, Style: Colour})
	registry.Register(registry.Mode{ID: ModeMonochrome, Title: "Mono", Order: 2, Style: Monochrome})
	registry.Register(registry.Mode{ID: ModeStripesV, Title: "Columns", Order: 3, Style: StripesVertical})
	registry.Register(registry.Mode{ID: ModeStripesH, Title: "Rows", Order: 4, Style: StripesHorizontal})
	registry.Register(registry.Mode{ID: ModeStripes, Title: "Checker", Order: 5, Style: StripesCombined})
}

// Colour fills the cell with a diagonal gradient between two independent
// random colours near the base colour.
func Colour(p registry.Params, x, y float64, _ int) core.Fill {
	return core.Linear(
		x, y, x+p.CellW, y+p.CellH,
		p.Base.RandomNear(p.Rand).Format(),
		p.Base.RandomNear(p.Rand).Format(),
	)
}

// Monochrome flickers each cell between the base and contrast colours.
func Monochrome(p registry.Params, _, _ float64, _ int) core.Fill {
	if p.Rand.Float64() < monochromeSplit {
		return core.Flat(p.Base.Format())
	}
	return core.Flat(p.Contrast.Format())
}

// StripesVertical alternates columns, swapping every frame.
func StripesVertical(p registry.Params, x, _ float64, frame int) core.Fill {
	return stripe(p, CellIndex(x, p.Margin, p.CellW), frame)
}

// StripesHorizontal alternates rows, swapping every frame.
func StripesHorizontal(p registry.Params, _, y float64, frame int) core.Fill {
	return stripe(p, CellIndex(y, p.Margin, p.CellH), frame)
}

// StripesCombined alternates both axes into a checkerboard, swapping every frame.
func StripesCombined(p registry.Params, x, y float64, frame int) core.Fill {
	ix := CellIndex(x, p.Margin, p.CellW)
	iy := CellIndex(y, p.Margin, p.CellH)
	return stripe(p, (ix+iy)%2, frame)
}

// CellIndex returns the parity (0 or 1) of the cell starting at coord.
func CellIndex(coord, margin, cellSize float64) int {
	i := int(math.Floor((coord-margin)/(cellSize+margin) + 0.5))
	return mod2(i)
}

func stripe(p registry.Params, index, frame int) core.Fill {
	if index == mod2(frame) {
		return core.Flat(p.Base.Format())
	}
	return core.Flat(p.Contrast.Format())
}

func mod2(i int) int {
	return ((i % 2) + 2) % 2
}
