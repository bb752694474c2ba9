package render

import "github.com/vovakirdan/colourgrid/internal/config"

// fitEpsilon absorbs float accumulation when testing whether a cell fits.
const fitEpsilon = 1e-9

// Geometry is the cell layout derived from a canvas size and the grid config.
// It is recomputed from scratch on every resize and never patched.
type Geometry struct {
	CanvasW float64
	CanvasH float64
	Margin  float64
	Gutter  float64
	CellW   float64
	CellH   float64
}

// ComputeGeometry derives cell sizes for a canvas of w x h pixels.
// The gutter is reserved at the bottom of the canvas and only reduces height.
func ComputeGeometry(grid config.GridConfig, w, h int) Geometry {
	cw, ch := float64(w), float64(h)
	g := Geometry{
		CanvasW: cw,
		CanvasH: ch,
		Margin:  grid.Margin,
		Gutter:  grid.Gutter,
	}
	if grid.Cols > 0 {
		g.CellW = ((cw - 2*grid.Margin) / float64(grid.Cols)) - grid.Margin
	}
	if grid.Rows > 0 {
		g.CellH = ((ch - grid.Gutter - 2*grid.Margin) / float64(grid.Rows)) - grid.Margin
	}
	return g
}

// Valid reports whether cells have a positive size.
func (g Geometry) Valid() bool {
	return g.CellW > 0 && g.CellH > 0
}

// DrawableHeight is the canvas height above the gutter.
func (g Geometry) DrawableHeight() float64 {
	return g.CanvasH - g.Gutter
}

// ForEachCell calls fn with the top-left corner of every cell that fits
// entirely inside the drawable area, row by row. Partial trailing cells are
// skipped.
func (g Geometry) ForEachCell(fn func(x, y float64)) {
	if !g.Valid() {
		return
	}
	stepX := g.CellW + g.Margin
	stepY := g.CellH + g.Margin
	maxY := g.DrawableHeight()

	for row := 0; ; row++ {
		y := g.Margin + float64(row)*stepY
		if y+g.CellH > maxY+fitEpsilon {
			break
		}
		for col := 0; ; col++ {
			x := g.Margin + float64(col)*stepX
			if x+g.CellW > g.CanvasW+fitEpsilon {
				break
			}
			fn(x, y)
		}
	}
}

// CellCount returns the number of columns and rows that ForEachCell visits.
func (g Geometry) CellCount() (cols, rows int) {
	g.ForEachCell(func(x, y float64) {
		if y == g.Margin {
			cols++
		}
		if x == g.Margin {
			rows++
		}
	})
	return cols, rows
}
