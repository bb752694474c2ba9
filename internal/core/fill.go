package core

import "math"

// Gradient is a two-stop linear gradient between two points.
type Gradient struct {
	X0, Y0 float64 // Start point (stop 0)
	X1, Y1 float64 // End point (stop 1)
	Stop0  string  // Colour at the start, as produced by Colour.Format
	Stop1  string  // Colour at the end
}

// Fill is the style applied to one cell: a flat colour string, or a gradient
// when Gradient is non-nil.
type Fill struct {
	Color    string
	Gradient *Gradient
}

// Flat creates a flat fill.
func Flat(color string) Fill {
	return Fill{Color: color}
}

// Linear creates a gradient fill running from (x0, y0) to (x1, y1).
func Linear(x0, y0, x1, y1 float64, stop0, stop1 string) Fill {
	return Fill{Gradient: &Gradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stop0: stop0, Stop1: stop1}}
}

// IsGradient reports whether the fill is a gradient.
func (f Fill) IsGradient() bool {
	return f.Gradient != nil
}

// Paint is a Fill with its colour strings resolved, ready to shade pixels.
type Paint struct {
	flat     Colour
	gradient *Gradient
	from, to Colour
}

// Resolve parses the colour strings of a fill.
// Unparseable colours resolve to black, matching a drawing context that
// ignores invalid style assignments.
func (f Fill) Resolve() Paint {
	if f.Gradient == nil {
		c, err := ParseColour(f.Color)
		if err != nil {
			c = Black
		}
		return Paint{flat: c}
	}

	from, err := ParseColour(f.Gradient.Stop0)
	if err != nil {
		from = Black
	}
	to, err := ParseColour(f.Gradient.Stop1)
	if err != nil {
		to = Black
	}
	return Paint{gradient: f.Gradient, from: from, to: to}
}

// At returns the colour at canvas point (x, y).
// Gradients project the point onto the gradient axis; positions before the
// start take stop 0, positions past the end take stop 1.
func (p Paint) At(x, y float64) Colour {
	g := p.gradient
	if g == nil {
		return p.flat
	}

	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.from
	}

	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq
	t = ClampF(t, 0, 1)
	if math.IsNaN(t) {
		t = 0
	}
	return FromColorful(p.from.Colorful().BlendRgb(p.to.Colorful(), t))
}
