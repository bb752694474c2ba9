package core

import (
	"image"
	"image/color"
)

// Screen is a 2D pixel buffer. It decouples rendering from the terminal:
// the renderer fills rectangles and the platform decides how pixels reach
// the display.
type Screen struct {
	width      int
	height     int
	background Colour
	pixels     [][]Colour
}

// NewScreen creates a new screen buffer with the given dimensions,
// cleared to the background colour.
func NewScreen(width, height int, background Colour) *Screen {
	s := &Screen{
		width:      Max(0, width),
		height:     Max(0, height),
		background: background,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying pixel storage.
func (s *Screen) allocate() {
	s.pixels = make([][]Colour, s.height)
	for y := range s.pixels {
		s.pixels[y] = make([]Colour, s.width)
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen rectangle.
func (s *Screen) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// Resize changes the screen dimensions. Content is discarded: the grid
// geometry changes with the size, so old cells would sit at stale positions.
func (s *Screen) Resize(width, height int) {
	width, height = Max(0, width), Max(0, height)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with the background colour.
func (s *Screen) Clear() {
	for y := range s.pixels {
		for x := range s.pixels[y] {
			s.pixels[y][x] = s.background
		}
	}
}

// Set places a colour at the given pixel.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Colour) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y][x] = c
}

// Get returns the colour at the given pixel.
// Returns the background for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Colour {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return s.background
	}
	return s.pixels[y][x]
}

// FillRect paints the pixels covered by the canvas rectangle with a fill.
// Gradient colours are evaluated at pixel centres.
func (s *Screen) FillRect(x, y, w, h float64, fill Fill) {
	r := PixelRect(x, y, w, h).Intersect(s.Bounds())
	if r.Empty() {
		return
	}

	paint := fill.Resolve()
	for py := r.Y; py < r.Bottom(); py++ {
		for px := r.X; px < r.Right(); px++ {
			s.pixels[py][px] = paint.At(float64(px)+0.5, float64(py)+0.5)
		}
	}
}

// Image copies the buffer into an RGBA image, clamping channels to 8 bits.
func (s *Screen) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			img.SetRGBA(x, y, s.pixels[y][x].RGBA8())
		}
	}
	return img
}

// RGBA8 converts the colour to an opaque 8-bit colour, clamping channels.
func (c Colour) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(Clamp(roundHalfUp(c.R), 0, 255)),
		G: uint8(Clamp(roundHalfUp(c.G), 0, 255)),
		B: uint8(Clamp(roundHalfUp(c.B), 0, 255)),
		A: 0xff,
	}
}
