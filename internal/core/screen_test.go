package core

import "testing"

func TestNewScreen(t *testing.T) {
	bg := RGB(16, 16, 16)
	s := NewScreen(80, 48, bg)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 48 {
		t.Errorf("Height() = %d, expected 48", s.Height())
	}

	// Check that it's initialized with the background
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != bg {
				t.Fatalf("New screen should be filled with background, got %v at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10, Black)

	s.Set(5, 5, White)
	if s.Get(5, 5) != White {
		t.Errorf("Get(5, 5) = %v, expected white", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, White)
	s.Set(100, 0, White)
	s.Set(0, -1, White)
	s.Set(0, 100, White)

	if s.Get(-1, 0) != Black {
		t.Error("Out of bounds Get should return background")
	}
}

func TestScreenFillRectFlat(t *testing.T) {
	s := NewScreen(10, 10, Black)
	s.FillRect(2, 2, 3, 3, Flat(White.Format()))

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != White {
				t.Errorf("FillRect: expected white at (%d, %d), got %v", x, y, s.Get(x, y))
			}
		}
	}

	if s.Get(1, 1) != Black || s.Get(5, 5) != Black {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenFillRectClipsToBounds(t *testing.T) {
	s := NewScreen(4, 4, Black)
	s.FillRect(2, 2, 10, 10, Flat(White.Format())) // Should not panic
	if s.Get(3, 3) != White {
		t.Error("in-bounds part of the rect should be filled")
	}
}

func TestScreenFillRectGradient(t *testing.T) {
	s := NewScreen(10, 1, Black)
	s.FillRect(0, 0, 10, 1, Linear(0, 0, 10, 0, "rgb(0,0,0)", "rgb(255,0,0)"))

	// Red channel increases left to right
	prev := -1.0
	for x := 0; x < 10; x++ {
		r := s.Get(x, 0).R
		if r <= prev {
			t.Fatalf("gradient not increasing at x=%d: %v <= %v", x, r, prev)
		}
		prev = r
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10, Black)
	s.Set(0, 0, White)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0) != Black {
		t.Error("Resize should clear stale content")
	}

	s.Set(1, 1, White)
	s.Resize(8, 4)
	if s.Get(1, 1) != White {
		t.Error("Resize to the same size should keep content")
	}
}

func TestScreenImage(t *testing.T) {
	s := NewScreen(3, 2, RGB(300, -5, 128))
	img := s.Image()

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Image bounds = %v", img.Bounds())
	}
	c := img.RGBAAt(1, 1)
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Errorf("pixel = %+v, expected clamped (255,0,128,255)", c)
	}
}
