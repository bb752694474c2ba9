package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/vovakirdan/colourgrid/internal/core"
)

// Surface is a 2D drawing target. Rectangles are in canvas pixel coordinates.
type Surface interface {
	FillRect(x, y, w, h float64, fill core.Fill)
}

// ImageSurface draws into an in-memory RGBA image.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates an image surface of w x h pixels filled with bg.
func NewImageSurface(w, h int, bg core.Colour) *ImageSurface {
	img := image.NewRGBA(image.Rect(0, 0, core.Max(0, w), core.Max(0, h)))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg.RGBA8()), image.Point{}, draw.Src)
	return &ImageSurface{img: img}
}

// FillRect paints the pixels whose centres the rectangle covers.
func (s *ImageSurface) FillRect(x, y, w, h float64, fill core.Fill) {
	r := core.PixelRect(x, y, w, h)
	rect := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}

	paint := fill.Resolve()
	if !fill.IsGradient() {
		c := paint.At(0, 0).RGBA8()
		draw.Draw(s.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
		return
	}

	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			s.img.SetRGBA(px, py, paint.At(float64(px)+0.5, float64(py)+0.5).RGBA8())
		}
	}
}

// Image returns the underlying image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes the surface as a PNG image.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes an image to path, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: cannot create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: cannot create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: cannot encode %s: %w", path, err)
	}
	return f.Close()
}
