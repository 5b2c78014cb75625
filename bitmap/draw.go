package bitmap

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var _ draw.Image = (*Image)(nil)

func (m *Image) ColorModel() color.Model { return ColorModel }

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the pixel at (x, y), or Transparent outside the image.
func (m *Image) At(x, y int) color.Color {
	if !m.inBounds(x, y) {
		return Transparent
	}
	c, _ := m.format.Get(m.pix[m.offset(x, y):])
	return c
}

// Set writes c at (x, y); points outside the image are ignored.
func (m *Image) Set(x, y int, c color.Color) {
	if !m.inBounds(x, y) {
		return
	}
	// in bounds implies a non-empty image with a valid format
	m.format.Put(m.pix[m.offset(x, y):], ColorModel.Convert(c).(Color))
}

// FromImage copies src into a new image of format f. Pixels are stored
// non-premultiplied; 16 and 24 bit formats drop alpha.
func FromImage(src image.Image, f Format) (*Image, error) {
	b := src.Bounds()
	m, err := New(b.Dx(), b.Dy(), f)
	if err != nil {
		return nil, fmt.Errorf("could not import %v image: %w", b, err)
	}

	draw.Draw(m, m.Bounds(), src, b.Min, draw.Src)
	return m, nil
}
