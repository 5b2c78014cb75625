// Package bitmap stores 16, 24 and 32 bit pixel buffers, reads and writes
// them as uncompressed BMP files and copies regions between them.
package bitmap

import (
	"fmt"
	"math"
)

// Image owns a top-down pixel buffer without row padding. The pixel at
// (x, y) starts at Pix()[y*Pitch() + x*Format().BytesPerPixel()].
//
// The zero value is an empty image; call Create or Decode to give it pixels.
type Image struct {
	width  int
	height int
	format Format
	pitch  int
	pix    []byte
}

// New returns a zero filled image of the given size.
func New(width, height int, f Format) (*Image, error) {
	m := &Image{}
	if err := m.Create(width, height, f); err != nil {
		return nil, err
	}
	return m, nil
}

// Create replaces the pixel buffer with a zero filled one of the given
// size. The image is left untouched on error.
func (m *Image) Create(width, height int, f Format) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("could not create %dx%d image: %w", width, height, ErrInvalidDimensions)
	}
	if !f.Valid() {
		return fmt.Errorf("could not create %dx%d image: %w: %d", width, height, ErrUnsupportedBpp, f)
	}

	if width > math.MaxInt/f.BytesPerPixel()/height {
		return fmt.Errorf("could not create %dx%d image: %w: too large", width, height, ErrInvalidDimensions)
	}

	pitch := width * f.BytesPerPixel()
	*m = Image{
		width:  width,
		height: height,
		format: f,
		pitch:  pitch,
		pix:    make([]byte, pitch*height),
	}
	return nil
}

func (m *Image) Width() int     { return m.width }
func (m *Image) Height() int    { return m.height }
func (m *Image) Format() Format { return m.format }
func (m *Image) Pitch() int     { return m.pitch }

// Pix exposes the underlying buffer. It is invalidated by Create, Decode
// and Resize.
func (m *Image) Pix() []byte { return m.pix }

func (m *Image) Empty() bool {
	return m.width <= 0 || m.height <= 0
}

func (m *Image) Rect() Rect {
	return Rect{Width: m.width, Height: m.height}
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	c := *m
	c.pix = append([]byte(nil), m.pix...)
	return &c
}

func (m *Image) offset(x, y int) int {
	return y*m.pitch + x*m.format.BytesPerPixel()
}

func (m *Image) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Clear fills the whole image with c. Only one row is encoded, the rest
// are copies of it.
func (m *Image) Clear(c Color) {
	if m.Empty() {
		return
	}

	// a non-empty image always has a valid format, so Put cannot fail
	bpp := m.format.BytesPerPixel()
	row := m.pix[:m.pitch]
	for x := 0; x < m.pitch; x += bpp {
		m.format.Put(row[x:], c)
	}
	for y := 1; y < m.height; y++ {
		copy(m.pix[y*m.pitch:], row)
	}
}

func (m *Image) Pixel(x, y int) (Color, error) {
	if !m.inBounds(x, y) {
		return Color{}, fmt.Errorf("could not get pixel (%d, %d) of %dx%d image: %w", x, y, m.width, m.height, ErrInvalidCoordinates)
	}
	return m.format.Get(m.pix[m.offset(x, y):])
}

func (m *Image) SetPixel(x, y int, c Color) error {
	if !m.inBounds(x, y) {
		return fmt.Errorf("could not set pixel (%d, %d) of %dx%d image: %w", x, y, m.width, m.height, ErrInvalidCoordinates)
	}
	return m.format.Put(m.pix[m.offset(x, y):], c)
}

// ColorAt samples the pixel nearest below the normalized texture
// coordinate (u, v), where (0, 0) is the top-left pixel and (1, 1) the
// bottom-right one.
func (m *Image) ColorAt(u, v float64) (Color, error) {
	x, y := m.texel(u, v)
	return m.Pixel(x, y)
}

// SetColorAt writes the pixel addressed like ColorAt.
func (m *Image) SetColorAt(u, v float64, c Color) error {
	x, y := m.texel(u, v)
	return m.SetPixel(x, y, c)
}

func (m *Image) texel(u, v float64) (int, int) {
	return int(math.Floor(u * float64(m.width-1))), int(math.Floor(v * float64(m.height-1)))
}
