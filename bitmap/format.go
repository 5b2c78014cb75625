package bitmap

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Format is the number of bits used by one pixel. It selects the byte
// layout the pixel codec reads and writes.
type Format uint8

const (
	Format16 Format = 16 // RGB565, little endian
	Format24 Format = 24 // B, G, R
	Format32 Format = 32 // B, G, R, A
)

func (f Format) Valid() bool {
	switch f {
	case Format16, Format24, Format32:
		return true
	}
	return false
}

func (f Format) BytesPerPixel() int {
	return int(f) / 8
}

func (f Format) String() string {
	return strconv.Itoa(int(f)) + "bpp"
}

// Put encodes c into the first BytesPerPixel bytes of buf.
func (f Format) Put(buf []byte, c Color) error {
	switch f {
	case Format16:
		binary.LittleEndian.PutUint16(buf, c.To16Bit(true))
	case Format24:
		buf[0] = c.B
		buf[1] = c.G
		buf[2] = c.R
	case Format32:
		buf[0] = c.B
		buf[1] = c.G
		buf[2] = c.R
		buf[3] = c.A
	default:
		return fmt.Errorf("could not write pixel: %w: %d", ErrUnsupportedBpp, f)
	}
	return nil
}

// Get decodes the pixel stored at the start of buf.
func (f Format) Get(buf []byte) (Color, error) {
	switch f {
	case Format16:
		return From16Bit(binary.LittleEndian.Uint16(buf), true), nil
	case Format24:
		return Color{R: buf[2], G: buf[1], B: buf[0], A: 0xFF}, nil
	case Format32:
		return Color{R: buf[2], G: buf[1], B: buf[0], A: buf[3]}, nil
	}
	return Color{}, fmt.Errorf("could not read pixel: %w: %d", ErrUnsupportedBpp, f)
}

// UnmarshalText accepts "16", "24", "32" with an optional "bpp" suffix.
func (f *Format) UnmarshalText(text []byte) error {
	n, err := strconv.Atoi(strings.TrimSuffix(string(text), "bpp"))
	if err != nil {
		return fmt.Errorf("invalid pixel format %q: %w", text, err)
	}
	if n < 0 || n > 0xFF || !Format(n).Valid() {
		return fmt.Errorf("invalid pixel format %q: %w", text, ErrUnsupportedBpp)
	}

	*f = Format(n)
	return nil
}
