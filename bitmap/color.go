package bitmap

import "image/color"

// Color is a non-premultiplied 8-bit per channel RGBA value.
type Color struct {
	R, G, B, A uint8
}

var (
	Black       = Color{0, 0, 0, 0xFF}
	White       = Color{0xFF, 0xFF, 0xFF, 0xFF}
	Red         = Color{0xFF, 0, 0, 0xFF}
	Green       = Color{0, 0xFF, 0, 0xFF}
	Blue        = Color{0, 0, 0xFF, 0xFF}
	Transparent = Color{0, 0, 0, 0}
)

var ColorModel = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
}

func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

const (
	max5 = 0x1F
	max6 = 0x3F
)

// To16Bit packs the color into RGB565 (rgb565 true) or RGB555. Every
// channel is scaled down to its own bit width and truncated; alpha is
// dropped.
func (c Color) To16Bit(rgb565 bool) uint16 {
	r := scaleDown(c.R, max5)
	b := scaleDown(c.B, max5)
	if rgb565 {
		g := scaleDown(c.G, max6)
		return r<<11 | g<<5 | b
	}

	g := scaleDown(c.G, max5)
	return r<<10 | g<<5 | b
}

// From16Bit unpacks an RGB565 or RGB555 value. The result is always
// opaque.
func From16Bit(v uint16, rgb565 bool) Color {
	if rgb565 {
		return Color{
			R: scaleUp(v>>11&max5, max5),
			G: scaleUp(v>>5&max6, max6),
			B: scaleUp(v&max5, max5),
			A: 0xFF,
		}
	}

	return Color{
		R: scaleUp(v>>10&max5, max5),
		G: scaleUp(v>>5&max5, max5),
		B: scaleUp(v&max5, max5),
		A: 0xFF,
	}
}

func scaleDown(ch uint8, target uint16) uint16 {
	return uint16(ch) * target / 0xFF
}

func scaleUp(field, target uint16) uint8 {
	return uint8(uint32(field) * 0xFF / uint32(target))
}
