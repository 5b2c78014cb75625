package batch

import (
	"fmt"
	"strconv"
	"strings"

	"bmpblit/bitmap"
)

// ParseColor reads #RGB, #RGBA, #RRGGBB or #RRGGBBAA; the leading # is
// optional and colors without alpha are opaque.
func ParseColor(s string) (bitmap.Color, error) {
	hex := strings.TrimPrefix(s, "#")

	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return bitmap.Color{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}

	ch := [4]uint8{3: 0xFF}
	for i := range len(hex) / digits {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return bitmap.Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		}
		if digits == 1 {
			v |= v << 4
		}
		ch[i] = uint8(v)
	}

	return bitmap.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
