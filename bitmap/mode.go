package bitmap

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Mode selects how a destination pixel is mapped back onto the source
// rectangle during BitBlt.
type Mode int

const (
	ModeNone Mode = iota
	ModeRepeat
	ModeClamp
	ModeMirror
	ModeStretch
)

var modeNames = []string{"none", "repeat", "clamp", "mirror", "stretch"}

// Modes lists every supported addressing mode.
var Modes = []Mode{ModeNone, ModeRepeat, ModeClamp, ModeMirror, ModeStretch}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Map returns the source pixel feeding the destination pixel at offset
// (x, y) inside dst. ok is false when the destination pixel receives no
// contribution and must be left untouched. src and dst are expected to be
// clamped to their images already.
func (m Mode) Map(x, y int, src, dst Rect) (p image.Point, ok bool, err error) {
	if src.Empty() {
		return image.Point{}, false, nil
	}

	switch m {
	case ModeNone:
		p = image.Pt(src.X+x, src.Y+y)
		return p, src.Contains(p.X, p.Y), nil
	case ModeRepeat:
		return image.Pt(repeat(src.X+x, src.Width), repeat(src.Y+y, src.Height)), true, nil
	case ModeClamp:
		return image.Pt(clamp(src.X+x, src.Width), clamp(src.Y+y, src.Height)), true, nil
	case ModeMirror:
		p = image.Pt(mirror(src.X+x, src.Width), mirror(src.Y+y, src.Height))
		if p.X < 0 || p.X >= src.Width || p.Y < 0 || p.Y >= src.Height {
			return p, false, fmt.Errorf("mirrored coordinate %v out of range %dx%d", p, src.Width, src.Height)
		}
		return p, true, nil
	case ModeStretch:
		if dst.Empty() {
			return image.Point{}, false, nil
		}
		scaleX := float64(src.Width) / float64(dst.Width)
		scaleY := float64(src.Height) / float64(dst.Height)
		p = image.Pt(
			src.X+int(math.Floor(float64(x)*scaleX)),
			src.Y+int(math.Floor(float64(y)*scaleY)),
		)
		return p, src.Contains(p.X, p.Y), nil
	}
	return image.Point{}, false, fmt.Errorf("%w: %v", ErrUnsupportedMode, m)
}

func repeat(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

func clamp(v, size int) int {
	return max(0, min(v, size-1))
}

func mirror(v, size int) int {
	if v < 0 {
		v = -v
	}
	if v >= size {
		v %= 2 * size
		if v >= size {
			v = 2*size - v - 1
		}
	}
	return v
}
