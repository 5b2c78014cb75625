package bitmap

import "image"

// Rect is an axis aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          int
	Width, Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Clamp moves the origin inside bound and shrinks the size so that the
// rectangle does not reach past bound's right and bottom edges. A
// rectangle lying completely outside bound ends up empty.
func (r *Rect) Clamp(bound Rect) {
	if r.X < bound.X {
		r.X = bound.X
	}
	if r.Y < bound.Y {
		r.Y = bound.Y
	}
	if r.X+r.Width > bound.X+bound.Width {
		r.Width = max(0, bound.X+bound.Width-r.X)
	}
	if r.Y+r.Height > bound.Y+bound.Height {
		r.Height = max(0, bound.Y+bound.Height-r.Y)
	}
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func RectFrom(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}
