package bitmap

import (
	"image"
	"testing"
)

func TestRectClamp(t *testing.T) {
	bound := NewRect(0, 0, 10, 8)

	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"inside", NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3)},
		{"same", bound, bound},
		{"overflow right", NewRect(8, 0, 5, 2), NewRect(8, 0, 2, 2)},
		{"overflow bottom", NewRect(0, 6, 2, 5), NewRect(0, 6, 2, 2)},
		{"negative origin", NewRect(-3, -1, 4, 4), NewRect(0, 0, 4, 4)},
		{"larger", NewRect(0, 0, 100, 100), bound},
		{"outside", NewRect(20, 20, 5, 5), NewRect(20, 20, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r
			got.Clamp(bound)
			if got != tt.want {
				t.Errorf("Clamp: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectClampWithinBound(t *testing.T) {
	bound := NewRect(3, 2, 7, 5)
	for x := 0; x < 15; x++ {
		for y := 0; y < 12; y++ {
			for _, size := range [][2]int{{1, 1}, {4, 2}, {10, 10}} {
				r := NewRect(x, y, size[0], size[1])
				r.Clamp(bound)
				if r.Empty() {
					continue
				}
				if r.X < bound.X || r.Y < bound.Y ||
					r.X+r.Width > bound.X+bound.Width || r.Y+r.Height > bound.Y+bound.Height {
					t.Fatalf("Clamp(%d, %d, %v): %+v not inside %+v", x, y, size, r, bound)
				}
			}
		}
	}
}

func TestRectConversion(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if got, want := r.Rectangle(), image.Rect(1, 2, 4, 6); got != want {
		t.Errorf("Rectangle: got %v, want %v", got, want)
	}
	if got := RectFrom(r.Rectangle()); got != r {
		t.Errorf("RectFrom: got %+v, want %+v", got, r)
	}
	if !r.Contains(1, 2) || !r.Contains(3, 5) || r.Contains(4, 5) || r.Contains(3, 6) {
		t.Errorf("Contains: wrong edges for %+v", r)
	}
}
