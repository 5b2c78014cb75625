package bitmap

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 14, 23))
	for y := 20; y < 23; y++ {
		for x := 10; x < 14; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x55, A: 0xFF})
		}
	}

	for _, f := range []Format{Format24, Format32} {
		m, err := FromImage(src, f)
		if err != nil {
			t.Fatal(err)
		}
		if m.Width() != 4 || m.Height() != 3 {
			t.Fatalf("%v: got %dx%d, want 4x3", f, m.Width(), m.Height())
		}
		for y := range 3 {
			for x := range 4 {
				want := Color{R: uint8(x + 10), G: uint8(y + 20), B: 0x55, A: 0xFF}
				if got := pixel(t, m, x, y); got != want {
					t.Errorf("%v (%d, %d): got %v, want %v", f, x, y, got, want)
				}
			}
		}
	}
}

func TestFromImageEmpty(t *testing.T) {
	if _, err := FromImage(image.NewRGBA(image.Rectangle{}), Format24); err == nil {
		t.Error("expected an error importing an empty image")
	}
}

func TestImageInterface(t *testing.T) {
	m, _ := New(3, 2, Format32)
	m.Set(1, 1, color.NRGBA{R: 0xFF, A: 0x80})
	m.Set(5, 5, color.White)

	if got, want := m.At(1, 1), (Color{R: 0xFF, A: 0x80}); got != want {
		t.Errorf("At(1, 1): got %v, want %v", got, want)
	}
	if got := m.At(-1, 0); got != Transparent {
		t.Errorf("At outside: got %v, want %v", got, Transparent)
	}
	if got, want := m.Bounds(), image.Rect(0, 0, 3, 2); got != want {
		t.Errorf("Bounds: got %v, want %v", got, want)
	}
}

func TestScaleIntoImage(t *testing.T) {
	src, _ := New(2, 2, Format24)
	src.Clear(Blue)
	dst, _ := New(6, 6, Format24)

	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	for y := range 6 {
		for x := range 6 {
			if got := pixel(t, dst, x, y); got != Blue {
				t.Fatalf("(%d, %d): got %v, want %v", x, y, got, Blue)
			}
		}
	}
}
