package bitmap

import "fmt"

// Resize rescales the image to width x height using nearest-below
// sampling of the original through ColorAt. A target of one column or
// one row samples the first column or row of the original.
func (m *Image) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("could not resize to %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width == m.width && height == m.height {
		return nil
	}
	if m.Empty() {
		return fmt.Errorf("could not resize empty image: %w", ErrInvalidDimensions)
	}

	tmp, err := New(width, height, m.format)
	if err != nil {
		return err
	}

	for y := range height {
		v := unit(y, height)
		for x := range width {
			c, err := m.ColorAt(unit(x, width), v)
			if err != nil {
				return fmt.Errorf("could not resize to %dx%d: %w", width, height, err)
			}
			if err := tmp.format.Put(tmp.pix[tmp.offset(x, y):], c); err != nil {
				return fmt.Errorf("could not resize to %dx%d: %w", width, height, err)
			}
		}
	}

	*m = *tmp
	return nil
}

// unit maps i in [0, n) onto [0, 1].
func unit(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
