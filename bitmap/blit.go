package bitmap

import "fmt"

// DefaultColorKey is the conventional transparent key for BitBlt.
var DefaultColorKey = Black

// BitBlt copies srcRect of src into dstRect of m. Both rectangles are
// first clamped to their images. Every destination pixel is mapped back
// to the source with mode; pixels without a source and source pixels
// equal to colorKey leave the destination unchanged.
//
// src is only read. Blitting an image onto itself reads pixels that may
// already have been written.
func (m *Image) BitBlt(src *Image, srcRect, dstRect Rect, mode Mode, colorKey Color) error {
	if mode < ModeNone || mode > ModeStretch {
		return fmt.Errorf("could not blit: %w: %v", ErrUnsupportedMode, mode)
	}

	if src == nil {
		return fmt.Errorf("could not blit: %w: no source image", ErrInvalidDimensions)
	}

	srcRect.Clamp(src.Rect())
	dstRect.Clamp(m.Rect())
	if srcRect.Empty() || dstRect.Empty() {
		return nil
	}

	for y := range dstRect.Height {
		for x := range dstRect.Width {
			p, ok, err := mode.Map(x, y, srcRect, dstRect)
			if err != nil {
				return fmt.Errorf("could not blit pixel (%d, %d): %w", dstRect.X+x, dstRect.Y+y, err)
			}
			if !ok || !src.inBounds(p.X, p.Y) {
				continue
			}

			c, err := src.format.Get(src.pix[src.offset(p.X, p.Y):])
			if err != nil {
				return err
			}
			if c == colorKey {
				continue
			}

			if err := m.format.Put(m.pix[m.offset(dstRect.X+x, dstRect.Y+y):], c); err != nil {
				return err
			}
		}
	}
	return nil
}
