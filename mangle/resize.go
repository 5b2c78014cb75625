package mangle

import (
	"fmt"
	"log/slog"
	"math"

	"bmpblit/bitmap"

	"golang.org/x/image/draw"
)

// scalerFor returns nil for nearest, which is done by the bitmap itself.
func scalerFor(name string) (draw.Scaler, error) {
	switch name {
	case "nearest", "":
		return nil, nil
	case "approx-bilinear":
		return draw.ApproxBiLinear, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "catmull-rom":
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("unsupported scaler: %s", name)
}

// targetSize fills in a zero dimension from the source aspect ratio.
func targetSize(srcWidth, srcHeight, width, height int) (int, int) {
	switch {
	case width == 0 && height == 0:
		return srcWidth, srcHeight
	case width == 0:
		width = int(math.Round(float64(height) * float64(srcWidth) / float64(srcHeight)))
	case height == 0:
		height = int(math.Round(float64(width) * float64(srcHeight) / float64(srcWidth)))
	}
	return max(1, width), max(1, height)
}

func resize(logger *slog.Logger, img *bitmap.Image, width, height int, scalerName string) (*bitmap.Image, error) {
	width, height = targetSize(img.Width(), img.Height(), width, height)
	if width == img.Width() && height == img.Height() {
		return img, nil
	}

	scaler, err := scalerFor(scalerName)
	if err != nil {
		return nil, err
	}

	logger.Info("resizing", "width", width, "height", height, "scaler", scalerName)
	if scaler == nil {
		if err := img.Resize(width, height); err != nil {
			return nil, err
		}
		return img, nil
	}

	dest, err := bitmap.New(width, height, img.Format())
	if err != nil {
		return nil, err
	}
	scaler.Scale(dest, dest.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dest, nil
}
