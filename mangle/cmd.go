// Package mangle imports images of any supported format, optionally
// resizes them and writes them as bitmaps.
package mangle

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bmpblit/batch"
	"bmpblit/bitmap"
	"bmpblit/parallel"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	batch.Params
	Width  int    `help:"Target width, 0 keeps the aspect ratio" group:"resize"`
	Height int    `help:"Target height, 0 keeps the aspect ratio" group:"resize"`
	Scaler string `help:"Resampling used when resizing" enum:"nearest,approx-bilinear,bilinear,catmull-rom" default:"nearest" group:"resize"`
	Bpp    int    `help:"Bits per pixel of the written bitmaps" enum:"16,24,32" default:"24"`

	format bitmap.Format `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Params.Resolve(); err != nil {
		return err
	}

	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid resize width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid resize height: %d", c.Height)
	}

	if _, err := scalerFor(c.Scaler); err != nil {
		return err
	}

	c.format = bitmap.Format(c.Bpp)
	if !c.format.Valid() {
		return fmt.Errorf("invalid bits per pixel: %d", c.Bpp)
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := batch.MkdirAll(c.Dest); err != nil {
		return err
	}

	files, err := batch.Files(c.Scan)
	if err != nil {
		return err
	}

	for _, fileName := range files {
		worker(func() error {
			filePath := filepath.Join(c.Scan, fileName)
			logger := slog.Default().With("file", filePath)

			img, err := load(logger, filePath, c.format)
			if err != nil {
				logger.Error("could not load image", "error", err)
				return err
			}

			if c.Width > 0 || c.Height > 0 {
				img, err = resize(logger, img, c.Width, c.Height, c.Scaler)
				if err != nil {
					logger.Error("could not resize image", "error", err)
					return err
				}
			}

			if err := batch.Save(img, c.Dest, batch.BaseName(fileName), c.Overwrite); err != nil {
				logger.Error("could not save image", "dir", c.Dest, "error", err)
				return err
			}
			return nil
		})
	}

	stats := wait()
	slog.Info("stats", "processed", stats.Processed, "errors", stats.Failed, "total", stats.Total())

	if stats.Failed > 0 {
		return fmt.Errorf("error processing %d files", stats.Failed)
	}
	return nil
}

// load reads a bitmap natively when possible and falls back to the
// registered image decoders for everything else, converting to format f.
func load(logger *slog.Logger, filePath string, f bitmap.Format) (*bitmap.Image, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".bmp") {
		img, err := bitmap.Open(filePath)
		switch {
		case err == nil:
			return convert(img, f)
		case errors.Is(err, bitmap.ErrUnsupportedBpp), errors.Is(err, bitmap.ErrInvalidFormat):
			logger.Debug("falling back to generic decoder", "error", err)
		default:
			return nil, err
		}
	}

	imgFile, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not open image: %w", err)
	}
	defer imgFile.Close()

	src, imgType, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	logger.Debug("importing", "type", imgType, "bounds", src.Bounds())
	return bitmap.FromImage(src, f)
}

func convert(img *bitmap.Image, f bitmap.Format) (*bitmap.Image, error) {
	if img.Format() == f {
		return img, nil
	}
	return bitmap.FromImage(img, f)
}
