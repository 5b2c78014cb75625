// Package blit renders every bitmap of a folder onto an enlarged canvas,
// once per addressing mode.
package blit

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"bmpblit/batch"
	"bmpblit/bitmap"
	"bmpblit/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	batch.Params
	Modes      []string `help:"Addressing modes to render (none, repeat, clamp, mirror, stretch)" default:"none,repeat,clamp,mirror,stretch"`
	Scale      int      `help:"Canvas size as a multiple of the source size" default:"2"`
	Bpp        int      `help:"Bits per pixel of the canvas" enum:"16,24,32" default:"32"`
	Key        string   `help:"Source color treated as transparent, as #RRGGBB[AA]" default:"#000000"`
	Background string   `help:"Canvas color before every blit, as #RRGGBB[AA]" default:"#00000000"`

	modes      []bitmap.Mode `kong:"-"`
	format     bitmap.Format `kong:"-"`
	colorKey   bitmap.Color  `kong:"-"`
	background bitmap.Color  `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Params.Resolve(); err != nil {
		return err
	}

	c.modes = c.modes[:0]
	for _, name := range c.Modes {
		mode, err := bitmap.ParseMode(name)
		if err != nil {
			return err
		}
		c.modes = append(c.modes, mode)
	}
	if len(c.modes) == 0 {
		return fmt.Errorf("no addressing mode given")
	}

	if c.Scale < 1 {
		return fmt.Errorf("invalid canvas scale: %d", c.Scale)
	}

	c.format = bitmap.Format(c.Bpp)
	if !c.format.Valid() {
		return fmt.Errorf("invalid canvas bits per pixel: %d", c.Bpp)
	}

	var err error
	if c.colorKey, err = batch.ParseColor(c.Key); err != nil {
		return fmt.Errorf("invalid color key: %w", err)
	}
	if c.background, err = batch.ParseColor(c.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := batch.MkdirAll(c.Dest); err != nil {
		return err
	}

	files, err := batch.Files(c.Scan, ".bmp")
	if err != nil {
		return err
	}

	for _, fileName := range files {
		worker(func() error {
			logger := slog.Default().With("file", filepath.Join(c.Scan, fileName))
			if err := c.render(logger, fileName); err != nil {
				logger.Error("could not render bitmap", "error", err)
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

func (c *CLICmd) render(logger *slog.Logger, fileName string) error {
	src, err := bitmap.Open(filepath.Join(c.Scan, fileName))
	if err != nil {
		return err
	}

	canvas, err := bitmap.New(src.Width()*c.Scale, src.Height()*c.Scale, c.format)
	if err != nil {
		return err
	}

	base := batch.BaseName(fileName)
	for _, mode := range c.modes {
		canvas.Clear(c.background)
		if err := canvas.BitBlt(src, src.Rect(), canvas.Rect(), mode, c.colorKey); err != nil {
			return fmt.Errorf("could not blit with mode %v: %w", mode, err)
		}

		name := fmt.Sprintf("%s_%s", base, mode)
		if err := batch.Save(canvas, c.Dest, name, c.Overwrite); err != nil {
			return err
		}
		logger.Info("rendered", "mode", mode, "width", canvas.Width(), "height", canvas.Height(), "dest", name+".bmp")
	}
	return nil
}
