// Package inspect reports the header of every bitmap in a folder and can
// preview its pixels on a true color terminal.
package inspect

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"bmpblit/batch"
	"bmpblit/bitmap"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan         string `help:"Source folder to scan" default:"."`
	Preview      bool   `help:"Print the pixels as colored blocks" default:"false"`
	PreviewWidth int    `help:"Largest preview width, wider bitmaps are shrunk" default:"40"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := batch.ScanDir(c.Scan)
	if err != nil {
		return err
	}
	c.Scan = scanDir

	if c.PreviewWidth < 1 {
		return fmt.Errorf("invalid preview width: %d", c.PreviewWidth)
	}
	return nil
}

func (c *CLICmd) Run(kctx *kong.Context) error {
	return c.inspect(kctx.Stdout)
}

func (c *CLICmd) inspect(out io.Writer) error {
	files, err := batch.Files(c.Scan, ".bmp")
	if err != nil {
		return err
	}

	var okCount, errCount int
	for _, fileName := range files {
		filePath := filepath.Join(c.Scan, fileName)
		logger := slog.Default().With("file", filePath)

		cfg, err := readConfig(filePath)
		if err != nil {
			errCount++
			logger.Error("could not read bitmap header", "error", err)
			continue
		}

		logger.Info("bitmap",
			"width", cfg.Width,
			"height", cfg.Height,
			"format", cfg.Format,
			"top_down", cfg.TopDown,
			"file_size", cfg.FileSize,
			"data_offset", cfg.DataOffset,
			"header_size", cfg.HeaderSize,
			"compression", cfg.Compression,
			"stride", cfg.Stride,
			"padding", cfg.Padding)

		if c.Preview {
			if err := c.preview(out, filePath); err != nil {
				errCount++
				logger.Error("could not preview bitmap", "error", err)
				continue
			}
		}
		okCount++
	}

	slog.Info("stats", "processed", okCount, "errors", errCount, "total", okCount+errCount)

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}

func readConfig(filePath string) (bitmap.Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return bitmap.Config{}, fmt.Errorf("could not open bitmap: %w", err)
	}
	defer f.Close()
	return bitmap.DecodeConfig(f)
}

func (c *CLICmd) preview(out io.Writer, filePath string) error {
	img, err := bitmap.Open(filePath)
	if err != nil {
		return err
	}

	if img.Width() > c.PreviewWidth {
		height := max(1, img.Height()*c.PreviewWidth/img.Width())
		if err := img.Resize(c.PreviewWidth, height); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(out, "%s\n", filepath.Base(filePath)); err != nil {
		return err
	}
	return printBlocks(out, img)
}

// printBlocks writes two spaces per pixel with a 24-bit ANSI background.
func printBlocks(out io.Writer, img *bitmap.Image) error {
	for y := range img.Height() {
		for x := range img.Width() {
			c, err := img.Pixel(x, y)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(out, coloredBlock("  ", c)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func coloredBlock(block string, c bitmap.Color) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, block)
}
