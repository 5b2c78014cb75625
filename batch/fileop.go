package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"bmpblit/bitmap"
)

// checkDest fails when dest exists and may not be replaced.
func checkDest(dest string, overwrite bool) error {
	info, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
		return nil
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("destination is not a regular file %q: %s", info.Name(), info.Mode().String())
	}
	if !overwrite {
		return fmt.Errorf("destination file already exists: %q", info.Name())
	}
	return nil
}

// Save encodes img as destDir/name.bmp. The bitmap is written to a
// temporary file first and renamed once complete.
func Save(img *bitmap.Image, destDir, name string, overwrite bool) (err error) {
	destName := name + ".bmp"
	dest := filepath.Join(destDir, destName)
	if err := checkDest(dest, overwrite); err != nil {
		return err
	}

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			defErr := os.Rename(outFile.Name(), dest)
			if defErr == nil {
				return
			}
			err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
		}
		if defErr := os.Remove(outFile.Name()); defErr != nil {
			slog.Error("could not remove temporary file", "name", outFile.Name(), "error", defErr)
		}
	}()

	if err = img.Encode(outFile); err != nil {
		return fmt.Errorf("could not encode BMP destination %q: %w", destName, err)
	}

	canRename = true
	return nil
}

// MkdirAll creates the destination folder.
func MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", dir, err)
	}
	return nil
}
