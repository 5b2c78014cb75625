// Package batch holds what the commands share: resolving the scanned and
// destination folders, listing input files and saving bitmaps.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Params struct {
	Scan      string `help:"Source folder to scan" default:"."`
	Dest      string `help:"Destination folder for written bitmaps. Relative to scan dir if not absolute." default:"out"`
	Overwrite bool   `help:"Replace existing destination files" default:"false"`
}

// Resolve makes Scan absolute, checks it is a folder and resolves Dest
// against it.
func (p *Params) Resolve() error {
	scanDir, err := ScanDir(p.Scan)
	if err != nil {
		return err
	}
	p.Scan = scanDir

	if !filepath.IsAbs(p.Dest) {
		p.Dest = filepath.Join(scanDir, p.Dest)
	}
	return nil
}

// ScanDir returns the absolute path of dir, which must be a folder.
func ScanDir(dir string) (string, error) {
	scanDir, err := filepath.Abs(dir)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return "", fmt.Errorf("invalid scan path %q: %w", dir, err)
	}
	return scanDir, nil
}

// Files lists the regular files of dir. When exts is not empty only
// files with one of those extensions (case insensitive, with the dot)
// are returned.
func Files(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read folder %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if len(exts) > 0 && !hasExt(entry.Name(), exts) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func hasExt(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// BaseName strips the extension of a file name.
func BaseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
