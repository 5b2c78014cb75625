package batch

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"bmpblit/bitmap"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	p := Params{Scan: dir, Dest: "out"}
	if err := p.Resolve(); err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "out"); p.Dest != want {
		t.Errorf("Dest: got %q, want %q", p.Dest, want)
	}

	abs := filepath.Join(t.TempDir(), "elsewhere")
	p = Params{Scan: dir, Dest: abs}
	if err := p.Resolve(); err != nil {
		t.Fatal(err)
	}
	if p.Dest != abs {
		t.Errorf("absolute Dest: got %q, want %q", p.Dest, abs)
	}

	file := filepath.Join(dir, "file.bmp")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	p = Params{Scan: file}
	if err := p.Resolve(); err == nil {
		t.Error("expected an error for a scan path that is a file")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bmp", "b.BMP", "c.png", "d.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.bmp"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Files(dir, ".bmp")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.bmp", "b.BMP"}; !slices.Equal(got, want) {
		t.Errorf("Files(.bmp): got %v, want %v", got, want)
	}

	got, _ = Files(dir)
	if len(got) != 4 {
		t.Errorf("Files(): got %v, want 4 files", got)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img, err := bitmap.New(3, 3, bitmap.Format24)
	if err != nil {
		t.Fatal(err)
	}
	img.Clear(bitmap.Red)

	if err := Save(img, dir, "red", false); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := bitmap.Open(filepath.Join(dir, "red.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := got.Pixel(2, 2); c != bitmap.Red {
		t.Errorf("saved pixel: got %v, want %v", c, bitmap.Red)
	}

	if err := Save(img, dir, "red", false); err == nil {
		t.Error("expected an error saving over an existing file")
	}
	if err := Save(img, dir, "red", true); err != nil {
		t.Errorf("Save with overwrite: %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}

	var empty bitmap.Image
	if err := Save(&empty, dir, "empty", false); err == nil {
		t.Error("expected an error saving an empty image")
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 1 {
		t.Errorf("failed save left files behind: %v", entries)
	}
}

func TestBaseName(t *testing.T) {
	if got := BaseName("photo.final.bmp"); got != "photo.final" {
		t.Errorf("got %q, want %q", got, "photo.final")
	}
}
