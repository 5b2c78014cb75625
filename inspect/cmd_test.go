package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bmpblit/bitmap"
)

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	img, _ := bitmap.New(2, 1, bitmap.Format24)
	img.SetPixel(0, 0, bitmap.Red)
	img.SetPixel(1, 0, bitmap.Blue)
	if err := img.EncodeFile(filepath.Join(dir, "pair")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skipped"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &CLICmd{Scan: dir, Preview: true, PreviewWidth: 40}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	var out bytes.Buffer
	if err := cmd.inspect(&out); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	want := "pair.bmp\n" +
		"\033[48;2;255;0;0m  \033[0m" +
		"\033[48;2;0;0;255m  \033[0m\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInspectShrinksPreview(t *testing.T) {
	dir := t.TempDir()
	img, _ := bitmap.New(8, 4, bitmap.Format32)
	img.Clear(bitmap.Green)
	if err := img.EncodeFile(filepath.Join(dir, "wide")); err != nil {
		t.Fatal(err)
	}

	cmd := &CLICmd{Scan: dir, Preview: true, PreviewWidth: 4}
	var out bytes.Buffer
	if err := cmd.inspect(&out); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want a name and 2 rows", len(lines))
	}
	if n := strings.Count(lines[1], "\033[0m"); n != 4 {
		t.Errorf("got %d blocks per row, want 4", n)
	}
}

func TestInspectFailures(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.bmp"), []byte("XX not a bitmap"), 0o644); err != nil {
		t.Fatal(err)
	}
	img, _ := bitmap.New(1, 1, bitmap.Format16)
	if err := img.EncodeFile(filepath.Join(dir, "good")); err != nil {
		t.Fatal(err)
	}

	cmd := &CLICmd{Scan: dir, PreviewWidth: 40}
	var out bytes.Buffer
	if err := cmd.inspect(&out); err == nil {
		t.Error("expected an error for a broken bitmap")
	}
	if out.Len() != 0 {
		t.Errorf("got preview output %q without --preview", out.String())
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cmd  CLICmd
	}{
		{"missing folder", CLICmd{Scan: filepath.Join(dir, "missing"), PreviewWidth: 1}},
		{"not a folder", CLICmd{Scan: file, PreviewWidth: 1}},
		{"preview width", CLICmd{Scan: dir, PreviewWidth: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(nil); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
