package bitmap

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Config describes a BMP file as found in its headers.
type Config struct {
	Width       int
	Height      int
	Format      Format
	TopDown     bool   // rows are stored top to bottom
	FileSize    uint32 // as declared by the file header
	DataOffset  uint32
	HeaderSize  uint32 // size of the info header
	Compression uint32
	Stride      int // bytes per file row, padding included
	Padding     int // zero bytes at the end of every file row
}

// DecodeConfig reads the headers of a BMP file without its pixels.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg, _, err := readHeaders(r)
	return cfg, err
}

// readHeaders parses the file and info headers and reports how many
// bytes it consumed.
func readHeaders(r io.Reader) (Config, int64, error) {
	var cfg Config

	var fh fileHeader
	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return cfg, 0, fmt.Errorf("could not read file header: %w", err)
	}
	if fh.Type != [2]byte{'B', 'M'} {
		return cfg, 0, fmt.Errorf("%w: bad signature %q", ErrInvalidFormat, fh.Type[:])
	}
	cfg.FileSize = fh.Size
	cfg.DataOffset = fh.OffBits

	if err := binary.Read(r, binary.LittleEndian, &cfg.HeaderSize); err != nil {
		return cfg, 0, fmt.Errorf("could not read info header size: %w", err)
	}
	n := int64(fileHeaderLen + 4)

	var width, height int
	var bpp uint16
	switch {
	case cfg.HeaderSize == coreHeaderLen:
		var ch coreHeader
		if err := binary.Read(r, binary.LittleEndian, &ch); err != nil {
			return cfg, 0, fmt.Errorf("could not read core header: %w", err)
		}
		n += coreHeaderLen - 4
		width, height, bpp = int(ch.Width), int(ch.Height), ch.BitCount
	case cfg.HeaderSize >= infoHeaderLen:
		var ih infoHeader
		if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
			return cfg, 0, fmt.Errorf("could not read info header: %w", err)
		}
		n += infoHeaderLen - 4
		width, height, bpp = int(ih.Width), int(ih.Height), ih.BitCount
		cfg.Compression = ih.Compression
	default:
		return cfg, 0, fmt.Errorf("%w: unknown info header size %d", ErrInvalidFormat, cfg.HeaderSize)
	}

	cfg.Format = Format(bpp)
	if bpp > 0xFF || !cfg.Format.Valid() {
		return cfg, 0, fmt.Errorf("%w: %d", ErrUnsupportedBpp, bpp)
	}

	switch cfg.Compression {
	case compressionRGB:
	case compressionMask:
		want, ok := bitFieldsFor(cfg.Format)
		var got bitFields
		if err := binary.Read(r, binary.LittleEndian, &got); err != nil {
			return cfg, 0, fmt.Errorf("could not read bit fields: %w", err)
		}
		n += bitFieldsLen
		if !ok || got != want {
			return cfg, 0, fmt.Errorf("%w: unsupported %s channel masks %#x", ErrInvalidFormat, cfg.Format, got)
		}
	default:
		return cfg, 0, fmt.Errorf("%w: compression %d is not supported", ErrInvalidFormat, cfg.Compression)
	}

	if height < 0 {
		cfg.TopDown = true
		height = -height
	}
	if width <= 0 || height <= 0 {
		return cfg, 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	// the padded pixel array must fit in an int
	if width > (math.MaxInt/height-3)/cfg.Format.BytesPerPixel() {
		return cfg, 0, fmt.Errorf("%w: %dx%d is too large", ErrInvalidDimensions, width, height)
	}
	cfg.Width, cfg.Height = width, height
	cfg.Stride = rowStride(width, cfg.Format)
	cfg.Padding = cfg.Stride - width*cfg.Format.BytesPerPixel()

	return cfg, n, nil
}

// Decode reads a BMP image from r.
func Decode(r io.Reader) (*Image, error) {
	m := &Image{}
	if err := m.Decode(r); err != nil {
		return nil, err
	}
	return m, nil
}

// Open decodes the BMP file at path.
func Open(path string) (*Image, error) {
	m := &Image{}
	if err := m.DecodeFile(path); err != nil {
		return nil, err
	}
	return m, nil
}

// Decode replaces m with the BMP image read from r. Bottom-up files are
// flipped so that row 0 of m is always the top row. m is only modified
// when the whole pixel array could be read.
func (m *Image) Decode(r io.Reader) error {
	br := bufio.NewReader(r)

	cfg, n, err := readHeaders(br)
	if err != nil {
		return err
	}

	skip := int64(cfg.DataOffset) - n
	if skip < 0 {
		return fmt.Errorf("%w: pixel data offset %d overlaps the headers", ErrInvalidFormat, cfg.DataOffset)
	}
	if _, err := io.CopyN(io.Discard, br, skip); err != nil {
		return fmt.Errorf("could not seek to pixel data: %w", err)
	}

	// read before allocating, the buffer never outgrows the input
	size := cfg.Stride * cfg.Height
	data, err := io.ReadAll(io.LimitReader(br, int64(size)))
	if err != nil {
		return fmt.Errorf("could not read pixel data: %w", err)
	}
	// the padding of the last row is sometimes left out
	if len(data) < size-cfg.Padding {
		return fmt.Errorf("could not read pixel data: %w: got %d of %d bytes", io.ErrUnexpectedEOF, len(data), size)
	}

	tmp, err := New(cfg.Width, cfg.Height, cfg.Format)
	if err != nil {
		return err
	}

	for i := range cfg.Height {
		y := cfg.Height - 1 - i
		if cfg.TopDown {
			y = i
		}
		copy(tmp.pix[y*tmp.pitch:(y+1)*tmp.pitch], data[i*cfg.Stride:])
	}

	*m = *tmp
	return nil
}

// DecodeFile replaces m with the BMP file at path.
func (m *Image) DecodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open bitmap: %w", err)
	}
	defer f.Close()

	if err := m.Decode(f); err != nil {
		return fmt.Errorf("could not decode %q: %w", path, err)
	}
	return nil
}

// Encode writes m to w as an uncompressed, bottom-up BMP with a
// BITMAPINFOHEADER.
func (m *Image) Encode(w io.Writer) error {
	if m.Empty() {
		return fmt.Errorf("could not encode %dx%d image: %w", m.width, m.height, ErrInvalidDimensions)
	}

	stride := rowStride(m.width, m.format)
	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(fileHeaderLen + infoHeaderLen + stride*m.height),
		OffBits: fileHeaderLen + infoHeaderLen,
	}
	ih := infoHeader{
		Width:         int32(m.width),
		Height:        int32(m.height),
		Planes:        1,
		BitCount:      uint16(m.format),
		Compression:   compressionRGB,
		XPelsPerMeter: pixelsPerMeter, // 96 dpi
		YPelsPerMeter: pixelsPerMeter,
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &fh); err != nil {
		return fmt.Errorf("could not write file header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(infoHeaderLen)); err != nil {
		return fmt.Errorf("could not write info header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, &ih); err != nil {
		return fmt.Errorf("could not write info header: %w", err)
	}

	padding := make([]byte, stride-m.pitch)
	for y := m.height - 1; y >= 0; y-- {
		if _, err := bw.Write(m.pix[y*m.pitch : (y+1)*m.pitch]); err != nil {
			return fmt.Errorf("could not write row %d: %w", y, err)
		}
		if _, err := bw.Write(padding); err != nil {
			return fmt.Errorf("could not write padding of row %d: %w", y, err)
		}
	}

	return bw.Flush()
}

// EncodeFile writes m to name with a ".bmp" suffix appended.
func (m *Image) EncodeFile(name string) (err error) {
	path := name + ".bmp"
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create bitmap: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("could not close %q: %w", path, closeErr))
		}
	}()

	if err = m.Encode(f); err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	return nil
}
