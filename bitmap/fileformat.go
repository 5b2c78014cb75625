package bitmap

// Structures of an uncompressed BMP file, all little endian.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

const (
	fileHeaderLen   = 14
	coreHeaderLen   = 12 // BITMAPCOREHEADER
	infoHeaderLen   = 40 // BITMAPINFOHEADER
	bitFieldsLen    = 12 // red, green and blue masks following a BITMAPINFOHEADER
	pixelsPerMeter  = 3780
	compressionRGB  = 0
	compressionMask = 3 // BI_BITFIELDS
)

type fileHeader struct {
	Type     [2]byte // must be "BM"
	Size     uint32  // size of the whole file in bytes
	Reserved uint32
	OffBits  uint32 // offset of the pixel array from the start of the file
}

// coreHeader follows the 4-byte header size of a BITMAPCOREHEADER.
type coreHeader struct {
	Width    uint16
	Height   uint16
	Planes   uint16
	BitCount uint16
}

// infoHeader follows the 4-byte header size of a BITMAPINFOHEADER or any
// of its later versions.
type infoHeader struct {
	Width         int32 // width in pixels
	Height        int32 // height in pixels, negative for top-down rows
	Planes        uint16
	BitCount      uint16 // bits per pixel
	Compression   uint32
	SizeImage     uint32 // may be zero for uncompressed images
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitFields struct {
	Red, Green, Blue uint32
}

// bitFieldsFor returns the channel masks matching the pixel codec's layout.
func bitFieldsFor(f Format) (bitFields, bool) {
	switch f {
	case Format16:
		return bitFields{Red: 0xF800, Green: 0x07E0, Blue: 0x001F}, true
	case Format32:
		return bitFields{Red: 0x00FF0000, Green: 0x0000FF00, Blue: 0x000000FF}, true
	}
	return bitFields{}, false
}

// rowStride is the length of one file row, padded to 4 bytes.
func rowStride(width int, f Format) int {
	return (width*f.BytesPerPixel() + 3) &^ 3
}
