package bitmap

import "errors"

var (
	ErrInvalidDimensions  = errors.New("invalid dimensions")
	ErrInvalidCoordinates = errors.New("invalid pixel coordinates")
	ErrInvalidFormat      = errors.New("invalid BMP format")
	ErrUnsupportedBpp     = errors.New("unsupported bits per pixel")
	ErrUnsupportedMode    = errors.New("unsupported addressing mode")
)
