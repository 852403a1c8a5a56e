package brailleart

import "errors"

var (
	// ErrInputNotFound is returned when the input image does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrDecode is returned when the input is not a decodable raster image.
	ErrDecode = errors.New("decode image")

	// ErrWidth is returned for a target width of zero.
	ErrWidth = errors.New("target width must not be 0")
)
