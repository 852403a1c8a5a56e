package brailleart

import "github.com/ericlevine/brailleart/bitutil"

// LuminanceSource provides access to greyscale luminance values for an image.
type LuminanceSource interface {
	// Row returns a row of luminance data. If row is non-nil and large enough,
	// it should be reused.
	Row(y int, row []byte) []byte

	// Matrix returns the entire luminance matrix, row-major.
	Matrix() []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}

// Binarizer converts luminance data to a two-valued matrix.
type Binarizer interface {
	// Matrix returns the binarized image. Set bits are foreground.
	Matrix() (*bitutil.BitMatrix, error)

	// Threshold returns the luminance cutoff the binarizer applies.
	Threshold() int

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}
