// Package binarizer converts luminance data to two-valued matrices.
package binarizer

import "github.com/ericlevine/brailleart/bitutil"

// DefaultThreshold is the cutoff used when none is configured.
const DefaultThreshold = 127

// Source is the luminance data a binarizer reads. brailleart.LuminanceSource
// satisfies it.
type Source interface {
	// Matrix returns the row-major luminance values.
	Matrix() []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}

// Threshold binarizes with a fixed cutoff: pixels brighter than the threshold
// become foreground, everything else (ties included) background.
type Threshold struct {
	source    Source
	threshold int
}

// NewThreshold creates a Threshold binarizer. Thresholds outside 0-255 are
// allowed; a negative one makes every pixel foreground and one of 255 or more
// makes every pixel background.
func NewThreshold(source Source, threshold int) *Threshold {
	return &Threshold{source: source, threshold: threshold}
}

// Threshold returns the configured cutoff.
func (t *Threshold) Threshold() int { return t.threshold }

// Width returns the image width.
func (t *Threshold) Width() int { return t.source.Width() }

// Height returns the image height.
func (t *Threshold) Height() int { return t.source.Height() }

// Matrix returns the binarized image. It never fails.
func (t *Threshold) Matrix() (*bitutil.BitMatrix, error) {
	return binarize(t.source, t.threshold), nil
}

func binarize(source Source, threshold int) *bitutil.BitMatrix {
	width := source.Width()
	height := source.Height()
	matrix := bitutil.NewBitMatrix(width, height)

	luminances := source.Matrix()
	for y := 0; y < height; y++ {
		offset := y * width
		for x := 0; x < width; x++ {
			if int(luminances[offset+x]) > threshold {
				matrix.Set(x, y)
			}
		}
	}
	return matrix
}
