// Package sampler reduces regions of a binarized image to single bits.
package sampler

import (
	"image"
	"strings"

	"github.com/ericlevine/brailleart/bitutil"
)

// Symbols written by DotGrid for each sampled cell.
const (
	On  = '1'
	Off = '0'
)

// Majority reports whether foreground pixels outnumber background pixels in
// cell. The cell is clipped to the matrix, so cells hanging over the right or
// bottom edge vote over the pixels they actually cover. Ties and empty cells
// are background.
func Majority(m *bitutil.BitMatrix, cell image.Rectangle) bool {
	cell = cell.Intersect(m.Bounds())
	total := cell.Dx() * cell.Dy()
	foreground := m.CountRegion(cell)
	return foreground > total-foreground
}

// DotGrid walks r in strides of cellSize, left to right and top to bottom, and
// writes On or Off for every cell according to Majority. r is clipped to the
// matrix first; the result holds ceil(h/cellSize)*ceil(w/cellSize) symbols
// for the clipped width w and height h.
func DotGrid(m *bitutil.BitMatrix, r image.Rectangle, cellSize int) string {
	if cellSize < 1 {
		panic("sampler: cell size must be at least 1")
	}
	r = r.Intersect(m.Bounds())
	if r.Empty() {
		return ""
	}
	cols := (r.Dx() + cellSize - 1) / cellSize
	rows := (r.Dy() + cellSize - 1) / cellSize

	var sb strings.Builder
	sb.Grow(cols * rows)
	for y := r.Min.Y; y < r.Max.Y; y += cellSize {
		for x := r.Min.X; x < r.Max.X; x += cellSize {
			cell := image.Rect(x, y, x+cellSize, y+cellSize).Intersect(r)
			if Majority(m, cell) {
				sb.WriteByte(On)
			} else {
				sb.WriteByte(Off)
			}
		}
	}
	return sb.String()
}
