// Package bitutil holds the two-valued pixel matrix produced by binarization.
package bitutil

import (
	"image"
	"math/bits"
	"strings"
)

// Pixel values a BitMatrix reports for its two states.
const (
	Background byte = 0
	Foreground byte = 255
)

// BitMatrix is a packed two-valued image. A set bit is a foreground pixel
// (luminance 255) and an unset bit a background pixel (luminance 0).
// x is the column position, y is the row position. The origin is at the top-left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates an all-background BitMatrix with the given width and height.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseStringMatrix creates a BitMatrix from rows of setStr/unsetStr tokens
// separated by newlines. It panics on ragged rows or unknown characters.
func ParseStringMatrix(repr, setStr, unsetStr string) *BitMatrix {
	var cells []bool
	rowLength := -1
	rows := 0
	for _, line := range strings.Split(repr, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		n := 0
		for len(line) > 0 {
			switch {
			case strings.HasPrefix(line, setStr):
				cells = append(cells, true)
				line = line[len(setStr):]
			case strings.HasPrefix(line, unsetStr):
				cells = append(cells, false)
				line = line[len(unsetStr):]
			default:
				panic("bitmatrix: illegal character encountered")
			}
			n++
		}
		if rowLength == -1 {
			rowLength = n
		} else if n != rowLength {
			panic("bitmatrix: row lengths do not match")
		}
		rows++
	}
	matrix := NewBitMatrix(rowLength, rows)
	for i, on := range cells {
		if on {
			matrix.Set(i%rowLength, i/rowLength)
		}
	}
	return matrix
}

// Get returns true if the pixel at (x, y) is foreground.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Value returns the luminance of the pixel at (x, y): Foreground or Background.
func (bm *BitMatrix) Value(x, y int) byte {
	if bm.Get(x, y) {
		return Foreground
	}
	return Background
}

// Set marks the pixel at (x, y) as foreground.
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// CountRegion returns the number of foreground pixels inside r. The
// rectangle is clipped to the matrix bounds first.
func (bm *BitMatrix) CountRegion(r image.Rectangle) int {
	r = r.Intersect(bm.Bounds())
	count := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		offset := y * bm.rowSize
		x := r.Min.X
		for x < r.Max.X {
			word := bm.data[offset+x/32] >> uint(x&0x1f)
			n := 32 - x&0x1f
			if rest := r.Max.X - x; rest < n {
				n = rest
			}
			if n < 32 {
				word &= 1<<uint(n) - 1
			}
			count += bits.OnesCount32(word)
			x += n
		}
	}
	return count
}

// Bounds returns the rectangle covering every pixel of the matrix.
func (bm *BitMatrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.width, bm.height)
}

// Width returns the width of the matrix.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height of the matrix.
func (bm *BitMatrix) Height() int { return bm.height }

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if both matrices have the same size and pixels.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
