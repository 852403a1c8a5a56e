package brailleart

import (
	"image"
	"image/color"

	"github.com/ericlevine/brailleart/bitutil"
)

// ImageLuminanceSource is a LuminanceSource over an owned, row-major slice of
// 8-bit luminance values.
type ImageLuminanceSource struct {
	luminances []byte
	width      int
	height     int
}

// NewImageLuminanceSource creates a LuminanceSource from a Go image.Image.
// Colour pixels are reduced with (306*R + 601*G + 117*B + 0x200) >> 10 over
// their non-premultiplied 8-bit components; alpha is ignored.
func NewImageLuminanceSource(img image.Image) *ImageLuminanceSource {
	if gray, ok := img.(*image.Gray); ok {
		return NewGrayImageLuminanceSource(gray)
	}
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	luminances := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			r, g, b := uint32(c.R), uint32(c.G), uint32(c.B)
			luminances[y*w+x] = byte((306*r + 601*g + 117*b + 0x200) >> 10)
		}
	}

	return &ImageLuminanceSource{
		luminances: luminances,
		width:      w,
		height:     h,
	}
}

// NewGrayImageLuminanceSource creates a LuminanceSource from a *image.Gray,
// using the pixel data directly without conversion.
func NewGrayImageLuminanceSource(img *image.Gray) *ImageLuminanceSource {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	luminances := make([]byte, w*h)
	for y := 0; y < h; y++ {
		srcOff := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(luminances[y*w:], img.Pix[srcOff:srcOff+w])
	}
	return &ImageLuminanceSource{
		luminances: luminances,
		width:      w,
		height:     h,
	}
}

// NewLuminanceSource creates a LuminanceSource from a row-major copy of
// luminances. It panics if the slice does not hold width*height values.
func NewLuminanceSource(width, height int, luminances []byte) *ImageLuminanceSource {
	if width < 0 || height < 0 || len(luminances) != width*height {
		panic("brailleart: luminance data does not match dimensions")
	}
	lum := make([]byte, len(luminances))
	copy(lum, luminances)
	return &ImageLuminanceSource{
		luminances: lum,
		width:      width,
		height:     height,
	}
}

// NewBitMatrixLuminanceSource exposes a binarized matrix as luminance, 255
// for foreground and 0 for background.
func NewBitMatrixLuminanceSource(matrix *bitutil.BitMatrix) *ImageLuminanceSource {
	w := matrix.Width()
	h := matrix.Height()
	luminances := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			luminances[y*w+x] = matrix.Value(x, y)
		}
	}
	return &ImageLuminanceSource{
		luminances: luminances,
		width:      w,
		height:     h,
	}
}

// Row returns a row of luminance data.
func (s *ImageLuminanceSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	if row == nil || len(row) < s.width {
		row = make([]byte, s.width)
	}
	offset := y * s.width
	copy(row, s.luminances[offset:offset+s.width])
	return row
}

// Matrix returns the entire luminance matrix.
func (s *ImageLuminanceSource) Matrix() []byte {
	result := make([]byte, len(s.luminances))
	copy(result, s.luminances)
	return result
}

// Width returns the width of the image.
func (s *ImageLuminanceSource) Width() int {
	return s.width
}

// Height returns the height of the image.
func (s *ImageLuminanceSource) Height() int {
	return s.height
}

// ToGray copies any LuminanceSource into a *image.Gray.
func ToGray(src LuminanceSource) *image.Gray {
	w := src.Width()
	h := src.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	var row []byte
	for y := 0; y < h; y++ {
		row = src.Row(y, row)
		copy(img.Pix[y*img.Stride:], row[:w])
	}
	return img
}

// MatrixToImage converts a BitMatrix to a grayscale image where foreground
// pixels are white (255) and background pixels black (0).
func MatrixToImage(matrix *bitutil.BitMatrix) *image.Gray {
	return ToGray(NewBitMatrixLuminanceSource(matrix))
}
