package brailleart

import (
	"fmt"
	"image"
	"io"

	// Codecs accepted as input.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads a raster image in any registered format and converts it to
// luminance. Failures wrap ErrDecode.
func Decode(r io.Reader) (*ImageLuminanceSource, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return NewImageLuminanceSource(img), nil
}
