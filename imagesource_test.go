package brailleart

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ericlevine/brailleart/bitutil"
)

func TestNewImageLuminanceSource(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(2, 0, color.RGBA{0, 0, 255, 255})
	img.Set(3, 0, color.RGBA{255, 255, 255, 255})

	src := NewImageLuminanceSource(img)
	want := []byte{76, 150, 29, 255}
	if got := src.Matrix(); !bytes.Equal(got, want) {
		t.Errorf("Matrix = %v, want %v", got, want)
	}
}

func TestNewImageLuminanceSourceIgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{255, 255, 255, 0})
	if got := NewImageLuminanceSource(img).Matrix()[0]; got != 255 {
		t.Errorf("transparent white = %d, want 255", got)
	}
}

func TestNewGrayImageLuminanceSourceSubImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)
	src := NewImageLuminanceSource(sub)
	if src.Width() != 2 || src.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", src.Width(), src.Height())
	}
	if got, want := src.Matrix(), []byte{5, 6, 9, 10}; !bytes.Equal(got, want) {
		t.Errorf("Matrix = %v, want %v", got, want)
	}
}

func TestLuminanceSourceCopies(t *testing.T) {
	lum := []byte{1, 2, 3, 4}
	src := NewLuminanceSource(2, 2, lum)
	lum[0] = 99
	m := src.Matrix()
	m[1] = 99
	if got := src.Row(0, nil); !bytes.Equal(got, []byte{1, 2}) {
		t.Errorf("Row(0) = %v, want [1 2]", got)
	}
	if src.Row(2, nil) != nil {
		t.Error("Row outside the image should be nil")
	}
}

func TestNewLuminanceSourceMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched dimensions")
		}
	}()
	NewLuminanceSource(3, 3, make([]byte, 8))
}

func TestMatrixToImage(t *testing.T) {
	m := bitutil.ParseStringMatrix("10\n01\n", "1", "0")
	img := MatrixToImage(m)
	want := []byte{255, 0, 0, 255}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("Pix = %v, want %v", img.Pix, want)
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.Pix[4] = 200
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	src, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := src.Matrix(), []byte{0, 0, 0, 0, 200, 0}; !bytes.Equal(got, want) {
		t.Errorf("Matrix = %v, want %v", got, want)
	}
}

func TestDecodeFailure(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}
