package brailleart

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

const (
	// NoResize keeps the source resolution.
	NoResize = -1

	// DefaultCharWidth replaces any negative target width other than NoResize.
	DefaultCharWidth = 100
)

// areaKernel weights each source pixel by the share of it that a destination
// pixel covers, for a shrink factor of scale source pixels per destination
// pixel. t is in destination pixels, as draw.Kernel passes it.
func areaKernel(scale float64) *draw.Kernel {
	return &draw.Kernel{
		Support: 0.5 + 0.5/scale,
		At: func(t float64) float64 {
			return max(0, min(1, 0.5*scale+0.5-t*scale))
		},
	}
}

// axisScaler picks the filter for resampling one axis from n to m pixels.
func axisScaler(n, m int) draw.Scaler {
	if m > n {
		return draw.BiLinear
	}
	return areaKernel(float64(n) / float64(m))
}

// TargetSize returns the pixel size an image of width x height is resized to
// for a target of charWidth glyphs per row. Every glyph is two pixels wide, and
// the height keeps the aspect ratio, rounded, and at least one pixel. ok is
// false when charWidth is NoResize.
func TargetSize(width, height, charWidth int) (w, h int, ok bool) {
	if charWidth == NoResize {
		return width, height, false
	}
	if charWidth < 0 {
		charWidth = DefaultCharWidth
	}
	w = 2 * charWidth
	if width > 0 {
		h = int(math.Round(float64(w) * float64(height) / float64(width)))
	}
	if h < 1 {
		h = 1
	}
	return w, h, true
}

// Resize scales src to charWidth glyphs per row as TargetSize describes. An
// axis that shrinks averages the source area under each output pixel,
// weighting partly covered pixels by their coverage. An axis that grows is
// interpolated bilinearly. src is returned unchanged for NoResize.
func Resize(src LuminanceSource, charWidth int) (LuminanceSource, error) {
	if charWidth == 0 {
		return nil, ErrWidth
	}
	if src.Width() == 0 || src.Height() == 0 {
		return src, nil
	}
	w, h, ok := TargetSize(src.Width(), src.Height(), charWidth)
	if !ok {
		return src, nil
	}

	// One axis per pass, so each gets the filter for its own factor.
	gray := ToGray(src)
	wide := image.NewGray(image.Rect(0, 0, w, src.Height()))
	axisScaler(src.Width(), w).Scale(wide, wide.Bounds(), gray, gray.Bounds(), draw.Src, nil)
	dst := image.NewGray(image.Rect(0, 0, w, h))
	axisScaler(src.Height(), h).Scale(dst, dst.Bounds(), wide, wide.Bounds(), draw.Src, nil)

	return NewGrayImageLuminanceSource(dst), nil
}
