// Package brailleart renders grayscale images as Unicode Braille text art.
//
// An image is resized to the requested number of glyphs per row, binarized
// with a luminance threshold, and walked in blocks of 2x4 pixels. Each block
// becomes one glyph of the Braille Patterns block (U+2800-U+28FF) whose dots
// are the block's foreground pixels.
package brailleart

import (
	"context"
	"image"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ericlevine/brailleart/binarizer"
	"github.com/ericlevine/brailleart/bitutil"
	"github.com/ericlevine/brailleart/glyph"
	"github.com/ericlevine/brailleart/sampler"
)

const (
	cellWidth  = 2
	cellHeight = 2 * cellWidth

	// dotSize is the side of the square of pixels behind one dot: half a
	// cell width, rounded.
	dotSize = (cellWidth + 1) / 2
)

// RenderOptions configures rendering.
type RenderOptions struct {
	// Width is the number of glyphs per row. NoResize keeps the source
	// resolution; any other negative value means DefaultCharWidth.
	Width int

	// Threshold is the luminance cutoff: brighter pixels are foreground.
	Threshold int

	// AutoThreshold estimates the cutoff from the image histogram, falling
	// back to Threshold when the histogram has a single peak.
	AutoThreshold bool

	// Swap renders with glyph.Inverted, raising dots for background pixels.
	Swap bool

	// Workers is the number of rows rendered concurrently. Zero or less
	// means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultRenderOptions returns the options of the command-line tool.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:     300,
		Threshold: binarizer.DefaultThreshold,
	}
}

// Result is a rendered image together with the parameters that produced it.
type Result struct {
	// Text holds one line per glyph row, each terminated by '\n'.
	Text string

	// Columns and Rows count glyphs.
	Columns int
	Rows    int

	// Width and Height are the size of the image after resizing.
	Width  int
	Height int

	// Threshold is the cutoff that was applied.
	Threshold int

	// Polarity is the glyph convention that was applied.
	Polarity glyph.Polarity
}

// Render resizes, binarizes and rasterizes src, returning the text art.
func Render(ctx context.Context, src LuminanceSource, opts *RenderOptions) (string, error) {
	res, err := Rasterize(ctx, src, opts)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Rasterize is Render, also reporting the parameters used.
func Rasterize(ctx context.Context, src LuminanceSource, opts *RenderOptions) (*Result, error) {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	resized, err := Resize(src, opts.Width)
	if err != nil {
		return nil, err
	}
	polarity := glyph.PolarityFor(opts.Swap)
	if resized.Width() == 0 || resized.Height() == 0 {
		return &Result{Threshold: opts.Threshold, Polarity: polarity}, nil
	}

	bin := newBinarizer(resized, opts)
	matrix, err := bin.Matrix()
	if err != nil {
		return nil, err
	}

	text, err := RenderMatrix(ctx, matrix, polarity, opts.Workers)
	if err != nil {
		return nil, err
	}
	return &Result{
		Text:      text,
		Columns:   ceilDiv(matrix.Width(), cellWidth),
		Rows:      ceilDiv(matrix.Height(), cellHeight),
		Width:     matrix.Width(),
		Height:    matrix.Height(),
		Threshold: bin.Threshold(),
		Polarity:  polarity,
	}, nil
}

func newBinarizer(src LuminanceSource, opts *RenderOptions) Binarizer {
	if opts.AutoThreshold {
		return binarizer.NewHistogram(src, opts.Threshold)
	}
	return binarizer.NewThreshold(src, opts.Threshold)
}

// RenderMatrix rasterizes a binarized image without resizing it. Rows of
// glyphs are built by up to workers goroutines and joined top to bottom.
func RenderMatrix(ctx context.Context, matrix *bitutil.BitMatrix, polarity glyph.Polarity, workers int) (string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	rows := ceilDiv(matrix.Height(), cellHeight)
	cols := ceilDiv(matrix.Width(), cellWidth)
	lines := make([]string, rows)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for row := 0; row < rows; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines[row] = renderRow(matrix, row*cellHeight, cols, polarity)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var sb strings.Builder
	// Braille glyphs are three bytes in UTF-8.
	sb.Grow(rows * (cols*3 + 1))
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func renderRow(matrix *bitutil.BitMatrix, y, cols int, polarity glyph.Polarity) string {
	var sb strings.Builder
	sb.Grow(cols * 3)
	for col := 0; col < cols; col++ {
		x := col * cellWidth
		cell := image.Rect(x, y, x+cellWidth, y+cellHeight)
		sb.WriteRune(cellGlyph(matrix, cell, polarity))
	}
	return sb.String()
}

// cellGlyph encodes one super-cell. A cell hanging over the right or bottom
// edge yields a shorter dot grid, whose symbols fill the leading dot
// positions in order; the remaining dots keep the polarity's base.
func cellGlyph(matrix *bitutil.BitMatrix, cell image.Rectangle, polarity glyph.Polarity) rune {
	dots := sampler.DotGrid(matrix, cell, dotSize)
	if cell.In(matrix.Bounds()) {
		return glyph.Encode(dots, polarity)
	}
	return glyph.FromPattern(polarity.Pattern(dots))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
