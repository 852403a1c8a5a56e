package sampler

import (
	"image"
	"testing"

	"github.com/ericlevine/brailleart/bitutil"
)

func TestMajority(t *testing.T) {
	tests := []struct {
		name   string
		matrix string
		want   bool
	}{
		{"all foreground", "11\n11\n", true},
		{"all background", "00\n00\n", false},
		{"tie", "10\n01\n", false},
		{"three of four", "11\n10\n", true},
		{"one of four", "00\n10\n", false},
		{"three of five", "10101\n", true},
	}
	for _, tt := range tests {
		m := bitutil.ParseStringMatrix(tt.matrix, "1", "0")
		if got := Majority(m, m.Bounds()); got != tt.want {
			t.Errorf("%s: Majority = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMajorityClipsToMatrix(t *testing.T) {
	m := bitutil.ParseStringMatrix("001\n001\n", "1", "0")
	// Only column 2 is inside the matrix, and it is all foreground.
	if !Majority(m, image.Rect(2, 0, 6, 4)) {
		t.Error("clipped edge cell should vote over its covered pixels only")
	}
	if Majority(m, image.Rect(5, 5, 7, 7)) {
		t.Error("cell outside the matrix should be background")
	}
}

func TestDotGrid(t *testing.T) {
	m := bitutil.ParseStringMatrix(
		"1100\n"+
			"1100\n"+
			"0011\n"+
			"0001\n", "1", "0")
	if got := DotGrid(m, m.Bounds(), 2); got != "1001" {
		t.Errorf("DotGrid(cell 2) = %q, want %q", got, "1001")
	}
	if got := DotGrid(m, m.Bounds(), 1); got != "1100110000110001" {
		t.Errorf("DotGrid(cell 1) = %q", got)
	}
}

func TestDotGridLength(t *testing.T) {
	tests := []struct {
		w, h, cell, want int
	}{
		{4, 4, 2, 4},
		{5, 4, 2, 6},
		{5, 5, 2, 9},
		{7, 3, 3, 3},
		{2, 4, 1, 8},
		{1, 1, 4, 1},
	}
	for _, tt := range tests {
		m := bitutil.NewBitMatrix(tt.w, tt.h)
		if got := len(DotGrid(m, m.Bounds(), tt.cell)); got != tt.want {
			t.Errorf("len(DotGrid(%dx%d, %d)) = %d, want %d", tt.w, tt.h, tt.cell, got, tt.want)
		}
	}
}

func TestDotGridTruncatedEdge(t *testing.T) {
	// The right-hand cell is one pixel wide; its two pixels are a tie in the
	// first row pair and a majority in the second.
	m := bitutil.ParseStringMatrix(
		"000\n"+
			"001\n"+
			"001\n"+
			"001\n", "1", "0")
	if got := DotGrid(m, m.Bounds(), 2); got != "0001" {
		t.Errorf("DotGrid = %q, want %q", got, "0001")
	}
}

func TestDotGridSubRegion(t *testing.T) {
	m := bitutil.ParseStringMatrix(
		"0000\n"+
			"0110\n"+
			"0110\n"+
			"0000\n", "1", "0")
	if got := DotGrid(m, image.Rect(1, 1, 3, 3), 1); got != "1111" {
		t.Errorf("DotGrid(sub region) = %q, want %q", got, "1111")
	}
	if got := DotGrid(m, image.Rect(3, 3, 9, 9), 1); got != "0" {
		t.Errorf("DotGrid(overhanging region) = %q, want %q", got, "0")
	}
}

func TestDotGridInvalidCellSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero cell size")
		}
	}()
	m := bitutil.NewBitMatrix(2, 2)
	DotGrid(m, m.Bounds(), 0)
}
