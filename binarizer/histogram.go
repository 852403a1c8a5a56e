package binarizer

import (
	"errors"

	"github.com/ericlevine/brailleart/bitutil"
)

const (
	luminanceBits    = 5
	luminanceShift   = 8 - luminanceBits
	luminanceBuckets = 1 << luminanceBits
)

// ErrSinglePeak is returned by EstimateThreshold when the luminance histogram
// has no second peak to separate foreground from background.
var ErrSinglePeak = errors.New("binarizer: histogram has a single peak")

// Histogram picks its cutoff from the global luminance histogram: the
// deepest valley between the two dominant peaks. Images whose histogram has a
// single peak fall back to a fixed threshold.
type Histogram struct {
	source    Source
	fallback  int
	threshold int
	computed  bool
	estimated bool
	buckets   [luminanceBuckets]int
}

// NewHistogram creates a Histogram binarizer that uses fallback when no
// threshold can be estimated.
func NewHistogram(source Source, fallback int) *Histogram {
	return &Histogram{source: source, fallback: fallback}
}

// Width returns the image width.
func (h *Histogram) Width() int { return h.source.Width() }

// Height returns the image height.
func (h *Histogram) Height() int { return h.source.Height() }

// Threshold returns the cutoff the binarizer applies, estimating it on first
// use.
func (h *Histogram) Threshold() int {
	if h.computed {
		return h.threshold
	}
	h.computed = true
	h.buckets = [luminanceBuckets]int{}
	for _, l := range h.source.Matrix() {
		h.buckets[l>>luminanceShift]++
	}
	t, err := EstimateThreshold(h.buckets[:])
	if err != nil {
		h.threshold = h.fallback
		return h.threshold
	}
	h.threshold = t
	h.estimated = true
	return h.threshold
}

// Estimated reports whether the threshold came from the histogram rather than
// the fallback.
func (h *Histogram) Estimated() bool {
	h.Threshold()
	return h.estimated
}

// Matrix returns the binarized image.
func (h *Histogram) Matrix() (*bitutil.BitMatrix, error) {
	return binarize(h.source, h.Threshold()), nil
}

// EstimateThreshold finds the valley between the two tallest, well separated
// peaks of a luminance histogram and returns it as a 0-255 cutoff.
func EstimateThreshold(buckets []int) (int, error) {
	numBuckets := len(buckets)
	maxBucketCount := 0
	firstPeak := 0
	firstPeakSize := 0
	for x := 0; x < numBuckets; x++ {
		if buckets[x] > firstPeakSize {
			firstPeak = x
			firstPeakSize = buckets[x]
		}
		if buckets[x] > maxBucketCount {
			maxBucketCount = buckets[x]
		}
	}

	// The second peak is weighted by its squared distance from the first so a
	// shoulder of the first peak does not win.
	secondPeak := 0
	secondPeakScore := 0
	for x := 0; x < numBuckets; x++ {
		dist := x - firstPeak
		score := buckets[x] * dist * dist
		if score > secondPeakScore {
			secondPeak = x
			secondPeakScore = score
		}
	}

	if secondPeakScore == 0 {
		return 0, ErrSinglePeak
	}

	if firstPeak > secondPeak {
		firstPeak, secondPeak = secondPeak, firstPeak
	}

	if secondPeak-firstPeak <= numBuckets/16 {
		return 0, ErrSinglePeak
	}

	bestValley := secondPeak - 1
	bestValleyScore := -1
	for x := secondPeak - 1; x > firstPeak; x-- {
		fromFirst := x - firstPeak
		score := fromFirst * fromFirst * (secondPeak - x) * (maxBucketCount - buckets[x])
		if score > bestValleyScore {
			bestValley = x
			bestValleyScore = score
		}
	}

	return bestValley << luminanceShift, nil
}
