// Package glyph encodes 2x4 dot grids as Unicode Braille Patterns.
package glyph

// Base is the code point of the blank Braille cell. Every glyph is Base plus
// an 8-bit dot pattern.
const Base rune = 0x2800

// dotBits maps a grid position, numbered row-major over the 4x2 cell,
// to its bit in the Braille Patterns block.
//
//	0 1      bit0 bit3
//	2 3  ->  bit1 bit4
//	4 5      bit2 bit5
//	6 7      bit6 bit7
var dotBits = [8]uint{0, 3, 1, 4, 2, 5, 6, 7}

// Polarity selects which dot-grid symbol raises a dot.
type Polarity struct {
	name   string
	base   byte
	marked byte
}

var (
	// Normal raises a dot for every '1' in the grid, starting from a blank cell.
	Normal = Polarity{name: "normal", base: 0x00, marked: '1'}

	// Inverted raises a dot for every '0' in the grid, starting from a full
	// cell. It suits light-on-dark output.
	Inverted = Polarity{name: "inverted", base: 0xFF, marked: '0'}
)

// PolarityFor returns Inverted when swap is set and Normal otherwise.
func PolarityFor(swap bool) Polarity {
	if swap {
		return Inverted
	}
	return Normal
}

// String returns the name of the polarity.
func (p Polarity) String() string { return p.name }

// Pattern returns the 8-bit dot pattern for a dot grid listed row-major over
// the cell. Positions holding the marked symbol set their bit; every other
// position clears it. A grid shorter than 8 symbols only assigns the leading
// positions, and the rest keep the polarity's base. It panics if dots has more
// than 8 symbols.
func (p Polarity) Pattern(dots string) byte {
	if len(dots) > len(dotBits) {
		panic("glyph: dot grid has more than 8 positions")
	}
	pattern := p.base
	for i := 0; i < len(dots); i++ {
		if dots[i] == p.marked {
			pattern |= 1 << dotBits[i]
		} else {
			pattern &^= 1 << dotBits[i]
		}
	}
	return pattern
}

// Encode returns the Braille glyph for an 8 symbol dot grid. It panics if
// dots is not 8 long.
func Encode(dots string, p Polarity) rune {
	if len(dots) != len(dotBits) {
		panic("glyph: dot grid must have 8 positions")
	}
	return FromPattern(p.Pattern(dots))
}

// FromPattern returns the Braille glyph for a raw dot pattern.
func FromPattern(pattern byte) rune {
	return Base + rune(pattern)
}
