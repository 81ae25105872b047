// Package glyph maps characters to 7-segment patterns.
package glyph

// positions of segments
const (
	SegTop     = 0
	SegTopR    = 1
	SegBotR    = 2
	SegBot     = 3
	SegBotL    = 4
	SegTopL    = 5
	SegMid     = 6
	SegDecimal = 7
)

// NumSegments is the number of segment lines, decimal point included
const NumSegments = 8

// Pattern is the on/off state of each segment, indexed by the Seg* constants
type Pattern [NumSegments]bool

// Blank has every segment off
var Blank = Pattern{}

// Fallback is shown for anything we can't draw, just the underscore
var Fallback = Pattern{SegBot: true}

func p(bits ...int) Pattern {
	var pat Pattern
	for i, b := range bits {
		pat[i] = b == 1
	}
	return pat
}

var digitSegments = [10]Pattern{
	p(1, 1, 1, 1, 1, 1, 0, 0), // 0
	p(0, 1, 1, 0, 0, 0, 0, 0), // 1
	p(1, 1, 0, 1, 1, 0, 1, 0), // 2
	p(1, 1, 1, 1, 0, 0, 1, 0), // 3
	p(0, 1, 1, 0, 0, 1, 1, 0), // 4
	p(1, 0, 1, 1, 0, 1, 1, 0), // 5
	p(1, 0, 1, 1, 1, 1, 1, 0), // 6
	p(1, 1, 1, 0, 0, 0, 0, 0), // 7
	p(1, 1, 1, 1, 1, 1, 1, 0), // 8
	p(1, 1, 1, 1, 0, 1, 1, 0), // 9
}

// one table for both cases, the comment shows which case it looks like
var letterSegments = [26]Pattern{
	p(1, 0, 1, 0, 1, 1, 1, 0), // A
	p(0, 0, 1, 1, 1, 1, 1, 0), // b
	p(1, 0, 0, 1, 1, 1, 0, 0), // C
	p(0, 1, 1, 1, 1, 0, 1, 0), // d
	p(1, 1, 0, 1, 1, 1, 1, 0), // e
	p(1, 0, 0, 0, 1, 1, 1, 0), // F
	p(1, 1, 1, 1, 0, 1, 1, 0), // g
	p(0, 1, 1, 0, 1, 1, 1, 0), // H
	p(0, 0, 0, 0, 1, 1, 0, 0), // I
	p(0, 1, 1, 1, 1, 0, 0, 0), // J
	p(1, 0, 1, 0, 1, 1, 1, 0), // k
	p(0, 0, 0, 1, 1, 1, 0, 0), // L
	p(1, 0, 1, 0, 1, 0, 0, 0), // m
	p(1, 1, 1, 0, 1, 1, 0, 0), // n
	p(0, 0, 1, 1, 1, 0, 1, 0), // o
	p(1, 1, 0, 0, 1, 1, 1, 0), // p
	p(1, 1, 1, 0, 0, 1, 1, 1), // q
	p(1, 1, 0, 0, 1, 1, 0, 0), // r
	p(1, 0, 1, 1, 0, 1, 1, 0), // S
	p(0, 0, 0, 1, 1, 1, 1, 0), // t
	p(0, 0, 1, 1, 1, 0, 0, 1), // u
	p(0, 0, 1, 1, 1, 0, 0, 0), // v
	p(0, 1, 0, 1, 0, 1, 0, 0), // w
	p(0, 1, 1, 0, 1, 1, 1, 0), // X
	p(0, 1, 1, 1, 0, 1, 1, 0), // y
	p(1, 1, 0, 1, 1, 0, 1, 0), // Z
}

// Lookup returns the pattern for r. Digits and letters (either case) have
// their own pattern, everything else gets Fallback.
func Lookup(r rune) Pattern {
	switch {
	case r >= '0' && r <= '9':
		return digitSegments[r-'0']
	case r >= 'a' && r <= 'z':
		return letterSegments[r-'a']
	case r >= 'A' && r <= 'Z':
		return letterSegments[r-'A']
	}
	return Fallback
}

// Supported reports whether r has a pattern of its own
func Supported(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
