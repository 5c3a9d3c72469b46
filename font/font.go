// Package font holds the glyph tables and text decoding used to draw text on a page-packed
// monochrome framebuffer.
//
// Glyph bitmaps are stored band by band: byte j*width+i holds rows [8j, 8j+8) of column i,
// bit 0 on top. Two fixed-width ASCII sizes are available (6x8 and 8x16); characters
// encoded on more than one byte are looked up in a Table of 16x16 glyphs.
package font

// Size selects an ASCII font. Its value is the advance width in pixels.
type Size int

const (
	Size8x16 Size = 8 // 8 pixels wide, 16 pixels high
	Size6x8  Size = 6 // 6 pixels wide, 8 pixels high
)

// Width returns the glyph width in pixels.
func (s Size) Width() int {
	return int(s)
}

// Height returns the glyph height in pixels.
func (s Size) Height() int {
	if s == Size8x16 {
		return 16
	}
	return 8
}

func (s Size) String() string {
	switch s {
	case Size8x16:
		return "8x16"
	case Size6x8:
		return "6x8"
	}
	return "unknown"
}

// Wide is the width and height of a multi-byte glyph.
const Wide = 16

// Printable reports whether c has a glyph in the ASCII tables.
func Printable(c byte) bool {
	return c >= ' ' && c <= '~'
}

// ASCII returns the glyph of c at size s, or nil if s is not a known size.
// Codes outside the printable range return the '?' glyph.
func ASCII(c byte, s Size) []byte {
	if !Printable(c) {
		c = '?'
	}
	switch s {
	case Size8x16:
		return ascii8x16[c-' '][:]
	case Size6x8:
		return ascii6x8[c-' '][:]
	}
	return nil
}
