package font

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ascii8x16 is indexed by code - ' '. Glyphs are rasterized from the basicfont 7x13 face:
// 8 columns for the upper band followed by 8 columns for the lower band.
var ascii8x16 = func() (t [95][16]byte) {
	for c := byte(' '); c <= '~'; c++ {
		copy(t[c-' '][:], rasterize(string(rune(c)), 8, 16, 1))
	}
	return t
}()

// baseline is the row the 7x13 face sits on inside a 16 pixel high cell, leaving the
// 2 descender rows above the bottom edge.
const baseline = 13

// rasterize draws s with the basicfont 7x13 face into a width x height cell, starting at
// column dotX, and packs the result band by band.
func rasterize(s string, width, height, dotX int) []byte {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(dotX, baseline),
	}
	d.DrawString(s)

	out := make([]byte, width*((height+7)/8))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if dst.AlphaAt(x, y).A >= 0x80 {
				out[(y/8)*width+x] |= 1 << uint(y%8)
			}
		}
	}
	return out
}

// pattern packs a 16x16 picture given as rows of '#' (on) and any other byte (off).
func pattern(rows ...string) (b [32]byte) {
	for y, row := range rows {
		for x := 0; x < len(row) && x < Wide; x++ {
			if row[x] == '#' {
				b[(y/8)*Wide+x] |= 1 << uint(y%8)
			}
		}
	}
	return b
}
