// Package image1bit provides a 1-bit monochrome image format optimized for the SSD1306 display.
//
// The SSD1306 stores pixels in vertical bytes: each byte covers 8 rows of one column, least
// significant bit on top. This package provides the Bit color type and VerticalLSB image
// implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Panel is the bounds of the 128x64 SSD1306 panel.
var Panel = image.Rect(0, 0, 128, 64)

// Bit represents a monochrome pixel: On is lit, Off is dark.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA converts the Bit to standard RGBA (white when on, black when off).
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as the grayscale conversion, thresholded at half scale
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where each byte holds 8 vertically stacked pixels.
// Pages of 8 rows follow each other; bit 0 of a byte is the top pixel of its page.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per page, equal to the width
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8 (one page per 8 rows).
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit at (x, y). Points outside the bounds read as Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit at (x, y). Points outside the bounds are dropped.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Clear turns every pixel off.
func (p *VerticalLSB) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

// ClearArea turns off every pixel of the width x height rectangle at (x, y).
// Parts of the rectangle outside the bounds are skipped.
func (p *VerticalLSB) ClearArea(x, y, width, height int) {
	p.eachInArea(x, y, width, height, func(offset int, mask byte) {
		p.Pix[offset] &^= mask
	})
}

// Invert flips every pixel.
func (p *VerticalLSB) Invert() {
	for i := range p.Pix {
		p.Pix[i] ^= 0xFF
	}
}

// InvertArea flips every pixel of the width x height rectangle at (x, y).
// Parts of the rectangle outside the bounds are skipped.
func (p *VerticalLSB) InvertArea(x, y, width, height int) {
	p.eachInArea(x, y, width, height, func(offset int, mask byte) {
		p.Pix[offset] ^= mask
	})
}

// Pages returns the number of 8-row pages.
func (p *VerticalLSB) Pages() int {
	return p.Rect.Dy() / 8
}

// Page returns the bytes of page n, one per column. The slice aliases Pix.
func (p *VerticalLSB) Page(n int) []byte {
	return p.Pix[n*p.Stride : (n+1)*p.Stride]
}

// OrByte merges bits into the byte at page and column, both counted from the image origin.
// Bit 0 of bits lands on the top row of the page. Out-of-range positions are dropped.
func (p *VerticalLSB) OrByte(page, column int, bits byte) {
	if page < 0 || page >= p.Pages() || column < 0 || column >= p.Stride {
		return
	}
	p.Pix[page*p.Stride+column] |= bits
}

// eachInArea calls fn with the byte offset and bit mask of every in-bounds pixel of the area.
func (p *VerticalLSB) eachInArea(x, y, width, height int, fn func(offset int, mask byte)) {
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			if !(image.Point{X: i, Y: j}.In(p.Rect)) {
				continue
			}
			fn(p.pixOffset(i, j))
		}
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: byte = page*Stride + column, bit = row within the page.
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	dy := y - p.Rect.Min.Y
	offset = (dy/8)*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(dy%8)
	return
}
