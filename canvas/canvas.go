// Package canvas draws text, numbers, bitmaps and shapes into a 1-bit page-packed
// framebuffer.
//
// A Canvas never talks to the panel. Drawing only changes the framebuffer; push it
// with ssd1306.Dev.Update or UpdateArea once a frame is complete.
//
// Coordinates are signed. Anything falling outside the framebuffer is clipped one
// pixel at a time, so shapes may extend past the panel edges.
package canvas

import (
	"github.com/flavioheleno/ssd1306/font"
	"github.com/flavioheleno/ssd1306/image1bit"
)

// Fill selects between outlined and filled shapes.
type Fill bool

const (
	Outline Fill = false
	Filled  Fill = true
)

// Opts configures a Canvas.
type Opts struct {
	// Charset decodes multi-byte characters in ShowString. Defaults to font.UTF8.
	Charset font.Charset
	// Glyphs holds the 16x16 glyphs for multi-byte characters, keyed for Charset.
	// Defaults to font.DefaultTable(Charset).
	Glyphs *font.Table
}

// Canvas draws into a framebuffer.
type Canvas struct {
	fb      *image1bit.VerticalLSB
	charset font.Charset
	glyphs  *font.Table
}

// New returns a Canvas drawing into fb. A nil fb allocates a blank 128x64 framebuffer.
// A nil opts uses the defaults.
func New(fb *image1bit.VerticalLSB, opts *Opts) *Canvas {
	if fb == nil {
		fb = image1bit.NewVerticalLSB(image1bit.Panel)
	}
	c := &Canvas{fb: fb, charset: font.UTF8}
	if opts != nil {
		if opts.Charset != nil {
			c.charset = opts.Charset
		}
		c.glyphs = opts.Glyphs
	}
	if c.glyphs == nil {
		c.glyphs = font.DefaultTable(c.charset)
	}
	return c
}

// Buffer returns the framebuffer the Canvas draws into.
func (c *Canvas) Buffer() *image1bit.VerticalLSB {
	return c.fb
}

// Charset returns the charset used to decode strings.
func (c *Canvas) Charset() font.Charset {
	return c.charset
}

// Clear turns every pixel off.
func (c *Canvas) Clear() {
	c.fb.Clear()
}

// ClearArea turns off every pixel of the width x height rectangle at (x, y).
func (c *Canvas) ClearArea(x, y, width, height int) {
	c.fb.ClearArea(x, y, width, height)
}

// Reverse flips every pixel.
func (c *Canvas) Reverse() {
	c.fb.Invert()
}

// ReverseArea flips every pixel of the width x height rectangle at (x, y).
func (c *Canvas) ReverseArea(x, y, width, height int) {
	c.fb.InvertArea(x, y, width, height)
}

// DrawPoint turns on the pixel at (x, y).
func (c *Canvas) DrawPoint(x, y int) {
	c.fb.SetBit(x, y, image1bit.On)
}

// GetPoint reports whether the pixel at (x, y) is on. Points outside the framebuffer
// read as off.
func (c *Canvas) GetPoint(x, y int) bool {
	return bool(c.fb.BitAt(x, y))
}
