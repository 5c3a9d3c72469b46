package canvas

import (
	"fmt"

	"github.com/flavioheleno/ssd1306/font"
)

// ShowChar draws the ASCII character ch with its top-left corner at (x, y).
// Characters outside ' '..'~' draw as '?'. An unknown size draws nothing.
func (c *Canvas) ShowChar(x, y int, ch byte, size font.Size) {
	glyph := font.ASCII(ch, size)
	if glyph == nil {
		return
	}
	c.ShowImage(x, y, size.Width(), size.Height(), glyph)
}

// ShowString draws s starting at (x, y), decoding it with the Canvas charset.
//
// Single-byte characters draw with ShowChar and advance by the font width.
// Multi-byte characters draw their 16x16 glyph and advance 16 columns at Size8x16;
// at Size6x8 they draw '?' and advance 6 columns. Bytes that cannot start a
// character are skipped, and a character cut short by the end of s stops drawing.
func (c *Canvas) ShowString(x, y int, s string, size font.Size) {
	for len(s) > 0 {
		n, ok := c.charset.Next(s)
		if n == 0 {
			s = s[1:]
			continue
		}
		if !ok {
			return
		}
		ch := s[:n]
		s = s[n:]

		if n == 1 {
			c.ShowChar(x, y, ch[0], size)
			x += size.Width()
			continue
		}
		switch size {
		case font.Size8x16:
			glyph, _ := c.glyphs.Lookup(ch)
			c.ShowImage(x, y, font.Wide, font.Wide, glyph)
			x += font.Wide
		case font.Size6x8:
			c.ShowChar(x, y, '?', size)
			x += size.Width()
		}
	}
}

// Printf formats according to format and draws the result with ShowString.
// The formatted text is converted to the Canvas charset first.
func (c *Canvas) Printf(x, y int, size font.Size, format string, a ...any) {
	c.ShowString(x, y, c.charset.Encode(fmt.Sprintf(format, a...)), size)
}
