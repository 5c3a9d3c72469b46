package canvas

// ShowImage copies a width x height bitmap to (x, y).
//
// The bitmap is page-packed like the framebuffer: (height+7)/8 bands of width bytes,
// bit 0 of each byte on top. The destination rectangle is cleared first and the bitmap
// is ORed in, so bits past height in the last band still land below the rectangle.
// Drawing stops early when bitmap is shorter than the layout requires.
func (c *Canvas) ShowImage(x, y, width, height int, bitmap []byte) {
	c.fb.ClearArea(x, y, width, height)
	if width <= 0 || height <= 0 {
		return
	}

	// Floor division keeps negative rows on the right page
	rx, ry := x-c.fb.Rect.Min.X, y-c.fb.Rect.Min.Y
	page, shift := ry>>3, uint(ry&7)
	bands := (height + 7) / 8

	for j := 0; j < bands; j++ {
		for i := 0; i < width; i++ {
			k := j*width + i
			if k >= len(bitmap) {
				return
			}
			b := bitmap[k]
			c.fb.OrByte(page+j, rx+i, b<<shift)
			if shift != 0 {
				c.fb.OrByte(page+j+1, rx+i, b>>(8-shift))
			}
		}
	}
}
