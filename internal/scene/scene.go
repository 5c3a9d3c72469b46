// Package scene draws the demonstration frames shared by the example programs.
package scene

import (
	"github.com/flavioheleno/ssd1306/canvas"
	"github.com/flavioheleno/ssd1306/font"
)

// BandHeight is the number of rows Band flips.
const BandHeight = 16

// Diode is a 16x16 diode symbol, page-packed for canvas.ShowImage.
var Diode = pack(16,
	"................",
	"..........#.....",
	"..#.......#.....",
	"..##......#.....",
	"..#.#.....#.....",
	"..#..#....#.....",
	"..#...#...#.....",
	"###....#..######",
	"###....#..######",
	"..#...#...#.....",
	"..#..#....#.....",
	"..#.#.....#.....",
	"..##......#.....",
	"..#.......#.....",
	"..........#.....",
	"................",
)

// pack converts rows of '#' and '.' into page-packed bytes, bit 0 on top.
func pack(width int, rows ...string) []byte {
	out := make([]byte, width*((len(rows)+7)/8))
	for y, row := range rows {
		for x := 0; x < width && x < len(row); x++ {
			if row[x] == '#' {
				out[(y/8)*width+x] |= 1 << uint(y%8)
			}
		}
	}
	return out
}

// Text draws characters, strings and every number format.
func Text(c *canvas.Canvas) {
	c.Clear()

	c.ShowChar(0, 0, 'A', font.Size8x16)
	c.ShowString(16, 0, "Hello World!", font.Size8x16)

	c.ShowChar(0, 18, 'A', font.Size6x8)
	c.ShowString(16, 18, "Hello World!", font.Size6x8)
	c.Printf(96, 18, font.Size6x8, "[%02d]", 6)

	c.ShowNum(0, 28, 12345, 5, font.Size6x8)
	c.ShowSignedNum(40, 28, -66, 2, font.Size6x8)
	c.ShowHexNum(70, 28, 0xA5A5, 4, font.Size6x8)
	c.ShowBinNum(0, 38, 0xA5, 8, font.Size6x8)
	c.ShowFloatNum(60, 38, 123.45, 3, 2, font.Size6x8)

	c.ShowString(0, 48, c.Charset().Encode("Hello,世界。"), font.Size8x16)
	c.ShowImage(96, 48, 16, 16, Diode)
}

// Shapes draws points, lines and every outlined and filled shape.
func Shapes(c *canvas.Canvas) {
	c.Clear()

	c.DrawPoint(5, 8)
	if c.GetPoint(5, 8) {
		c.ShowString(10, 4, "YES", font.Size6x8)
	} else {
		c.ShowString(10, 4, "NO ", font.Size6x8)
	}

	c.DrawLine(40, 0, 127, 15)
	c.DrawLine(40, 15, 127, 0)

	c.DrawRectangle(0, 20, 12, 15, canvas.Outline)
	c.DrawRectangle(0, 40, 12, 15, canvas.Filled)

	c.DrawTriangle(20, 20, 40, 25, 30, 35, canvas.Outline)
	c.DrawTriangle(20, 40, 40, 45, 30, 55, canvas.Filled)

	c.DrawCircle(55, 27, 8, canvas.Outline)
	c.DrawCircle(55, 47, 8, canvas.Filled)

	c.DrawEllipse(82, 27, 12, 8, canvas.Outline)
	c.DrawEllipse(82, 47, 12, 8, canvas.Filled)

	c.DrawArc(110, 18, 15, 25, 125, canvas.Outline)
	c.DrawArc(110, 38, 15, 25, 125, canvas.Filled)
}

// Bands returns the number of bands Band walks on the canvas.
func Bands(c *canvas.Canvas) int {
	return (c.Buffer().Rect.Dy() + BandHeight - 1) / BandHeight
}

// Band flips the i-th band of the canvas across its full width. Calling it twice
// restores the band.
func Band(c *canvas.Canvas, i int) {
	r := c.Buffer().Rect
	c.ReverseArea(r.Min.X, r.Min.Y+i*BandHeight, r.Dx(), BandHeight)
}
