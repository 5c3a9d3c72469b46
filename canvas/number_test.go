package canvas

import (
	"math"
	"testing"

	"github.com/flavioheleno/ssd1306/font"
)

func TestPow(t *testing.T) {
	tests := []struct {
		x, y, want uint32
	}{
		{10, 0, 1},
		{10, 3, 1000},
		{2, 31, 1 << 31},
		{2, 32, 0},
		{16, 8, 0},
	}

	for _, tt := range tests {
		if got := pow(tt.x, tt.y); got != tt.want {
			t.Errorf("pow(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestShowNumbers(t *testing.T) {
	tests := []struct {
		name string
		draw func(c *Canvas)
		want string
	}{
		{"five digits", func(c *Canvas) { c.ShowNum(0, 0, 12345, 5, font.Size6x8) }, "12345"},
		{"padded", func(c *Canvas) { c.ShowNum(0, 0, 7, 3, font.Size6x8) }, "007"},
		{"truncated", func(c *Canvas) { c.ShowNum(0, 0, 12345, 3, font.Size6x8) }, "345"},
		{"max", func(c *Canvas) { c.ShowNum(0, 0, math.MaxUint32, 10, font.Size6x8) }, "4294967295"},
		{"zero length", func(c *Canvas) { c.ShowNum(0, 0, 42, 0, font.Size6x8) }, ""},
		{"positive", func(c *Canvas) { c.ShowSignedNum(0, 0, 42, 3, font.Size6x8) }, "+042"},
		{"negative", func(c *Canvas) { c.ShowSignedNum(0, 0, -42, 3, font.Size6x8) }, "-042"},
		{"signed minus 66", func(c *Canvas) { c.ShowSignedNum(0, 0, -66, 2, font.Size6x8) }, "-66"},
		{"signed plus 66", func(c *Canvas) { c.ShowSignedNum(0, 0, 66, 2, font.Size6x8) }, "+66"},
		{"min int32", func(c *Canvas) { c.ShowSignedNum(0, 0, math.MinInt32, 10, font.Size6x8) }, "-2147483648"},
		{"hex", func(c *Canvas) { c.ShowHexNum(0, 0, 0xBEEF, 4, font.Size6x8) }, "BEEF"},
		{"hex A5A5", func(c *Canvas) { c.ShowHexNum(0, 0, 0xA5A5, 4, font.Size6x8) }, "A5A5"},
		{"hex past 32 bits", func(c *Canvas) { c.ShowHexNum(0, 0, 0xBEEF, 9, font.Size6x8) }, "00000BEEF"},
		{"binary", func(c *Canvas) { c.ShowBinNum(0, 0, 5, 4, font.Size6x8) }, "0101"},
		{"binary A5", func(c *Canvas) { c.ShowBinNum(0, 0, 0xA5, 8, font.Size6x8) }, "10100101"},
		{"float", func(c *Canvas) { c.ShowFloatNum(0, 0, 123.45, 3, 2, font.Size6x8) }, "+123.45"},
		{"float carry", func(c *Canvas) { c.ShowFloatNum(0, 0, 1.995, 1, 2, font.Size6x8) }, "+2.00"},
		{"float carry widens", func(c *Canvas) { c.ShowFloatNum(0, 0, 9.9999, 2, 2, font.Size6x8) }, "+10.00"},
		{"float negative", func(c *Canvas) { c.ShowFloatNum(0, 0, -0.5, 1, 1, font.Size6x8) }, "-0.5"},
		{"float no fraction", func(c *Canvas) { c.ShowFloatNum(0, 0, 3.7, 1, 0, font.Size6x8) }, "+4."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil, nil)
			tt.draw(c)
			assertSameBuffer(t, c, charsAt(0, 0, tt.want, font.Size6x8))
		})
	}
}

func TestShowNumLargeFont(t *testing.T) {
	c := New(nil, nil)
	c.ShowFloatNum(4, 8, 12.5, 2, 1, font.Size8x16)
	assertSameBuffer(t, c, charsAt(4, 8, "+12.5", font.Size8x16))
}
