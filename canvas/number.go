package canvas

import (
	"math"

	"github.com/flavioheleno/ssd1306/font"
)

// pow returns x raised to y with uint32 wraparound.
func pow(x, y uint32) uint32 {
	result := uint32(1)
	for ; y > 0; y-- {
		result *= x
	}
	return result
}

// digit returns the digit of n at place, counted from the least significant one.
// Places past the range of uint32 read as 0.
func digit(n, base uint32, place int) byte {
	p := pow(base, uint32(place))
	if p == 0 {
		return 0
	}
	return byte(n / p % base)
}

const hexDigits = "0123456789ABCDEF"

func (c *Canvas) showDigits(x, y int, n, base uint32, length int, size font.Size) {
	for i := 0; i < length; i++ {
		d := digit(n, base, length-i-1)
		c.ShowChar(x+i*size.Width(), y, hexDigits[d], size)
	}
}

// ShowNum draws n in decimal as exactly length digits: zero-padded on the left,
// truncated to the low digits when n is longer.
func (c *Canvas) ShowNum(x, y int, n uint32, length int, size font.Size) {
	c.showDigits(x, y, n, 10, length, size)
}

// ShowSignedNum draws a '+' or '-' sign followed by length decimal digits of |n|.
// math.MinInt32 has no positive counterpart and draws as 2147483648.
func (c *Canvas) ShowSignedNum(x, y int, n int32, length int, size font.Size) {
	var abs uint32
	if n >= 0 {
		c.ShowChar(x, y, '+', size)
		abs = uint32(n)
	} else {
		c.ShowChar(x, y, '-', size)
		abs = uint32(-n)
	}
	c.ShowNum(x+size.Width(), y, abs, length, size)
}

// ShowHexNum draws n as length uppercase hexadecimal digits.
func (c *Canvas) ShowHexNum(x, y int, n uint32, length int, size font.Size) {
	c.showDigits(x, y, n, 16, length, size)
}

// ShowBinNum draws n as length binary digits.
func (c *Canvas) ShowBinNum(x, y int, n uint32, length int, size font.Size) {
	c.showDigits(x, y, n, 2, length, size)
}

// ShowFloatNum draws f as a sign, intLength integer digits, a '.', and fraLength
// fraction digits.
//
// The fraction is rounded half away from zero to fraLength digits. A fraction that
// rounds up to a whole unit carries into the integer part and prints as zeros.
func (c *Canvas) ShowFloatNum(x, y int, f float64, intLength, fraLength int, size font.Size) {
	if f >= 0 {
		c.ShowChar(x, y, '+', size)
	} else {
		c.ShowChar(x, y, '-', size)
		f = -f
	}

	intNum := uint32(f)
	f -= float64(intNum)
	scale := pow(10, uint32(fraLength))
	fraNum := uint32(math.Round(f * float64(scale)))
	if scale != 0 {
		intNum += fraNum / scale
	}

	w := size.Width()
	c.ShowNum(x+w, y, intNum, intLength, size)
	c.ShowChar(x+(intLength+1)*w, y, '.', size)
	c.ShowNum(x+(intLength+2)*w, y, fraNum, fraLength, size)
}
