package image1bit

import (
	"image"
	"image/color"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	tests := []struct {
		name string
		bit  Bit
		want uint32
	}{
		{"off", Off, 0x0000},
		{"on", On, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.bit.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, %x)",
					r, g, b, a, tt.want, tt.want, tt.want, uint32(0xFFFF))
			}
		})
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough", On, On},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
		{"light gray", color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BitModel.Convert(tt.input).(Bit)
			if result != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestNewVerticalLSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"128x64", Panel, false, 128, 1024},
		{"128x32", image.Rect(0, 0, 128, 32), false, 128, 512},
		{"8x8", image.Rect(0, 0, 8, 8), false, 8, 8},
		{"offset rect", image.Rect(10, 16, 14, 24), false, 4, 4},
		{"height not multiple of 8 panics", image.Rect(0, 0, 8, 12), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := NewVerticalLSB(tt.rect)
			if tt.wantPanic {
				return
			}
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestVerticalLSBPacking(t *testing.T) {
	img := NewVerticalLSB(Panel)

	img.SetBit(0, 0, On)
	img.SetBit(0, 7, On)
	img.SetBit(3, 9, On)
	img.SetBit(127, 63, On)

	if img.Pix[0] != 0x81 {
		t.Errorf("Pix[0] = 0x%02X, want 0x81", img.Pix[0])
	}
	// Page 1, column 3, bit 1
	if img.Pix[128+3] != 0x02 {
		t.Errorf("Pix[131] = 0x%02X, want 0x02", img.Pix[131])
	}
	if img.Pix[1023] != 0x80 {
		t.Errorf("Pix[1023] = 0x%02X, want 0x80", img.Pix[1023])
	}
}

func TestVerticalLSBSetGet(t *testing.T) {
	img := NewVerticalLSB(Panel)

	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x += 7 {
			img.SetBit(x, y, On)
			if !img.BitAt(x, y) {
				t.Fatalf("SetBit(%d, %d, On) then BitAt = Off", x, y)
			}
			img.ClearArea(x, y, 1, 1)
			if img.BitAt(x, y) {
				t.Fatalf("ClearArea(%d, %d, 1, 1) then BitAt = On", x, y)
			}
		}
	}
}

func TestVerticalLSBSetColor(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))

	img.Set(1, 1, color.White)
	if !img.BitAt(1, 1) {
		t.Error("Set(1, 1, color.White) then BitAt = Off")
	}
	if c, ok := img.At(1, 1).(Bit); !ok || c != On {
		t.Errorf("At(1, 1) = %v, want On", img.At(1, 1))
	}
	img.Set(1, 1, color.Black)
	if img.BitAt(1, 1) {
		t.Error("Set(1, 1, color.Black) then BitAt = On")
	}
}

func TestVerticalLSBOutOfBounds(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		img.SetBit(p.X, p.Y, On)
		if img.BitAt(p.X, p.Y) {
			t.Errorf("BitAt(%d, %d) = On outside bounds", p.X, p.Y)
		}
	}
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after out-of-bounds writes, want 0", i, b)
		}
	}
}

func TestVerticalLSBClearArea(t *testing.T) {
	img := NewVerticalLSB(Panel)
	img.Invert()

	// Straddles the left and top edges
	img.ClearArea(-4, -4, 10, 14)

	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			inside := x < 6 && y < 10
			if got := bool(img.BitAt(x, y)); got == inside {
				t.Fatalf("BitAt(%d, %d) = %v, want %v", x, y, got, !inside)
			}
		}
	}
}

func TestVerticalLSBInvertAreaTwice(t *testing.T) {
	img := NewVerticalLSB(Panel)
	for i := range img.Pix {
		img.Pix[i] = byte(i * 37)
	}
	want := append([]byte(nil), img.Pix...)

	img.InvertArea(5, 3, 40, 21)
	img.InvertArea(5, 3, 40, 21)

	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix[%d] = 0x%02X after double InvertArea, want 0x%02X", i, img.Pix[i], want[i])
		}
	}
}

func TestVerticalLSBInvertAreaScope(t *testing.T) {
	img := NewVerticalLSB(Panel)
	img.InvertArea(120, 60, 20, 20)

	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			inside := x >= 120 && y >= 60
			if got := bool(img.BitAt(x, y)); got != inside {
				t.Fatalf("BitAt(%d, %d) = %v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestVerticalLSBClearInvert(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 8))
	img.Invert()
	for i, b := range img.Pix {
		if b != 0xFF {
			t.Errorf("Pix[%d] = 0x%02X after Invert, want 0xFF", i, b)
		}
	}
	img.Clear()
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after Clear, want 0", i, b)
		}
	}
}

func TestVerticalLSBPage(t *testing.T) {
	img := NewVerticalLSB(Panel)
	img.SetBit(5, 17, On) // page 2, bit 1

	if n := img.Pages(); n != 8 {
		t.Fatalf("Pages() = %d, want 8", n)
	}
	page := img.Page(2)
	if len(page) != 128 {
		t.Fatalf("len(Page(2)) = %d, want 128", len(page))
	}
	if page[5] != 0x02 {
		t.Errorf("Page(2)[5] = 0x%02X, want 0x02", page[5])
	}
}

func TestVerticalLSBOffsetRect(t *testing.T) {
	img := NewVerticalLSB(image.Rect(100, 48, 104, 64))

	img.SetBit(100, 48, On)
	img.SetBit(103, 57, On)

	if img.Pix[0] != 0x01 {
		t.Errorf("Pix[0] = 0x%02X, want 0x01", img.Pix[0])
	}
	// Second page starts at Stride (4), column 3, bit 1
	if img.Pix[7] != 0x02 {
		t.Errorf("Pix[7] = 0x%02X, want 0x02", img.Pix[7])
	}
}

func TestVerticalLSBPixOffset(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 16))

	tests := []struct {
		x, y   int
		offset int
		mask   byte
	}{
		{0, 0, 0, 0x01},
		{0, 7, 0, 0x80},
		{3, 2, 3, 0x04},
		{0, 8, 8, 0x01},
		{7, 15, 15, 0x80},
	}

	for _, tt := range tests {
		offset, mask := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || mask != tt.mask {
			t.Errorf("pixOffset(%d, %d) = (%d, 0x%02X), want (%d, 0x%02X)",
				tt.x, tt.y, offset, mask, tt.offset, tt.mask)
		}
	}
}

func TestVerticalLSBOrByte(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 16))

	img.OrByte(1, 2, 0x0F)
	img.OrByte(1, 2, 0xF0)
	img.OrByte(-1, 0, 0xFF)
	img.OrByte(2, 0, 0xFF)
	img.OrByte(0, 4, 0xFF)
	img.OrByte(0, -1, 0xFF)

	for i, b := range img.Pix {
		want := byte(0)
		if i == 4+2 {
			want = 0xFF
		}
		if b != want {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, b, want)
		}
	}
}
