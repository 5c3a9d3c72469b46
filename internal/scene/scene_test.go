package scene

import (
	"image"
	"testing"

	"github.com/flavioheleno/ssd1306/canvas"
	"github.com/flavioheleno/ssd1306/font"
	"github.com/flavioheleno/ssd1306/image1bit"
)

// sameRegion compares the pixels of got and want inside r.
func sameRegion(t *testing.T, got, want *canvas.Canvas, r image.Rectangle) {
	t.Helper()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if got.GetPoint(x, y) != want.GetPoint(x, y) {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got.GetPoint(x, y), want.GetPoint(x, y))
			}
		}
	}
}

func litCount(c *canvas.Canvas) int {
	n := 0
	for _, b := range c.Buffer().Pix {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

func TestDiode(t *testing.T) {
	if len(Diode) != 32 {
		t.Fatalf("len(Diode) = %d, want 32", len(Diode))
	}
	c := canvas.New(nil, nil)
	c.ShowImage(0, 0, 16, 16, Diode)
	// Lead wires on row 7 and 8, cathode bar on column 10
	for _, p := range []image.Point{{0, 7}, {1, 8}, {15, 7}, {10, 1}, {10, 14}, {2, 2}} {
		if !c.GetPoint(p.X, p.Y) {
			t.Errorf("pixel %v is off", p)
		}
	}
	for _, p := range []image.Point{{0, 0}, {5, 2}, {15, 15}} {
		if c.GetPoint(p.X, p.Y) {
			t.Errorf("pixel %v is on", p)
		}
	}
}

func TestText(t *testing.T) {
	got := canvas.New(nil, nil)
	Text(got)

	want := canvas.New(nil, nil)
	want.ShowString(96, 18, "[06]", font.Size6x8)
	sameRegion(t, got, want, image.Rect(96, 18, 120, 26))

	want.ShowFloatNum(60, 38, 123.45, 3, 2, font.Size6x8)
	sameRegion(t, got, want, image.Rect(60, 38, 102, 46))

	want.ShowImage(96, 48, 16, 16, Diode)
	sameRegion(t, got, want, image.Rect(96, 48, 112, 64))
}

func TestShapes(t *testing.T) {
	got := canvas.New(nil, nil)
	Shapes(got)

	want := canvas.New(nil, nil)
	want.ShowString(10, 4, "YES", font.Size6x8)
	sameRegion(t, got, want, image.Rect(10, 4, 28, 12))

	if !got.GetPoint(5, 8) {
		t.Error("point (5, 8) is off")
	}
	for _, p := range []image.Point{{55, 47}, {82, 47}, {6, 47}} {
		if !got.GetPoint(p.X, p.Y) {
			t.Errorf("filled shape pixel %v is off", p)
		}
	}
	for _, p := range []image.Point{{55, 27}, {82, 27}, {6, 27}} {
		if got.GetPoint(p.X, p.Y) {
			t.Errorf("outline shape center %v is on", p)
		}
	}
}

func TestScenesDeterministic(t *testing.T) {
	for name, draw := range map[string]func(*canvas.Canvas){"Text": Text, "Shapes": Shapes} {
		a, b := canvas.New(nil, nil), canvas.New(nil, nil)
		draw(a)
		b.Reverse()
		draw(b)
		if string(a.Buffer().Pix) != string(b.Buffer().Pix) {
			t.Errorf("%s depends on the previous frame", name)
		}
		if litCount(a) == 0 {
			t.Errorf("%s drew nothing", name)
		}
	}
}

func TestBand(t *testing.T) {
	c := canvas.New(nil, nil)
	Shapes(c)
	before := canvas.New(nil, nil)
	Shapes(before)

	if n := Bands(c); n != 4 {
		t.Fatalf("Bands() = %d, want 4", n)
	}
	for i := 0; i < Bands(c); i++ {
		Band(c, i)
		for y := 0; y < 64; y++ {
			inside := y >= i*BandHeight && y < (i+1)*BandHeight
			if got := c.GetPoint(3, y) != before.GetPoint(3, y); got != inside {
				t.Fatalf("band %d: row %d flipped = %v, want %v", i, y, got, inside)
			}
		}
		Band(c, i)
	}
	sameRegion(t, c, before, image1bit.Panel)
}

func TestBandNarrowPanel(t *testing.T) {
	c := canvas.New(image1bit.NewVerticalLSB(image.Rect(0, 0, 96, 32)), nil)
	if n := Bands(c); n != 2 {
		t.Fatalf("Bands() = %d, want 2", n)
	}

	Band(c, 1)
	for _, p := range []image.Point{{0, 16}, {95, 16}, {95, 31}} {
		if !c.GetPoint(p.X, p.Y) {
			t.Errorf("pixel %v is off", p)
		}
	}
	if c.GetPoint(95, 15) {
		t.Error("pixel (95, 15) above the band is on")
	}
}
