// Package preview renders a monochrome framebuffer as text, two pixel rows per
// character cell, so frames can be checked on a terminal without a panel attached.
package preview

import (
	"bufio"
	"image"
	"io"
	"strings"

	"github.com/flavioheleno/ssd1306/image1bit"
	"golang.org/x/term"
)

// Opts configures the rendering.
type Opts struct {
	Border bool // Frame the panel with box drawing characters
	Invert bool // Draw lit pixels blank and dark pixels filled
}

// cells maps (top, bottom) pixel pairs to block characters.
var cells = [2][2]string{
	{" ", "▄"},
	{"▀", "█"},
}

// home moves the cursor to the top-left corner of the terminal.
const home = "\x1b[H"

// Size returns the number of terminal columns and rows needed to render bounds.
func Size(bounds image.Rectangle, opts *Opts) (cols, rows int) {
	cols, rows = bounds.Dx(), (bounds.Dy()+1)/2
	if opts != nil && opts.Border {
		cols += 2
		rows += 2
	}
	return cols, rows
}

// TerminalFits reports whether the terminal on fd is large enough to render bounds.
// It returns false when fd is not a terminal.
func TerminalFits(fd int, bounds image.Rectangle, opts *Opts) bool {
	if !term.IsTerminal(fd) {
		return false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return false
	}
	cols, rows := Size(bounds, opts)
	return w >= cols && h >= rows
}

// WriteText writes img to w, one line per pair of pixel rows. opts may be nil.
func WriteText(w io.Writer, img image.Image, opts *Opts) error {
	if opts == nil {
		opts = &Opts{}
	}
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	if opts.Border {
		bw.WriteString("┌" + strings.Repeat("─", b.Dx()) + "┐\n")
	}
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if opts.Border {
			bw.WriteString("│")
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := lit(img, x, y) != opts.Invert
			bottom := false
			if y+1 < b.Max.Y {
				bottom = lit(img, x, y+1) != opts.Invert
			} else {
				bottom = opts.Invert
			}
			bw.WriteString(cells[index(top)][index(bottom)])
		}
		if opts.Border {
			bw.WriteString("│")
		}
		bw.WriteByte('\n')
	}
	if opts.Border {
		bw.WriteString("└" + strings.Repeat("─", b.Dx()) + "┘\n")
	}
	return bw.Flush()
}

// Frame writes img like WriteText after moving the cursor home, so successive frames
// overwrite each other in place.
func Frame(w io.Writer, img image.Image, opts *Opts) error {
	if _, err := io.WriteString(w, home); err != nil {
		return err
	}
	return WriteText(w, img, opts)
}

func lit(img image.Image, x, y int) bool {
	if fb, ok := img.(*image1bit.VerticalLSB); ok {
		return bool(fb.BitAt(x, y))
	}
	return bool(image1bit.BitModel.Convert(img.At(x, y)).(image1bit.Bit))
}

func index(b bool) int {
	if b {
		return 1
	}
	return 0
}
