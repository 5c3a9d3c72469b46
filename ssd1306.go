package ssd1306

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"
	"time"

	"github.com/flavioheleno/ssd1306/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var (
	// ErrHalted is returned by every call made after Halt.
	ErrHalted = errors.New("ssd1306: halted")
	// ErrInvalidSize is returned when a frame does not match the panel size.
	ErrInvalidSize = errors.New("ssd1306: invalid buffer size")
)

// DefaultAddr is the 7-bit I²C address of most SSD1306 modules (0x78 as a write address).
const DefaultAddr = 0x3C

// I²C control bytes selecting the meaning of the bytes that follow.
const (
	i2cCommand = 0x00
	i2cData    = 0x40
)

// debug traces every command and data burst through the standard logger.
var debug = os.Getenv("SSD1306_DEBUG") != ""

var _ display.Drawer = (*Dev)(nil)

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, at most 128)
	H int // Height (default: 64, a multiple of 8, at most 64)

	Rotated    bool   // 180° rotation
	Sequential bool   // Sequential COM pin configuration, used by most 128x32 modules
	Addr       uint16 // I²C address (default: DefaultAddr), ignored over SPI

	// Optional hardware reset pin
	RST gpio.PinIO
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	c   conn.Conn
	dc  gpio.PinOut // nil over I²C
	rst gpio.PinIO

	rect  image.Rectangle
	pages int

	// buffer mirrors the panel RAM; next is scratch space for Draw
	buffer []byte
	next   *image1bit.VerticalLSB

	halted bool
}

// NewI2C creates a new SSD1306 device connected via I²C.
//
// Commands are sent one per transaction behind a 0x00 control byte, pixel data behind a
// 0x40 control byte. opts can be nil to use defaults (128x64 display at DefaultAddr).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	opts, err := validate(opts)
	if err != nil {
		return nil, err
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	return newDev(&i2c.Dev{Bus: b, Addr: addr}, nil, opts)
}

// NewSPI creates a new SSD1306 device connected via 4-wire SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use defaults (128x64 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ssd1306: dc pin is required over SPI")
	}
	opts, err := validate(opts)
	if err != nil {
		return nil, err
	}
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	return newDev(c, dc, opts)
}

func validate(opts *Opts) (*Opts, error) {
	if opts == nil {
		return &Opts{W: 128, H: 64}, nil
	}
	if opts.W <= 0 || opts.W > 128 {
		return nil, errors.New("ssd1306: width must be between 1 and 128")
	}
	if opts.H <= 0 || opts.H > 64 || opts.H%8 != 0 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
	}
	return opts, nil
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	d := &Dev{
		c:      c,
		dc:     dc,
		rst:    opts.RST,
		rect:   image.Rect(0, 0, opts.W, opts.H),
		pages:  opts.H / 8,
		buffer: make([]byte, opts.W*opts.H/8),
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence, then blanks the panel RAM.
func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	segRemap, comScan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		segRemap, comScan = 0xA0, 0xC0
	}
	comPins := byte(0x12)
	if opts.Sequential {
		comPins = 0x02
	}

	cmds := []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, byte(opts.H - 1), // Multiplex ratio
		0xD3, 0x00, // Display offset
		0x40,     // Start line 0
		segRemap, // Segment remap
		comScan,  // COM output scan direction
		0xDA, comPins, // COM pins hardware configuration
		0x81, 0xCF, // Contrast
		0xD9, 0xF1, // Pre-charge period
		0xDB, 0x30, // VCOMH deselect level
		0xA4,       // Resume to RAM content
		0xA6,       // Normal display mode
		0x8D, 0x14, // Charge pump on
		0xAF, // Display ON
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	return d.writeFrame(d.buffer)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if debug {
		log.Printf("ssd1306: command %s", hex.EncodeToString(cmds))
	}
	if d.dc == nil {
		for _, cmd := range cmds {
			if err := d.c.Tx([]byte{i2cCommand, cmd}, nil); err != nil {
				return fmt.Errorf("ssd1306: command %#02x: %w", cmd, err)
			}
		}
		return nil
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if debug {
		log.Printf("ssd1306: data %s", hex.EncodeToString(data))
	}
	if d.dc == nil {
		w := make([]byte, 0, len(data)+1)
		w = append(w, i2cData)
		w = append(w, data...)
		if err := d.c.Tx(w, nil); err != nil {
			return fmt.Errorf("ssd1306: data: %w", err)
		}
		return nil
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// SetCursor moves the RAM write pointer to column x of page.
func (d *Dev) SetCursor(page, x int) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands([]byte{
		0xB0 | byte(page&0x07), // Page start address
		0x10 | byte(x>>4&0x0F), // Column high nibble
		byte(x & 0x0F),         // Column low nibble
	})
}

// writeSpan sends span to page starting at column x and records it as displayed.
func (d *Dev) writeSpan(page, x int, span []byte) error {
	if err := d.SetCursor(page, x); err != nil {
		return err
	}
	if err := d.sendData(span); err != nil {
		return err
	}
	copy(d.buffer[page*d.rect.Dx()+x:], span)
	return nil
}

// writeFrame sends every page of a full frame.
func (d *Dev) writeFrame(pix []byte) error {
	w := d.rect.Dx()
	for page := 0; page < d.pages; page++ {
		if err := d.writeSpan(page, 0, pix[page*w:(page+1)*w]); err != nil {
			return err
		}
	}
	return nil
}

// Update sends the whole framebuffer to the panel, page by page.
// fb must have the panel bounds.
func (d *Dev) Update(fb *image1bit.VerticalLSB) error {
	if d.halted {
		return ErrHalted
	}
	if fb.Rect != d.rect {
		return ErrInvalidSize
	}
	return d.writeFrame(fb.Pix)
}

// UpdateArea sends the part of fb covering the width x height rectangle at (x, y).
//
// Updates are page granular: every page the rectangle's rows touch is sent in full
// height, from column x to x+width clipped to the panel edge. Pages outside the panel
// and a starting column outside the panel are skipped.
//
// The first page is y/8 rounded down, so a rectangle starting above the panel still
// sends the pages it overlaps: y=-3, height=8 sends page 0. Drivers that truncate y/8
// toward zero and then step back a page send nothing in that case.
func (d *Dev) UpdateArea(fb *image1bit.VerticalLSB, x, y, width, height int) error {
	if d.halted {
		return ErrHalted
	}
	if fb.Rect != d.rect {
		return ErrInvalidSize
	}
	if width <= 0 || height <= 0 || x < 0 || x >= d.rect.Dx() {
		return nil
	}

	end := min(x+width, d.rect.Dx())
	first, last := floorDiv(y, 8), floorDiv(y+height-1, 8)
	for page := max(first, 0); page <= last && page < d.pages; page++ {
		if err := d.writeSpan(page, x, fb.Page(page)[x:end]); err != nil {
			return err
		}
	}
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes a raw frame in VerticalLSB layout: one byte per column per page.
// The data must be exactly d.Bounds().Dx() * d.Bounds().Dy() / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.buffer) {
		return 0, ErrInvalidSize
	}
	if err := d.writeFrame(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update optimization.
// Only the columns that changed in each page are sent.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: a full-size frame in panel layout
	if img, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == d.rect && sp == (image.Point{}) && img.Rect == d.rect {
			return d.writeFrame(img.Pix)
		}
	}

	if d.next == nil {
		d.next = image1bit.NewVerticalLSB(d.rect)
	}
	copy(d.next.Pix, d.buffer)
	draw.Draw(d.next, dst, src, sp, draw.Src)

	w := d.rect.Dx()
	for page := 0; page < d.pages; page++ {
		cur := d.buffer[page*w : (page+1)*w]
		next := d.next.Page(page)
		lo, hi := changedSpan(cur, next)
		if lo > hi {
			continue
		}
		if err := d.writeSpan(page, lo, next[lo:hi+1]); err != nil {
			return err
		}
	}
	return nil
}

// changedSpan returns the first and last index where a and b differ, or (1, 0) when
// they are equal.
func changedSpan(a, b []byte) (lo, hi int) {
	if bytes.Equal(a, b) {
		return 1, 0
	}
	lo, hi = 0, len(a)-1
	for a[lo] == b[lo] {
		lo++
	}
	for a[hi] == b[hi] {
		hi--
	}
	return lo, hi
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands([]byte{0x81, contrast})
}

// Invert inverts the display colors in hardware. The framebuffer is left untouched.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further commands.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	return d.sendCommand(0xAE)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed is the number of frames between two horizontal scroll steps.
type ScrollSpeed byte

const (
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts horizontal scrolling of pages startPage to endPage.
// If right is true, scrolls right; otherwise scrolls left.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return ErrHalted
	}
	if int(startPage) >= d.pages || int(endPage) >= d.pages || startPage > endPage {
		return errors.New("ssd1306: scroll page out of range")
	}

	scrollCmd := byte(0x26) // Left
	if right {
		scrollCmd = 0x27 // Right
	}

	return d.sendCommands([]byte{
		0x2E, // Scrolling must be off while it is configured
		scrollCmd,
		0x00, // Dummy byte
		startPage,
		byte(speed),
		endPage,
		0x00, 0xFF, // Dummy bytes
		0x2F, // Activate scroll
	})
}

// StopScroll stops scrolling. The panel RAM must be rewritten afterwards since
// scrolling moves its content.
func (d *Dev) StopScroll() error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommand(0x2E)
}
