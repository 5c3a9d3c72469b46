// Package ssd1306 controls a SSD1306 monochrome OLED display via I²C or SPI.
//
// The SSD1306 is a 1-bit OLED controller driving up to 128×64 pixels. Its RAM is split
// in pages of 8 rows; each byte holds one column of a page, least significant bit on
// top. This driver implements the display.Drawer interface from periph.io and pushes
// frames kept in an image1bit.VerticalLSB, which has the same layout.
//
// # Display Characteristics
//
// - 1-bit monochrome
// - 128×64 or 128×32 panels (any width up to 128, heights in multiples of 8)
// - Page addressing: 8 pages of 128 columns on a 128×64 panel
// - Hardware scrolling support (horizontal only)
// - Adjustable contrast (0-255)
// - Display inversion
//
// # Hardware Connection
//
// Most modules use I²C at address 0x3C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// SPI modules add a DC pin and an optional RES pin:
//
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
// Drawing happens on a canvas.Canvas, which only changes the framebuffer. Nothing
// reaches the panel until the framebuffer is pushed with Update or UpdateArea:
//
//	package main
//
//	import (
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/canvas"
//		"github.com/flavioheleno/ssd1306/font"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ssd1306.NewI2C(bus, nil)
//		defer dev.Halt()
//
//		c := canvas.New(nil, nil)
//		c.ShowString(0, 0, "Hello, world!", font.Size8x16)
//		c.DrawCircle(100, 40, 12, canvas.Filled)
//		c.ShowFloatNum(0, 40, 21.5, 2, 1, font.Size6x8)
//
//		dev.Update(c.Buffer())
//	}
//
// # Partial Updates
//
// UpdateArea sends only the pages a rectangle touches, starting at its left column:
//
//	c.ShowNum(0, 16, count, 4, font.Size8x16)
//	dev.UpdateArea(c.Buffer(), 0, 16, 32, 16)
//
// Draw compares the new frame with the last one sent and transmits only the changed
// columns of each page, so it can be called with any image.Image:
//
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Hardware Scrolling
//
//	// Scroll pages 0 to 7 to the left
//	dev.ScrollHorizontal(0, 7, ssd1306.Speed5Frames, false)
//	time.Sleep(5 * time.Second)
//	dev.StopScroll()
//
// # Debugging
//
// Setting the SSD1306_DEBUG environment variable logs every command and data burst
// in hexadecimal through the standard logger.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
