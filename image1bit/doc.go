// Package image1bit provides a 1-bit monochrome image format for the SSD1306 display controller.
//
// The SSD1306 organizes its RAM in pages: each page is a horizontal band of 8 pixel rows and
// each byte of a page covers one column of that band. Bit 0 is the top pixel of the band.
//
// Memory layout for the first page of a 128x64 panel:
//
//	Column:  0     1     2    ...  127
//	Byte:    Pix[0] Pix[1] Pix[2] ... Pix[127]
//	Bit 0 -> row 0, bit 1 -> row 1, ..., bit 7 -> row 7
//
// The second page (rows 8-15) starts at Pix[128], and so on.
//
// This package provides:
//
// - Bit: A color type representing an on or off pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the SSD1306 RAM layout, with the
// point and area primitives used by the drawing code
//
// Example usage:
//
//	// Create a 128x64 frame
//	img := image1bit.NewVerticalLSB(image1bit.Panel)
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Invert the top half
//	img.InvertArea(0, 0, 128, 32)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
