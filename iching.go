// Copyright 2026 The IChing Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package iching encodes IChing codes: two-dimensional matrix codes that
pack short alphanumeric text into a fixed 8x8 grid of hexagram
symbols, framed by circular registration marks.

The data grid carries no redundancy.  Unlike QR codes there is no
error correction; a damaged cell is unrecoverable.
*/
package iching

import (
	"image"
	"image/color"
	"strings"

	"github.com/hexakit/iching/coding"
	"github.com/hexakit/iching/raster"
)

// A Code is a rendered IChing code.  Bits, Width, Height and Stride
// describe the pixel plane produced by rendering; the remaining
// fields only affect presentation by Image, String and the encoders.
type Code struct {
	Bits   []byte // packed pixels, 1 is foreground
	Width  int    // pixels per row
	Height int    // pixel rows
	Stride int    // bytes per row

	Scale   int             // image pixels per code pixel
	Border  int             // extra quiet zone in code pixels
	Reverse bool            // swap foreground and background
	Palette *[2]color.Color // background, foreground; nil for mono
}

// Encode renders text as an IChing code.
func Encode(text string) (*Code, error) {
	g, err := coding.Encode(text)
	if err != nil {
		return nil, err
	}
	p := raster.Render(g)
	return &Code{
		Bits:   p.Bits,
		Width:  p.Width,
		Height: p.Height,
		Stride: p.Stride,
		Scale:  1,
	}, nil
}

// Black reports whether the code pixel at (x, y) is foreground.
// Out-of-range pixels are background.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Width && 0 <= y && y < c.Height &&
		c.Bits[y*c.Stride+x/8]&(0x80>>uint(x&7)) != 0
}

func (c *Code) scale() int {
	return max(c.Scale, 1)
}

func (c *Code) colors() (bg, fg color.Color) {
	bg, fg = color.Gray{0xff}, color.Gray{0x00}
	if c.Palette != nil {
		bg, fg = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		bg, fg = fg, bg
	}
	return bg, fg
}

// Image returns an image displaying the code, honouring Scale,
// Border, Reverse and Palette.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image.
type codeImage struct {
	*Code
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette != nil {
		return color.RGBAModel
	}
	return color.GrayModel
}

func (c *codeImage) Bounds() image.Rectangle {
	s := c.scale()
	return image.Rect(0, 0,
		s*(c.Width+2*c.Border), s*(c.Height+2*c.Border))
}

func (c *codeImage) At(x, y int) color.Color {
	s := c.scale()
	bg, fg := c.colors()
	if c.Black(x/s-c.Border, y/s-c.Border) {
		return fg
	}
	return bg
}

// String renders the code for a terminal using Unicode half-block
// characters, two pixel rows per line.
func (c *Code) String() string {
	var b strings.Builder
	bord := c.Border
	for y := -bord; y < c.Height+bord; y += 2 {
		for x := -bord; x < c.Width+bord; x++ {
			n := 0
			if c.Black(x, y) != c.Reverse {
				n = 2
			}
			if c.Black(x, y+1) != c.Reverse {
				n++
			}
			b.WriteString([4]string{" ", "▄", "▀", "█"}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
