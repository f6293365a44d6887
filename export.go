// Copyright 2026 The IChing Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iching

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// EncodeBMP writes a BMP image displaying the code to w.
func (c *Code) EncodeBMP(w io.Writer) error {
	src := c.Image()
	r := src.Bounds()
	img := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, src.At(x, y))
		}
	}
	return bmp.Encode(w, img)
}
