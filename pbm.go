// Copyright 2026 The IChing Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iching

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as PBM is a
// 1-bit format.
func (c *Code) EncodePBM(w io.Writer) error {
	b := bufio.NewWriter(w)
	s := c.scale()
	bord := c.Border
	width := s * (c.Width + 2*bord)
	height := s * (c.Height + 2*bord)
	ws, hs := strconv.Itoa(width), strconv.Itoa(height)
	if _, err := b.WriteString("P4\n" + ws + " " + hs + "\n"); err != nil {
		return err
	}
	// Each code pixel row is encoded once and written s times.
	row := make([]byte, (width+7)/8)
	for cy := -bord; cy < c.Height+bord; cy++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < width; x++ {
			if c.Black(x/s-bord, cy) != c.Reverse {
				row[x>>3] |= 0x80 >> uint(x&7)
			}
		}
		for i := 0; i < s; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}
