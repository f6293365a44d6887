// Copyright 2026 The IChing Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster renders IChing code grids into 1-bit pixel planes.
//
// A rendered code carries four circular registration marks, one near
// each corner: three finder marks (solid core plus outer ring) and
// one alignment mark (a lone ring in the band the finder marks leave
// empty).  The asymmetry fixes rotation and perspective for a reader.
// Each grid cell is drawn as a hexagram: six stacked lines, solid for
// a 1 bit of the cell value, broken in the middle for a 0 bit.
package raster

import "github.com/hexakit/iching/coding"

// A Plane is a fixed-size grid of 1-bit pixels packed eight per byte,
// most significant bit first.  1 is foreground.
type Plane struct {
	Bits   []byte // packed pixels
	Width  int    // pixels per row
	Height int    // pixel rows
	Stride int    // bytes per row
}

// NewPlane returns an all-background Plane of the given size.
func NewPlane(width, height int) *Plane {
	stride := (width + 7) / 8
	return &Plane{
		Bits:   make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// At reports whether the pixel at (x, y) is foreground.
// Out-of-range coordinates read as background.
func (p *Plane) At(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height &&
		p.Bits[y*p.Stride+x/8]&(0x80>>uint(x&7)) != 0
}

// Set writes the pixel at (x, y).  Out-of-range writes are dropped;
// registration mark geometry probes past the edge and relies on this.
func (p *Plane) Set(x, y int, v bool) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	if v {
		p.Bits[y*p.Stride+x/8] |= 0x80 >> uint(x&7)
	} else {
		p.Bits[y*p.Stride+x/8] &^= 0x80 >> uint(x&7)
	}
}

// A Point is a pair of pixel coordinates.
type Point struct {
	X, Y int
}

// Pixel layout.  A symbol cell is symbolDim pixels square and holds
// symbolLines hexagram lines, each unitDim tall with a unitDim gap
// below.  The notch cleared from a broken line is 2*unitDim wide at
// 9*unitDim/2 from the cell edge, which centres it in the cell.
// A reader must use the same constants to invert the layout.
const (
	unitDim      = 2  // thickness of one hexagram line
	symbolLines  = 6  // lines per symbol, one per cell value bit
	symbolDim    = 11 * unitDim
	gapDim       = 6  // pixels between symbol cells
	gridOffset   = 30 // outer margin around the symbol grid
	finderOffset = 14 // registration mark centre, in from the corner
	finderRadius = 14 // registration mark outer radius
)

// Band thresholds splitting finderRadius into rough thirds.  Finder
// marks fill [0, innerRadius] and (midRadius, finderRadius];
// alignment marks fill only the band in between.
const (
	innerRadius = finderRadius * 3 / 7
	midRadius   = finderRadius * 5 / 7
)

// Render draws g into a freshly allocated Plane: three finder marks,
// one alignment mark in the remaining corner, and one hexagram per
// grid cell.
func Render(g *coding.Grid) *Plane {
	w := g.Cols*symbolDim + (g.Cols-1)*gapDim + 2*gridOffset
	h := g.Rows*symbolDim + (g.Rows-1)*gapDim + 2*gridOffset
	p := NewPlane(w, h)

	finder(p, Point{finderOffset, finderOffset})
	finder(p, Point{w - 1 - finderOffset, finderOffset})
	finder(p, Point{finderOffset, h - 1 - finderOffset})
	alignment(p, Point{w - 1 - finderOffset, h - 1 - finderOffset})

	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			x := gridOffset + j*(symbolDim+gapDim)
			y := gridOffset + i*(symbolDim+gapDim)
			hexagram(p, x, y, g.At(i, j))
		}
	}
	return p
}

// finder draws a solid core and an outer ring around c.
func finder(p *Plane, c Point) {
	ring(p, c, 0, innerRadius)
	ring(p, c, midRadius+1, finderRadius)
}

// alignment draws a lone ring in the band finder marks leave empty.
func alignment(p *Plane, c Point) {
	ring(p, c, innerRadius+1, midRadius)
}

// ring fills the band between radii r0 and r1 inclusive by drawing
// nested one-pixel circles; consecutive integer radii leave no holes.
func ring(p *Plane, c Point, r0, r1 int) {
	for r := r0; r <= r1; r++ {
		circle(p, c, r, true)
	}
}

// circle draws a one-pixel-wide circle of radius r around c with the
// integer midpoint algorithm, walking one octant and mirroring each
// point into the other seven.
func circle(p *Plane, c Point, r int, v bool) {
	x, y := r, 0
	d := 1 - r
	for x >= y {
		p.Set(c.X+x, c.Y+y, v)
		p.Set(c.X+y, c.Y+x, v)
		p.Set(c.X-y, c.Y+x, v)
		p.Set(c.X-x, c.Y+y, v)
		p.Set(c.X-x, c.Y-y, v)
		p.Set(c.X-y, c.Y-x, v)
		p.Set(c.X+y, c.Y-x, v)
		p.Set(c.X+x, c.Y-y, v)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// fillRect sets every pixel in the w by h rectangle at (x, y) to v.
func fillRect(p *Plane, x, y, w, h int, v bool) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			p.Set(i, j, v)
		}
	}
}

// hexagram draws the glyph for cell value v at (x, y).  Line b,
// counted from the top, carries bit b: filled solid, then broken by
// clearing the notch if the bit is 0.  The notch overlaps the line it
// breaks, so clearing must come after filling.
func hexagram(p *Plane, x, y, v int) {
	for b := 0; b < symbolLines; b++ {
		ly := y + 2*unitDim*b
		fillRect(p, x, ly, symbolDim, unitDim, true)
		if v>>uint(b)&1 == 0 {
			fillRect(p, x+9*unitDim/2, ly, 2*unitDim, unitDim, false)
		}
	}
}
