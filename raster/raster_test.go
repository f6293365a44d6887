// Copyright 2026 The IChing Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"bytes"
	"testing"

	"github.com/hexakit/iching/coding"
)

func TestPlaneSetAt(t *testing.T) {
	p := NewPlane(19, 7)
	if p.Stride != 3 {
		t.Fatalf("stride = %d, want 3", p.Stride)
	}
	p.Set(0, 0, true)
	p.Set(18, 6, true)
	p.Set(9, 3, true)
	p.Set(9, 3, false)
	if !p.At(0, 0) || !p.At(18, 6) || p.At(9, 3) {
		t.Errorf("pixels: %v %v %v",
			p.At(0, 0), p.At(18, 6), p.At(9, 3))
	}
}

var rangeTests = []Point{
	{-1, 0}, {0, -1}, {19, 0}, {0, 7}, {-100, -100}, {1 << 20, 3},
}

func TestPlaneOutOfRange(t *testing.T) {
	p := NewPlane(19, 7)
	for _, pt := range rangeTests {
		p.Set(pt.X, pt.Y, true)
		if p.At(pt.X, pt.Y) {
			t.Errorf("At(%d, %d) = true", pt.X, pt.Y)
		}
	}
	for _, b := range p.Bits {
		if b != 0 {
			t.Fatal("out-of-range write reached the plane")
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	const cx, cy, r = 31, 31, 10
	p := NewPlane(64, 64)
	circle(p, Point{cx, cy}, r, true)
	for dy := -r - 2; dy <= r+2; dy++ {
		for dx := -r - 2; dx <= r+2; dx++ {
			v := p.At(cx+dx, cy+dy)
			if p.At(cx-dx, cy+dy) != v || p.At(cx+dx, cy-dy) != v ||
				p.At(cx+dy, cy+dx) != v {
				t.Fatalf("asymmetry at offset (%d, %d)", dx, dy)
			}
		}
	}
	if !p.At(cx+r, cy) || !p.At(cx, cy-r) || p.At(cx, cy) {
		t.Errorf("cardinal points: %v %v, centre %v",
			p.At(cx+r, cy), p.At(cx, cy-r), p.At(cx, cy))
	}
}

func TestCircleZeroRadius(t *testing.T) {
	p := NewPlane(8, 8)
	circle(p, Point{4, 4}, 0, true)
	if !p.At(4, 4) {
		t.Error("radius 0 circle did not set its centre")
	}
}

func TestMarks(t *testing.T) {
	const c = 40
	p := NewPlane(80, 80)
	finder(p, Point{c, c})
	a := NewPlane(80, 80)
	alignment(a, Point{c, c})

	mid := innerRadius + 2 // inside the gap band
	tests := []struct {
		name           string
		x, y           int
		finder, align1 bool
	}{
		{"centre", c, c, true, false},
		{"core edge", c + innerRadius, c, true, false},
		{"gap band", c + mid, c, false, true},
		{"outer ring", c + finderRadius, c, true, false},
		{"outside", c + finderRadius + 2, c, false, false},
	}
	for _, tt := range tests {
		if got := p.At(tt.x, tt.y); got != tt.finder {
			t.Errorf("finder %s: %v, want %v", tt.name, got, tt.finder)
		}
		if got := a.At(tt.x, tt.y); got != tt.align1 {
			t.Errorf("alignment %s: %v, want %v", tt.name, got, tt.align1)
		}
	}
}

func TestHexagram(t *testing.T) {
	// Probe one pixel inside the notch area and one at the left edge
	// of each line.
	notchX := 9*unitDim/2 + unitDim/2
	tests := []struct {
		v     int
		solid [symbolLines]bool // line b solid iff bit b set
	}{
		{0, [symbolLines]bool{}},
		{1, [symbolLines]bool{true}},
		{0b101010, [symbolLines]bool{false, true, false, true, false, true}},
		{63, [symbolLines]bool{true, true, true, true, true, true}},
	}
	for _, tt := range tests {
		p := NewPlane(symbolDim, symbolDim)
		hexagram(p, 0, 0, tt.v)
		for b := 0; b < symbolLines; b++ {
			ly := 2 * unitDim * b
			if !p.At(0, ly) || !p.At(symbolDim-1, ly) {
				t.Errorf("v=%d line %d: edges not filled", tt.v, b)
			}
			if got := p.At(notchX, ly); got != tt.solid[b] {
				t.Errorf("v=%d line %d: middle = %v, want %v",
					tt.v, b, got, tt.solid[b])
			}
			// The band below each line stays background.
			if ly+unitDim < symbolDim && p.At(0, ly+unitDim) {
				t.Errorf("v=%d line %d: gap band filled", tt.v, b)
			}
		}
	}
}

func TestRenderSize(t *testing.T) {
	g, err := coding.Encode("size")
	if err != nil {
		t.Fatal(err)
	}
	p := Render(g)
	w := g.Cols*symbolDim + (g.Cols-1)*gapDim + 2*gridOffset
	h := g.Rows*symbolDim + (g.Rows-1)*gapDim + 2*gridOffset
	if p.Width != w || p.Height != h {
		t.Errorf("plane is %dx%d, want %dx%d", p.Width, p.Height, w, h)
	}
}

func TestRenderMarks(t *testing.T) {
	g, err := coding.Encode("marks")
	if err != nil {
		t.Fatal(err)
	}
	p := Render(g)
	// Finder marks have a solid core, the alignment mark does not.
	w, h := p.Width, p.Height
	if !p.At(finderOffset, finderOffset) ||
		!p.At(w-1-finderOffset, finderOffset) ||
		!p.At(finderOffset, h-1-finderOffset) {
		t.Error("finder mark core missing")
	}
	if p.At(w-1-finderOffset, h-1-finderOffset) {
		t.Error("alignment mark has a solid core")
	}
	if !p.At(w-1-finderOffset+innerRadius+2, h-1-finderOffset) {
		t.Error("alignment ring missing")
	}
}

func TestRenderDeterministic(t *testing.T) {
	g1, err := coding.Encode("again")
	if err != nil {
		t.Fatal(err)
	}
	g2, err := coding.Encode("again")
	if err != nil {
		t.Fatal(err)
	}
	p1, p2 := Render(g1), Render(g2)
	if !bytes.Equal(p1.Bits, p2.Bits) {
		t.Error("two renders of equal grids differ")
	}
}
