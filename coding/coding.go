// Copyright 2026 The IChing Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level IChing code symbol coding.
package coding

import (
	"errors"
	"fmt"
)

// Version of the coding scheme.  Cell 0 of every grid carries it, so
// a future revision can change the alphabet or cell layout without
// breaking deployed readers.
const Version = 0

// Grid dimensions.
const (
	GridWidth  = 8
	GridHeight = 8

	// MaxContent is the number of cells left for content symbols
	// after the version and length cells.
	MaxContent = GridWidth*GridHeight - 2
)

// ErrTooLong is returned for text longer than MaxContent characters.
var ErrTooLong = errors.New("iching: text too long to encode")

// CharError reports a character outside the symbol alphabet.
type CharError struct {
	Pos  int  // byte position in the input
	Char rune // offending character
}

func (e CharError) Error() string {
	return fmt.Sprintf("iching: unsupported character %q at position %d",
		e.Char, e.Pos)
}

// Symbol alphabet.  Lowercase letters map to 0-25, uppercase letters
// to 26-51, digits to 52-61; -1 marks unsupported characters.
var symtab = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, // 0x00
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, // 0x10
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, // 0x20
	52, 53, 54, 55, 56, 57, 58, 59, 60, 61, -1, -1, -1, -1, -1, -1, // 0x30
	-1, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, // 0x40
	41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, -1, -1, -1, -1, -1, // 0x50
	-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, // 0x60
	15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, -1, -1, -1, -1, -1, // 0x70
}

// Lookup returns the symbol code for r, or -1 if r is outside the
// alphabet.
func Lookup(r rune) int {
	if uint32(r) < uint32(len(symtab)) {
		return int(symtab[r])
	}
	return -1
}

// A Grid is a versioned cell grid ready for rasterization.  Cells
// holds Rows*Cols values in row-major order: cell 0 is the version,
// cell 1 the content length, cells 2 onwards the content symbols.
// An unused trailing cell holds its own index.  The sentinel is
// decodable: payload cell indices are bounded by the stored length,
// so a reader never mistakes filler for data.
type Grid struct {
	Version int
	Rows    int
	Cols    int
	Cells   []int
}

// At returns the cell value at row i, column j.
func (g *Grid) At(i, j int) int {
	return g.Cells[i*g.Cols+j]
}

// Encode packs text into a Grid.  It fails with ErrTooLong if text
// has more than MaxContent characters and with a CharError for any
// character outside the alphabet.  The whole input is validated
// before the first cell is written, so an error never leaves a
// partial grid behind.  Empty text is valid.
func Encode(text string) (*Grid, error) {
	if len(text) > MaxContent {
		return nil, ErrTooLong
	}
	for i, r := range text {
		if Lookup(r) < 0 {
			return nil, CharError{i, r}
		}
	}
	cells := make([]int, GridWidth*GridHeight)
	for i := range cells {
		cells[i] = i
	}
	cells[0] = Version
	cells[1] = len(text)
	for i := 0; i < len(text); i++ {
		cells[i+2] = int(symtab[text[i]])
	}
	return &Grid{
		Version: Version,
		Rows:    GridHeight,
		Cols:    GridWidth,
		Cells:   cells,
	}, nil
}
