// Copyright 2026 The IChing Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command iching generates IChing codes.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"
	"unicode"

	"github.com/hexakit/iching"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var g = struct {
	scale  int    // image pixels per code pixel
	border int    // quiet zone
	fn     string // filename
	format int    // output file format
	rev    bool   // reverse colours
	fold   bool   // strip combining marks from input
	upper  bool   // uppercase input
}{}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "bmp", "bmpi", "utf8", "utf8i",
	"ascii", "asciii",
}

var encoders = [...]func(*iching.Code, io.Writer) error{
	(*iching.Code).EncodePNG,
	(*iching.Code).EncodePBM,
	(*iching.Code).EncodeBMP,
	func(c *iching.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	ascii,
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	fmt.Fprintln(os.Stderr, "IChing code generator")
	getopt.PrintUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	fmt.Println("IChing code generator")
	getopt.PrintUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`iching version 1.0.0
Copyright (c) 2026 The IChing Authors`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.fold, 'a', `strip accents from input, `+
		`e.g. encode "café" as "cafe"`)
	getopt.Flag(&g.upper, 'u', "convert input to uppercase")
	getopt.Flag(&g.border, 'm', "extra quiet zone in code pixels [0]",
		"margin")
	fno := getopt.Flag(&g.fn, 'o',
		`output file, or "-" for standard output`, "file")
	scale := getopt.Unsigned('s', 1, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 64},
		"image pixels per code pixel", "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.fold {
		t := transform.Chain(norm.NFD,
			runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		var err error
		if s, _, err = transform.String(t, s); err != nil {
			log.Fatalln(err)
		}
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	c, err := iching.Encode(s)
	if err != nil {
		log.Fatalln(err)
	}
	write(c)
}

func write(c *iching.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// ascii prints the code two characters per pixel, so it appears
// roughly square in a terminal.
func ascii(c *iching.Code, w io.Writer) error {
	bord := c.Border
	var b strings.Builder
	for y := -bord; y < c.Height+bord; y++ {
		for x := -bord; x < c.Width+bord; x++ {
			if c.Black(x, y) != c.Reverse {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
