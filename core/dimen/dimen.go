// Package dimen implements the length units of the spreadsheet package format.
//
// All lengths are held in English Metric Units (EMU), 914,400 per inch.
// Typographic points are 1/72 inch (12,700 EMU), and screen pixels depend
// on the device resolution.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// EMU is a length in English Metric Units.
type EMU int64

// Some pre-defined dimensions
const (
	Zero EMU = 0
	PT   EMU = 12700   // typographic point, 1/72 inch
	MM   EMU = 36000   // millimeter
	CM   EMU = 360000  // centimeter
	IN   EMU = 914400  // inch
	PX96 EMU = 9525    // pixel at 96 dpi
	Pica EMU = 12 * PT // pica, 1/6 inch
)

// PointsPerInch is the number of typographic points per inch.
const PointsPerInch = 72

// DefaultDPI is the device resolution assumed when none is configured.
const DefaultDPI = 96

// Stringer implementation.
func (d EMU) String() string {
	return fmt.Sprintf("%demu", int64(d))
}

// Points returns a dimension in typographic points.
func (d EMU) Points() float64 {
	return float64(d) / float64(PT)
}

// Inches returns a dimension in inches.
func (d EMU) Inches() float64 {
	return float64(d) / float64(IN)
}

// Pixels returns a dimension in device pixels for a given resolution.
// A non-positive dpi is taken as DefaultDPI.
func (d EMU) Pixels(dpi int) float64 {
	return d.Inches() * float64(normDPI(dpi))
}

// FromPoints converts typographic points to EMU, rounding to the nearest unit.
func FromPoints(pt float64) EMU {
	return EMU(math.Round(pt * float64(PT)))
}

// FromPixels converts device pixels at resolution dpi to EMU.
func FromPixels(px float64, dpi int) EMU {
	return EMU(math.Round(px * float64(IN) / float64(normDPI(dpi))))
}

// PointsPerPixel is the conversion factor from device pixels to points.
func PointsPerPixel(dpi int) float64 {
	return PointsPerInch / float64(normDPI(dpi))
}

func normDPI(dpi int) int {
	if dpi <= 0 {
		return DefaultDPI
	}
	return dpi
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)\s*([a-zA-Z]{2,3})?$`)

// ParseDimen parses a string to return a dimension, e.g. "12pt", "2.5cm" or "914400".
// A number without unit is taken as EMU. Pixels ("px") are taken at 96 dpi.
func ParseDimen(s string) (EMU, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, errors.New("format error parsing dimension")
	}
	scale := float64(1)
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = float64(PT)
		case "mm", "MM":
			scale = float64(MM)
		case "cm", "CM":
			scale = float64(CM)
		case "in", "IN":
			scale = float64(IN)
		case "px", "PX":
			scale = float64(PX96)
		case "pc", "PC":
			scale = float64(Pica)
		case "emu", "EMU", "":
			scale = 1
		default:
			return 0, errors.New("format error parsing dimension")
		}
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, errors.New("format error parsing dimension")
	}
	return EMU(math.Round(n * scale)), nil
}
