/*
Package color implements the colour model of spreadsheet styles.

Colours are 8-bit ARGB values. They are given as hex strings in style and theme
parts, derived from theme slots by a luminance tint, or looked up from the legacy
indexed palette.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package color

import (
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"
)

// ARGB is a colour with 8 bits per channel, alpha not premultiplied.
type ARGB struct {
	A, R, G, B uint8
}

// Some predefined colours.
var (
	Black = ARGB{A: 0xff}
	White = ARGB{A: 0xff, R: 0xff, G: 0xff, B: 0xff}
)

// Opaque creates a fully opaque colour.
func Opaque(r, g, b uint8) ARGB {
	return ARGB{A: 0xff, R: r, G: g, B: b}
}

// ParseHexColor parses a colour given as "RRGGBB" or "AARRGGBB".
//
// Text shorter than 8 characters is left-padded with 'F', which makes a 6-digit
// RGB value opaque. The four channel groups are then taken from the right. A group
// which is not valid hex is read as 0, except for alpha, which is read as 255.
// ParseHexColor never fails.
func ParseHexColor(text string) ARGB {
	if len(text) < 8 {
		text = strings.Repeat("F", 8-len(text)) + text
	}
	n := len(text)
	return ARGB{
		A: hexGroup(text[n-8:n-6], 0xff),
		R: hexGroup(text[n-6:n-4], 0),
		G: hexGroup(text[n-4:n-2], 0),
		B: hexGroup(text[n-2:], 0),
	}
}

func hexGroup(g string, dflt uint8) uint8 {
	v, err := strconv.ParseUint(g, 16, 8)
	if err != nil {
		return dflt
	}
	return uint8(v)
}

// Hex returns c as "AARRGGBB".
func (c ARGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// RGBHex returns c as "RRGGBB", dropping alpha.
func (c ARGB) RGBHex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c ARGB) String() string {
	return "#" + c.Hex()
}

// RGBA implements image/color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return imgcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

var _ imgcolor.Color = ARGB{}
