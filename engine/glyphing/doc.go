/*
Package glyphing measures runs of glyphs.

Spreadsheet applications size their columns by the width of the widest
digit of a typeface, as rendered on screen. There is no single way to
find out how wide a glyph will be on screen: the advance width of a
glyph is what a text layout engine uses, the ink actually put on the
screen may differ. Package probe therefore measures with two
GlyphRunMeasurers, one for each view, and takes the larger result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import (
	"github.com/npillmayer/sheetmetrics/core/font"
)

// A GlyphRunMeasurer measures the horizontal extent of a run of glyphs,
// set in a given typecase, in pixels of the typecase's display resolution.
//
// Measurers never fail. A run without visible glyphs has extent 0.
type GlyphRunMeasurer interface {
	MeasureGlyphRun(text string, tc *font.TypeCase) float64
}
