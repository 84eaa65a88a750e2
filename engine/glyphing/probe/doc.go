/*
Package probe finds the maximum digit width of a typeface.

The maximum digit width is the number of pixels the widest of the digits
0…9 occupies on screen. Spreadsheet column widths are expressed in
multiples of it. MeasureMaxDigitWidth measures all digits with two
methods, the advance-based ExtentMeasurer and the ink-based
RasterMeasurer, and takes the larger result, rounded up. A few
typefaces are known not to fit this model; for them the result is
overridden by a fixed value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package probe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheetmetrics.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.glyphs")
}
