/*
Package sizing derives default column widths and row heights.

Column widths in spreadsheet files are given in characters: the number of
digits of the default font's maximum digit width which fit into a column,
plus padding, quantized to 1/256 of a character. DeriveColumnWidth turns
the metrics of a probe into the default column width. Row heights are
given in points and are taken from a table of known defaults per typeface.

A Sizer ties probing and sizing together and is configured with

	display-dpi            display resolution (default 96)
	default-typeface       typeface of the Normal style (default Calibri)
	default-typeface-size  size in points (default 11)
	shaper                 "harfbuzz" measures advances by shaping text,
	                       "monospace" measures every digit as wide as '0'

A Sizer may be used concurrently once it has been created.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sizing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheetmetrics.sizing'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.sizing")
}
