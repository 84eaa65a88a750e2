/*
Package monospace measures text in digit cells.

Spreadsheet applications estimate the space a cell value needs by counting
characters and treating every character as wide as a digit. East Asian wide
characters count as two digits. Text is split into grapheme clusters first,
so combining sequences count as one character.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheetmetrics.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.glyphs")
}
