/*
Package xlsx connects the measuring engine to workbooks handled by excelize.

It reads the theme and the Normal style font of a workbook and writes the
derived default column width and row height back into the sheet format
properties of every worksheet. The theme part is decoded by this package,
as excelize does not export its theme structure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xlsx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheetmetrics.xlsx'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.xlsx")
}
