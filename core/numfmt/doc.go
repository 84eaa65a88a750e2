/*
Package numfmt translates spreadsheet number format codes and renders sample values.

Format codes are a small language of their own: date and time tokens ("dd", "mmm",
"h"), number pictures ("#,##0.00"), literal text, and bracketed directives for
colours, conditions and elapsed time. Go has no formatter for this language.
Translate therefore rewrites a format code into a HostFormat, a sequence of pieces
which are either reference-time layouts understood by time.Time.Format, number
pictures rendered through golang.org/x/text/number, or literal text.

Translation is done by a tokenizer followed by a fixed list of rewrite rules, applied
to every section of the format code. The rules decide, among other things, whether
an "m" denotes a month or a minute, and whether "[h]" counts elapsed hours or is
an ordinary hour of the clock.

RenderSample renders a value under a format code. The result is used to estimate
the width of a cell, not to display financial data, so neither function ever
fails: exotic format codes degrade to an approximate rendering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package numfmt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheetmetrics.numfmt'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.numfmt")
}
