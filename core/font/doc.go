/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Calibri".

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight and slant. An example is "Calibri bold".

* A "typecase" is a scaled font, i.e. a font in a certain size at a
certain display resolution. An example is "Calibri regular 11pt at 96 dpi".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Spreadsheet styles only know of four variants of a typeface: regular, bold,
italic and bold italic. Variant covers these, translated to the style and
weight of golang.org/x/image/font.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheetmetrics.font'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.font")
}
