/*
Package fontregistry manages a registry for loaded fonts.

Parsing a font file is the expensive part of getting hold of a typecase.
The registry keeps parsed fonts, keyed by normalized typeface and variant
name. Typecases are created fresh for every request, as they hold a face
which has to be closed after use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'sheetmetrics.font'
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.font")
}
