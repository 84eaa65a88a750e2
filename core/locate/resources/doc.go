/*
Package resources resolves fonts for measuring.

A Resolver looks for font files in three places, in this order: the
directories of configuration key 'fontpath', the output of fontconfig's
fc-list (if configuration key 'fontconfig' points to the binary), and
the platform's font directories as found by go-findfont.

Font resolution never fails. If a typeface is not installed in the
requested variant, other variants of the same typeface are tried, and
finally one of the Go fonts is used. The error returned along with the
typecase tells clients what happened.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'sheetmetrics.resources'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.resources")
}
