/*
Package cellref converts between A1-style cell addresses and numeric grid coordinates.

Rows and columns are 1-based. Column letters are a bijective base-26 numeral
("A" is 1, "Z" is 26, "AA" is 27), limited to three letters. The grid is bounded
by MaxRows and MaxColumns, which match the worksheet grid of current spreadsheet
applications.

Addresses come from untrusted spreadsheet content. Parsing therefore never
panics and never returns an error value: parse functions report success with a
boolean flag, and ColumnIndexToName returns the reference-error sentinel RefError
for columns outside the grid. Formatting functions clamp instead of failing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cellref
