package cellref

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Grid limits of a worksheet.
const (
	MaxRows    = 1048576
	MaxColumns = 16384
)

// RefError is the sentinel for an address which does not denote a cell.
const RefError = "#REF!"

// MaxSheetNameLength is the maximum length of a sheet name, in characters.
const MaxSheetNameLength = 31

// Address is a cell position on the grid. Row and Column are 1-based.
type Address struct {
	Row    int
	Column int
}

// Valid is true if a is located on the grid.
func (a Address) Valid() bool {
	return a.Row >= 1 && a.Row <= MaxRows && a.Column >= 1 && a.Column <= MaxColumns
}

// String formats a as a relative reference, e.g. "C7".
func (a Address) String() string {
	return FormatCellReference(a.Row, a.Column, false, "")
}

// ColumnIndexToName returns the letter code for column index.
// For indices outside [1,MaxColumns] it returns RefError.
func ColumnIndexToName(index int) string {
	if index < 1 || index > MaxColumns {
		return RefError
	}
	var buf [3]byte
	n := len(buf)
	for index > 0 && n > 0 {
		digit := index % 26
		index /= 26
		if digit == 0 { // borrow from the next-higher position
			digit = 26
			index--
		}
		n--
		buf[n] = byte('A' + digit - 1)
	}
	return string(buf[n:])
}

// ColumnNameToIndex returns the column index for a letter code of 1 to 3 letters.
// Letters are accepted in either case. Codes beyond MaxColumns are rejected.
func ColumnNameToIndex(name string) (int, bool) {
	if len(name) == 0 || len(name) > 3 {
		return 0, false
	}
	index := 0
	for i := 0; i < len(name); i++ {
		c := upper(name[i])
		if c < 'A' || c > 'Z' {
			return 0, false
		}
		index = index*26 + int(c) - 64
	}
	if index > MaxColumns {
		return 0, false
	}
	return index, true
}

// ParseCellReference parses text of the form letters(1–3) digits(1–7), e.g. "B5".
// A '$' marker in front of either part is accepted and dropped. The result has to
// be located on the grid.
func ParseCellReference(text string) (Address, bool) {
	i := 0
	if i < len(text) && text[i] == '$' {
		i++
	}
	start := i
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	letters := text[start:i]
	if len(letters) < 1 || len(letters) > 3 {
		return Address{}, false
	}
	if i < len(text) && text[i] == '$' {
		i++
	}
	start = i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	digits := text[start:i]
	if i != len(text) || len(digits) < 1 || len(digits) > 7 {
		return Address{}, false
	}
	col, ok := ColumnNameToIndex(letters)
	if !ok {
		return Address{}, false
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > MaxRows {
		return Address{}, false
	}
	return Address{Row: row, Column: col}, true
}

// FormatCellReference renders a cell reference for display. Row and column are
// clamped onto the grid. With absolute set, both parts carry a '$' marker. A
// non-empty sheet name qualifies the reference and is quoted when necessary.
func FormatCellReference(row, column int, absolute bool, sheet string) string {
	var b strings.Builder
	if sheet != "" {
		b.WriteString(QuoteSheetName(sheet))
		b.WriteByte('!')
	}
	writeRef(&b, clamp(row, MaxRows), clamp(column, MaxColumns), absolute)
	return b.String()
}

// QuoteSheetName returns name in the form required for a sheet qualifier.
// Names containing blanks, brackets or apostrophes, and names starting with a
// digit, are wrapped in single quotes, with embedded apostrophes doubled.
func QuoteSheetName(name string) string {
	if !needsQuotes(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// IsValidSheetName checks name for the restrictions imposed on sheet names:
// it must not be empty, must not exceed MaxSheetNameLength characters and must
// not contain any of \ / ? * [ ].
func IsValidSheetName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > MaxSheetNameLength {
		return false
	}
	return !strings.ContainsAny(name, `\/?*[]`)
}

// ParseQualifiedReference parses a reference with an optional sheet qualifier,
// such as "Data!C3" or "'My Sheet'!$A$1".
func ParseQualifiedReference(text string) (string, Address, bool) {
	sheet, ref, ok := splitSheet(text)
	if !ok {
		return "", Address{}, false
	}
	a, ok := ParseCellReference(ref)
	return sheet, a, ok
}

// ---------------------------------------------------------------------------

func writeRef(b *strings.Builder, row, column int, absolute bool) {
	if absolute {
		b.WriteByte('$')
	}
	b.WriteString(ColumnIndexToName(column))
	if absolute {
		b.WriteByte('$')
	}
	b.WriteString(strconv.Itoa(row))
}

func splitSheet(text string) (string, string, bool) {
	at := strings.LastIndexByte(text, '!')
	if at < 0 {
		return "", text, true
	}
	sheet := text[:at]
	if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	if !IsValidSheetName(sheet) {
		return "", "", false
	}
	return sheet, text[at+1:], true
}

func needsQuotes(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return true
	}
	return strings.ContainsAny(name, " []'")
}

func clamp(n, max int) int {
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

var _ fmt.Stringer = Address{}
