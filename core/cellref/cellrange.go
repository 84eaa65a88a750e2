package cellref

import (
	"strings"
)

// Range is a rectangular block of cells. Start is the top-left corner,
// End is the bottom-right corner.
type Range struct {
	Start Address
	End   Address
}

// NewRange creates a range from two arbitrary corners.
func NewRange(a, b Address) Range {
	r := Range{Start: a, End: b}
	if r.Start.Row > r.End.Row {
		r.Start.Row, r.End.Row = r.End.Row, r.Start.Row
	}
	if r.Start.Column > r.End.Column {
		r.Start.Column, r.End.Column = r.End.Column, r.Start.Column
	}
	return r
}

// ParseCellRange parses text of the form "A1:C5". The text must contain exactly
// one colon, and both corners must be valid cell references. The corners may be
// given in any order.
func ParseCellRange(text string) (Range, bool) {
	if strings.Count(text, ":") != 1 {
		return Range{}, false
	}
	at := strings.IndexByte(text, ':')
	a, ok := ParseCellReference(text[:at])
	if !ok {
		return Range{}, false
	}
	b, ok := ParseCellReference(text[at+1:])
	if !ok {
		return Range{}, false
	}
	return NewRange(a, b), true
}

// ParseQualifiedRange parses a range with an optional sheet qualifier,
// such as "'Q1 2024'!A1:B10".
func ParseQualifiedRange(text string) (string, Range, bool) {
	sheet, ref, ok := splitSheet(text)
	if !ok {
		return "", Range{}, false
	}
	r, ok := ParseCellRange(ref)
	return sheet, r, ok
}

// FormatCellRange renders a range for display. Corners are clamped onto the grid
// and normalized.
func FormatCellRange(row1, column1, row2, column2 int, absolute bool, sheet string) string {
	r := NewRange(
		Address{Row: clamp(row1, MaxRows), Column: clamp(column1, MaxColumns)},
		Address{Row: clamp(row2, MaxRows), Column: clamp(column2, MaxColumns)},
	)
	var b strings.Builder
	if sheet != "" {
		b.WriteString(QuoteSheetName(sheet))
		b.WriteByte('!')
	}
	writeRef(&b, r.Start.Row, r.Start.Column, absolute)
	b.WriteByte(':')
	writeRef(&b, r.End.Row, r.End.Column, absolute)
	return b.String()
}

// Contains is true if a is located within r.
func (r Range) Contains(a Address) bool {
	return a.Row >= r.Start.Row && a.Row <= r.End.Row &&
		a.Column >= r.Start.Column && a.Column <= r.End.Column
}

// Size returns the number of rows and columns spanned by r.
func (r Range) Size() (rows, columns int) {
	return r.End.Row - r.Start.Row + 1, r.End.Column - r.Start.Column + 1
}

func (r Range) String() string {
	return FormatCellRange(r.Start.Row, r.Start.Column, r.End.Row, r.End.Column, false, "")
}
