package cellref

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	for index, name := range map[int]string{
		1:     "A",
		26:    "Z",
		27:    "AA",
		52:    "AZ",
		53:    "BA",
		702:   "ZZ",
		703:   "AAA",
		16384: "XFD",
	} {
		assert.Equal(t, name, ColumnIndexToName(index), "column %d", index)
	}
	assert.Equal(t, RefError, ColumnIndexToName(0))
	assert.Equal(t, RefError, ColumnIndexToName(-3))
	assert.Equal(t, RefError, ColumnIndexToName(MaxColumns+1))
}

func TestColumnNameRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	for i := 1; i <= MaxColumns; i++ {
		name := ColumnIndexToName(i)
		j, ok := ColumnNameToIndex(name)
		if !ok || i != j {
			t.Fatalf("column %d encodes to %q, which decodes to %d (%v)", i, name, j, ok)
		}
	}
}

func TestColumnNamesAgreeWithExcelize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	for _, i := range []int{1, 26, 27, 701, 702, 703, 18278 % MaxColumns, MaxColumns} {
		name, err := excelize.ColumnNumberToName(i)
		require.NoError(t, err)
		assert.Equal(t, name, ColumnIndexToName(i))
	}
}

func TestColumnNameToIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	i, ok := ColumnNameToIndex("xfd")
	assert.True(t, ok)
	assert.Equal(t, MaxColumns, i)
	for _, bad := range []string{"", "XFE", "ZZZ", "AAAA", "A1", "Ä"} {
		_, ok := ColumnNameToIndex(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestParseCellReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	a, ok := ParseCellReference("B5")
	require.True(t, ok)
	assert.Equal(t, Address{Row: 5, Column: 2}, a)
	//
	a, ok = ParseCellReference("$c$12")
	require.True(t, ok)
	assert.Equal(t, Address{Row: 12, Column: 3}, a)
	//
	a, ok = ParseCellReference("XFD1048576")
	require.True(t, ok)
	assert.Equal(t, Address{Row: MaxRows, Column: MaxColumns}, a)
	//
	for _, bad := range []string{
		"A0", "XFE1", "A1048577", "", "1A", "A", "12", "AAAA1", "A12345678",
		"A 1", "A1 ", "$$A1", "A1$", "B-5",
	} {
		_, ok := ParseCellReference(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestParseCellRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	r, ok := ParseCellRange("C5:A1")
	require.True(t, ok)
	assert.Equal(t, Address{Row: 1, Column: 1}, r.Start)
	assert.Equal(t, Address{Row: 5, Column: 3}, r.End)
	rows, cols := r.Size()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 3, cols)
	assert.True(t, r.Contains(Address{Row: 3, Column: 2}))
	assert.False(t, r.Contains(Address{Row: 6, Column: 2}))
	assert.Equal(t, "A1:C5", r.String())
	//
	r, ok = ParseCellRange("A5:C1") // mixed corners
	require.True(t, ok)
	assert.Equal(t, Address{Row: 1, Column: 1}, r.Start)
	assert.Equal(t, Address{Row: 5, Column: 3}, r.End)
	//
	for _, bad := range []string{"A1", "A1:B2:C3", "A1:", ":B2", "A0:B2", "A1::B2"} {
		_, ok := ParseCellRange(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestFormatCellReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	assert.Equal(t, "B5", FormatCellReference(5, 2, false, ""))
	assert.Equal(t, "$B$5", FormatCellReference(5, 2, true, ""))
	assert.Equal(t, "A1", FormatCellReference(0, -7, false, ""))
	assert.Equal(t, "XFD1048576", FormatCellReference(MaxRows+10, MaxColumns+10, false, ""))
	assert.Equal(t, "Data!C3", FormatCellReference(3, 3, false, "Data"))
	assert.Equal(t, "'My Sheet'!C3", FormatCellReference(3, 3, false, "My Sheet"))
	assert.Equal(t, "'2024'!C3", FormatCellReference(3, 3, false, "2024"))
	assert.Equal(t, "'Bob''s List'!$C$3", FormatCellReference(3, 3, true, "Bob's List"))
	assert.Equal(t, "'Sheet[1]'!A1:B2", FormatCellRange(2, 2, 1, 1, false, "Sheet[1]"))
	assert.Equal(t, "$A$1:$XFD$1048576", FormatCellRange(0, 0, MaxRows*2, MaxColumns*2, true, ""))
}

func TestQualifiedReferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	sheet, a, ok := ParseQualifiedReference("'Bob''s List'!$C$3")
	require.True(t, ok)
	assert.Equal(t, "Bob's List", sheet)
	assert.Equal(t, Address{Row: 3, Column: 3}, a)
	//
	sheet, a, ok = ParseQualifiedReference("D4")
	require.True(t, ok)
	assert.Equal(t, "", sheet)
	assert.Equal(t, "D4", a.String())
	//
	sheet, r, ok := ParseQualifiedRange("Data!B2:A1")
	require.True(t, ok)
	assert.Equal(t, "Data", sheet)
	assert.Equal(t, "A1:B2", r.String())
	//
	_, _, ok = ParseQualifiedReference("!A1")
	assert.False(t, ok)
	_, _, ok = ParseQualifiedReference("a/b!A1")
	assert.False(t, ok)
}

func TestSheetNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	assert.True(t, IsValidSheetName("Sheet1"))
	assert.True(t, IsValidSheetName("Übersicht 2024"))
	assert.True(t, IsValidSheetName("1234567890123456789012345678901")) // 31
	assert.False(t, IsValidSheetName(""))
	assert.False(t, IsValidSheetName("12345678901234567890123456789012")) // 32
	for _, c := range []string{`\`, "/", "?", "*", "[", "]"} {
		assert.False(t, IsValidSheetName("a"+c+"b"), "expected %q to be rejected", c)
	}
}
