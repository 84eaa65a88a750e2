package serialdate

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestToTime1900(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	assert.Equal(t, day(1900, time.January, 1), ToTime(1, false))
	assert.Equal(t, day(1900, time.February, 28), ToTime(59, false))
	assert.Equal(t, day(1900, time.March, 1), ToTime(60, false)) // fictitious 29 Feb
	assert.Equal(t, day(1900, time.March, 1), ToTime(61, false))
	assert.Equal(t, day(2024, time.January, 1), ToTime(45292, false))
	assert.Equal(t, time.Date(2024, time.January, 1, 18, 0, 0, 0, time.UTC), ToTime(45292.75, false))
	assert.Equal(t, day(9999, time.December, 31), ToTime(2958465, false))
}

func TestToTime1904(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	assert.Equal(t, day(1904, time.January, 1), ToTime(0, true))
	assert.Equal(t, day(1904, time.January, 2), ToTime(1, true))
	d := day(2021, time.June, 15)
	assert.Equal(t, 1462.0, FromTime(d, false)-FromTime(d, true))
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	for _, serial := range []float64{1, 2.5, 58, 59, 59.25, 61, 61.5, 100, 36526, 45292.75, 2958465} {
		assert.InDelta(t, serial, FromTime(ToTime(serial, false), false), 1e-9, "1900, serial %v", serial)
		assert.InDelta(t, serial, FromTime(ToTime(serial, true), true), 1e-9, "1904, serial %v", serial)
	}
	assert.Equal(t, 61.0, FromTime(day(1900, time.March, 1), false))
	assert.Equal(t, 59.0, FromTime(day(1900, time.February, 28), false))
}

func TestFromTimeIgnoresLocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2024, time.January, 1, 12, 0, 0, 0, loc)
	assert.Equal(t, 45292.5, FromTime(local, false))
}

func TestAgreesWithExcelize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	for _, serial := range []float64{62, 100.5, 36526.25, 45292.75} {
		for _, date1904 := range []bool{false, true} {
			expected, err := excelize.ExcelDateToTime(serial, date1904)
			require.NoError(t, err)
			assert.Equal(t, expected, ToTime(serial, date1904), "serial %v, 1904=%v", serial, date1904)
		}
	}
}
