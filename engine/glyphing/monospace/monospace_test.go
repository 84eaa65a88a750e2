package monospace

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/engine/glyphing"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ glyphing.GlyphRunMeasurer = (*Measurer)(nil)

func TestCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.glyphs")
	defer teardown()
	//
	m := New(nil)
	assert.Equal(t, 0, m.Cells(""))
	assert.Equal(t, 8, m.Cells("1,234.57"))
	assert.Equal(t, 4, m.Cells("日本"))
	assert.Equal(t, 4, m.Cells("café"))
	assert.Equal(t, 4, m.Cells("café"))
	assert.Equal(t, 1, m.Cells("0"))
	assert.Equal(t, 8, m.Cells("12345678"))
	assert.Equal(t, 1, m.Cells("a"))
	assert.Equal(t, 4, m.Cells("ＡＢ")) // fullwidth
	assert.Equal(t, 3, m.Cells("±12"))
}

func TestCellsInEastAsianContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.glyphs")
	defer teardown()
	//
	m := New(uax11.EastAsianContext)
	assert.Equal(t, 8, m.Cells("12345678"))
	assert.Equal(t, 4, m.Cells("±12"))
	assert.Equal(t, 4, m.Cells("日本"))
}

func TestMeasureGlyphRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.glyphs")
	defer teardown()
	//
	tc, err := font.FallbackFont(font.Regular).PrepareCase(11, 96)
	require.NoError(t, err)
	defer tc.Close()
	m := New(nil)
	one := m.MeasureGlyphRun("0", tc)
	assert.Greater(t, one, 0.0)
	assert.InDelta(t, 3*one, m.MeasureGlyphRun("abc", tc), 1e-9)
}

func TestMeasureWithoutTypeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.glyphs")
	defer teardown()
	//
	m := New(nil)
	assert.Equal(t, 0.0, m.MeasureGlyphRun("123", nil))
	tc, err := font.FallbackFont(font.Regular).PrepareCase(11, 96)
	require.NoError(t, err)
	require.NoError(t, tc.Close())
	assert.NotPanics(t, func() {
		assert.Equal(t, 0.0, m.MeasureGlyphRun("123", tc))
	})
}
