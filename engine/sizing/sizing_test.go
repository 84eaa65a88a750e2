package sizing

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheetmetrics/core/dimen"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/engine/glyphing/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDeriveColumnWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	m := probe.Metrics{Typeface: "Calibri", MaxDigitWidth: 7, ColumnSteps: probe.StepTable(7), DPI: 96}
	cw := DeriveColumnWidth(m)
	assert.Equal(t, 56, cw.Pixels)
	assert.Equal(t, 9+85.0/256, cw.Chars)
	assert.Equal(t, 0.75, cw.PointsPerPixel)
	assert.Equal(t, dimen.EMU(12700), cw.EMUPerPoint)
	assert.Equal(t, dimen.EMU(56*9525), cw.EMU)
	//
	cw = DeriveColumnWidth(probe.Metrics{Typeface: "broken", DPI: 96})
	assert.Equal(t, 16, cw.Pixels)
	assert.Equal(t, 16.0, cw.Chars)
}

func TestDeriveRowHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	assert.Equal(t, RowHeight{Points: 15, EMU: 190500}, DeriveRowHeight("Calibri"))
	assert.Equal(t, 12.75, DeriveRowHeight("Times New Roman").Points)
	assert.Equal(t, dimen.EMU(161925), DeriveRowHeight("arial").EMU)
	assert.Equal(t, DefaultRowHeight, DeriveRowHeight("Unknown Face").Points)
}

func TestWidthConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	assert.Equal(t, 9.140625, CharsToWidth(8.43, 7))
	assert.Equal(t, 64, WidthToPixels(9.140625, 7))
	assert.Equal(t, 8.43, PixelsToWidth(64, 7))
	assert.Equal(t, 0, WidthToPixels(9, 0))
	assert.Equal(t, 0.0, PixelsToWidth(3, 7))
	for px := 10; px < 300; px++ {
		w := CharsToWidth(PixelsToWidth(px, 7), 7)
		assert.Equal(t, px, WidthToPixels(w, 7), "round trip of %d px", px)
	}
}

func TestFitWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	assert.Equal(t, 0.0, FitWidth(nil, 7))
	w := FitWidth([]string{"1.5", "1,234.57", ""}, 7)
	assert.Equal(t, CharsToWidth(8, 7), w)
	assert.GreaterOrEqual(t, WidthToPixels(w, 7), 8*7+Padding)
	assert.Equal(t, CharsToWidth(4, 7), FitWidth([]string{"合計"}, 7))
	assert.InDelta(t, 8.71, FitWidth([]string{"12345678"}, 7), 0.01)
}

func TestSizerConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	s := NewSizer(testconfig.Conf{
		"display-dpi":           "120",
		"default-typeface":      "Verdana",
		"default-typeface-size": "10",
		"system-fonts":          "false",
	})
	assert.Equal(t, 120, s.DPI())
	r := s.Default()
	assert.Equal(t, "Verdana", r.Metrics.Typeface)
	assert.Equal(t, 10.0, r.Metrics.Size)
	assert.Equal(t, 12, r.Metrics.MaxDigitWidth)
	assert.Equal(t, 96, r.Column.Pixels)
	assert.Equal(t, 8+186.0/256, r.Column.Chars)
	assert.Equal(t, 12.75, r.Row.Points)
	assert.Equal(t, 8, r.BaseColWidth())
	assert.Equal(t, 9.140625, r.DefaultColWidth())
}

func TestSizerMeasures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Sizerface.ttf"), goregular.TTF, 0644))
	s := NewSizer(testconfig.Conf{"fontpath": dir, "system-fonts": "false"})
	assert.Equal(t, dimen.DefaultDPI, s.DPI())
	r := s.Size("Sizerface", 11, font.Regular)
	assert.False(t, r.Metrics.Overridden)
	assert.Equal(t, r.Metrics.MaxDigitWidth*DefaultColumnChars, r.Column.Pixels)
	assert.Greater(t, r.Column.Chars, 8.0)
	assert.Equal(t, DefaultRowHeight, r.Row.Points)
}

func TestSizerShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Sizerface.ttf"), goregular.TTF, 0644))
	s := NewSizer(testconfig.Conf{"fontpath": dir, "system-fonts": "false", "shaper": "harfbuzz"})
	r := s.Size("Sizerface", 11, font.Regular)
	assert.GreaterOrEqual(t, r.Metrics.MaxDigitWidth, 5)
	assert.LessOrEqual(t, r.Metrics.MaxDigitWidth, 12)
}

func TestSizerMonospace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Sizerface.ttf"), goregular.TTF, 0644))
	s := NewSizer(testconfig.Conf{"fontpath": dir, "system-fonts": "false", "shaper": "monospace"})
	r := s.Size("Sizerface", 11, font.Regular)
	assert.GreaterOrEqual(t, r.Metrics.MaxDigitWidth, 5)
	assert.LessOrEqual(t, r.Metrics.MaxDigitWidth, 12)
}

func TestSizerConcurrentUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.sizing")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Sizerface.ttf"), goregular.TTF, 0644))
	for _, shaper := range []string{"harfbuzz", "monospace"} {
		s := NewSizer(testconfig.Conf{"fontpath": dir, "system-fonts": "false", "shaper": shaper})
		want := s.Size("Sizerface", 11, font.Regular).Metrics.MaxDigitWidth
		var wg sync.WaitGroup
		widths := make([]int, 8)
		for i := range widths {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				widths[i] = s.Size("Sizerface", 11, font.Regular).Metrics.MaxDigitWidth
			}(i)
		}
		wg.Wait()
		for i, w := range widths {
			assert.Equal(t, want, w, "%s: goroutine %d", shaper, i)
		}
	}
}
