package sizing

import (
	"math"
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/sheetmetrics/core/dimen"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/core/locate/resources"
	"github.com/npillmayer/sheetmetrics/engine/glyphing/harfbuzz"
	"github.com/npillmayer/sheetmetrics/engine/glyphing/monospace"
	"github.com/npillmayer/sheetmetrics/engine/glyphing/probe"
)

// DefaultColumnChars is the default column width in characters.
const DefaultColumnChars = 8

// ColumnWidth is the default width of a column.
type ColumnWidth struct {
	Pixels         int       // DefaultColumnChars × maximum digit width
	Chars          float64   // width in characters, a multiple of 1/256
	PointsPerPixel float64   // 72 / dpi
	EMUPerPoint    dimen.EMU // 12700
	EMU            dimen.EMU // Pixels as a length
}

// DeriveColumnWidth derives the default column width from the metrics of a
// typeface.
func DeriveColumnWidth(m probe.Metrics) ColumnWidth {
	w := m.MaxDigitWidth
	steps := m.ColumnSteps
	if w < 2 || len(steps) != w {
		tracer().Errorf("invalid metrics for %s: width %d, %d steps", m.Typeface, w, len(steps))
		w = max(w, 2)
		steps = probe.StepTable(w)
	}
	px := w * DefaultColumnChars
	whole, rem := px/(w-1), px%(w-1)
	cw := ColumnWidth{
		Pixels:         px,
		Chars:          float64(whole) + steps[rem],
		PointsPerPixel: dimen.PointsPerPixel(m.DPI),
		EMUPerPoint:    dimen.PT,
	}
	cw.EMU = dimen.FromPixels(float64(px), m.DPI)
	tracer().Debugf("default column of %s: %d px = %.4f chars", m.Typeface, px, cw.Chars)
	return cw
}

// RowHeight is the default height of a row.
type RowHeight struct {
	Points float64
	EMU    dimen.EMU
}

// DefaultRowHeight is used for typefaces without an entry in the row height table.
const DefaultRowHeight = 15.0

// rowHeights holds known default row heights in points, keyed by font.FamilyKey.
var rowHeights = map[string]float64{
	"calibri":        15,
	"calibrilight":   15,
	"cambria":        15,
	"aptos":          15,
	"aptosnarrow":    15,
	"arial":          12.75,
	"arialnarrow":    12.75,
	"timesnewroman":  12.75,
	"couriernew":     12.75,
	"tahoma":         12.75,
	"verdana":        12.75,
	"georgia":        12.75,
	"gillsansmt":     12.75,
	"segoeui":        15,
	"liberationsans": 12.75,
	"dejavusans":     12.75,
	"msgothic":       13.5,
	"mspgothic":      13.5,
	"yugothic":       18.75,
	"meiryo":         18.75,
	"simsun":         13.5,
	"malgungothic":   16.5,
}

// DeriveRowHeight looks up the default row height of a typeface. It is not
// measured: default row heights do not follow from digit glyphs.
func DeriveRowHeight(typeface string) RowHeight {
	pt, ok := rowHeights[font.FamilyKey(typeface)]
	if !ok {
		tracer().Debugf("no default row height known for %s, using %.2fpt", typeface, DefaultRowHeight)
		pt = DefaultRowHeight
	}
	return RowHeight{Points: pt, EMU: dimen.FromPoints(pt)}
}

// Padding is the number of pixels a column is wider than its characters.
const Padding = 5

// CharsToWidth converts a number of characters to a column width as stored in
// a file: characters plus padding, truncated to 1/256 of a character.
func CharsToWidth(chars float64, mdw int) float64 {
	if mdw <= 0 {
		return 0
	}
	return math.Trunc((chars*float64(mdw)+Padding)/float64(mdw)*256) / 256
}

// WidthToPixels converts a column width as stored in a file to pixels.
func WidthToPixels(width float64, mdw int) int {
	if mdw <= 0 || width <= 0 {
		return 0
	}
	return int(math.Trunc((256*width + math.Trunc(128/float64(mdw))) / 256 * float64(mdw)))
}

// PixelsToWidth converts pixels to the number of characters shown, rounded to
// hundredths.
func PixelsToWidth(px int, mdw int) float64 {
	if mdw <= 0 || px <= Padding {
		return 0
	}
	return math.Trunc(float64(px-Padding)/float64(mdw)*100+0.5) / 100
}

// FitWidth estimates the narrowest column width, as stored in a file, which
// shows every sample. Samples are counted in digit cells.
func FitWidth(samples []string, mdw int) float64 {
	ms := monospace.New(nil)
	cells := 0
	for _, s := range samples {
		cells = max(cells, ms.Cells(s))
	}
	if cells == 0 {
		return 0
	}
	return CharsToWidth(float64(cells), mdw)
}

// Result collects the sizes derived for a typeface.
type Result struct {
	Metrics probe.Metrics
	Column  ColumnWidth
	Row     RowHeight
}

// BaseColWidth is the number of characters of a default column without padding.
func (r Result) BaseColWidth() int {
	return DefaultColumnChars
}

// DefaultColWidth is the default column width as stored in a file.
func (r Result) DefaultColWidth() float64 {
	return CharsToWidth(r.Column.Chars, r.Metrics.MaxDigitWidth)
}

// Sizer derives default sizes, measuring with a probe.
type Sizer struct {
	probe    *probe.Probe
	dpi      int
	typeface string
	size     float64
}

// NewSizer creates a sizer, configured by conf. conf may be nil.
func NewSizer(conf schuko.Configuration) *Sizer {
	s := &Sizer{
		probe:    probe.New(resources.NewResolver(conf)),
		dpi:      dimen.DefaultDPI,
		typeface: "Calibri",
		size:     11,
	}
	if conf == nil {
		return s
	}
	if dpi := conf.GetInt("display-dpi"); dpi > 0 {
		s.dpi = dpi
	}
	if tf := conf.GetString("default-typeface"); tf != "" {
		s.typeface = tf
	}
	if sz, err := strconv.ParseFloat(conf.GetString("default-typeface-size"), 64); err == nil && sz > 0 {
		s.size = sz
	}
	switch conf.GetString("shaper") {
	case "harfbuzz":
		s.probe.WithExtentMeasurer(harfbuzz.New())
	case "monospace":
		s.probe.WithExtentMeasurer(monospace.New(nil))
	}
	return s
}

// DPI returns the display resolution of s.
func (s *Sizer) DPI() int {
	return s.dpi
}

// Size measures typeface in variant v at size points and derives the
// default sizes. An empty typeface or a size of 0 select the configured defaults.
func (s *Sizer) Size(typeface string, size float64, v font.Variant) Result {
	if typeface == "" {
		typeface = s.typeface
	}
	if size <= 0 {
		size = s.size
	}
	m := s.probe.MeasureMaxDigitWidth(typeface, size, v, s.dpi)
	return Result{
		Metrics: m,
		Column:  DeriveColumnWidth(m),
		Row:     DeriveRowHeight(typeface),
	}
}

// Default derives the sizes for the configured default typeface.
func (s *Sizer) Default() Result {
	return s.Size("", 0, font.Regular)
}
