package probe

import (
	"math"

	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/dimen"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/core/locate/resources"
	"github.com/npillmayer/sheetmetrics/engine/glyphing"
)

// Metrics is the result of probing a typeface.
type Metrics struct {
	Typeface      string       // typeface as requested
	Size          float64      // font size in points
	Variant       font.Variant // variant as requested
	DPI           int          // display resolution
	Resolved      string       // name of the font actually measured
	Family        string       // family name stored in the measured font
	Substitution  int          // core.EFALLBACK or core.EMISSING if another font was measured
	MaxDigitWidth int          // width of the widest digit in pixels
	ColumnSteps   []float64    // quantization table, see StepTable
	Overridden    bool         // MaxDigitWidth is a fixed value for the typeface
}

// Probe measures typefaces, resolving them with a resources.Resolver.
type Probe struct {
	resolver *resources.Resolver
	extent   glyphing.GlyphRunMeasurer
}

// New creates a probe. If r is nil, a resolver without configuration is used.
func New(r *resources.Resolver) *Probe {
	if r == nil {
		r = resources.NewResolver(nil)
	}
	return &Probe{resolver: r, extent: ExtentMeasurer{}}
}

// WithExtentMeasurer replaces the measurer of advance widths, which by
// default measures hinted advances. It returns p.
func (p *Probe) WithExtentMeasurer(gm glyphing.GlyphRunMeasurer) *Probe {
	if gm != nil {
		p.extent = gm
	}
	return p
}

var defaultProbe = New(nil)

// MeasureMaxDigitWidth measures typeface with an unconfigured resolver.
// See Probe.MeasureMaxDigitWidth.
func MeasureMaxDigitWidth(typeface string, size float64, v font.Variant, dpi int) Metrics {
	return defaultProbe.MeasureMaxDigitWidth(typeface, size, v, dpi)
}

// MeasureMaxDigitWidth finds the maximum digit width of typeface in variant v,
// at size points and a display resolution of dpi. It never fails: typefaces
// which are not installed are measured in a fallback font.
func (p *Probe) MeasureMaxDigitWidth(typeface string, size float64, v font.Variant, dpi int) Metrics {
	if dpi <= 0 {
		dpi = dimen.DefaultDPI
	}
	m := Metrics{Typeface: typeface, Size: size, Variant: v, DPI: dpi}
	if w, ok := Override(typeface, dpi); ok {
		tracer().Debugf("max digit width of %s fixed to %d px at %d dpi", typeface, w, dpi)
		m.Resolved, m.MaxDigitWidth, m.Overridden = typeface, w, true
		m.ColumnSteps = StepTable(w)
		return m
	}
	tc, err := p.resolver.ResolveTypeCase(typeface, v, size, float64(dpi))
	if err != nil {
		m.Substitution = core.Code(err)
		tracer().Infof("probing %s: [%d] %s", typeface, m.Substitution, core.UserMessage(err))
	}
	defer tc.Close()
	m.Resolved = tc.ScalableFontParent().Fontname
	m.Family = tc.ScalableFontParent().Family()
	extent := maxDigitExtent(p.extent, tc, true)
	raster := maxDigitExtent(NewRasterMeasurer(), tc, false)
	w := int(math.Ceil(math.Max(extent, raster)))
	if w < 2 {
		w = 2
	}
	tracer().Debugf("max digit width of %s (%s) at %.1fpt, %d dpi: extent %.2f, raster %.0f → %d px",
		typeface, m.Resolved, size, dpi, extent, raster, w)
	m.MaxDigitWidth = w
	m.ColumnSteps = StepTable(w)
	return m
}

// maxDigitExtent measures the digits 0…9 and returns the largest extent.
// If bracketed is set, each digit is measured as "_d_" minus "__", which
// includes the kerning of the digit against its neighbours.
func maxDigitExtent(gm glyphing.GlyphRunMeasurer, tc *font.TypeCase, bracketed bool) float64 {
	base := 0.0
	if bracketed {
		base = gm.MeasureGlyphRun("__", tc)
	}
	widest := 0.0
	for d := '0'; d <= '9'; d++ {
		run := string(d)
		if bracketed {
			run = "_" + run + "_"
		}
		if ext := gm.MeasureGlyphRun(run, tc) - base; ext > widest {
			widest = ext
		}
	}
	return widest
}

// LowDPI is the display resolution below which the low-resolution values of
// overrides apply.
const LowDPI = 108

type override struct {
	low, high int // 0: no override
}

// overrides are keyed by font.FamilyKey.
var overrides = map[string]override{
	"verdana":             {low: 11, high: 12},
	"arialnarrow":         {low: 6},
	"gillsansmtcondensed": {low: 6},
}

// Override returns the fixed maximum digit width of typefaces which are known
// not to fit the measuring model.
func Override(typeface string, dpi int) (int, bool) {
	o, ok := overrides[font.FamilyKey(typeface)]
	if !ok {
		return 0, false
	}
	w := o.high
	if dpi < LowDPI {
		w = o.low
	}
	return w, w > 0
}

// StepTable returns the column step table for a maximum digit width of w
// pixels: entry i is the largest multiple of 1/256 not exceeding i/(w−1),
// the fraction of a character a column i pixels wider than a whole number of
// characters is worth. The last entry is never reached by a remainder
// modulo w−1 and is capped below 1.
func StepTable(w int) []float64 {
	if w < 2 {
		return []float64{0}
	}
	steps := make([]float64, w)
	for i := range steps {
		steps[i] = math.Min(math.Trunc(256*float64(i)/float64(w-1)), 255) / 256
	}
	return steps
}
