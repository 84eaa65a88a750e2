/*
Package harfbuzz measures runs of glyphs by shaping them with HarfBuzz.

Shaped advances are unhinted and include the positioning of the font's
layout tables. They tell what a typesetting engine makes of a run, as
opposed to the hinted advances of a screen rasterizer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harfbuzz

import (
	"bytes"
	"sync"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/engine/glyphing"
)

// tracer traces with key 'sheetmetrics.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.glyphs")
}

// Measurer is a GlyphRunMeasurer which shapes text with HarfBuzz.
// Parsed fonts are cached per scalable font. Calls to a Measurer are
// serialized, as HarfBuzz fonts keep shaping state.
type Measurer struct {
	sync.Mutex
	fonts map[*font.ScalableFont]*hb.Font
}

var _ glyphing.GlyphRunMeasurer = (*Measurer)(nil)

// New creates a HarfBuzz measurer.
func New() *Measurer {
	return &Measurer{fonts: make(map[*font.ScalableFont]*hb.Font)}
}

// MeasureGlyphRun returns the sum of the shaped advances of text, in pixels.
// Fonts HarfBuzz cannot parse measure as 0.
func (m *Measurer) MeasureGlyphRun(text string, tc *font.TypeCase) float64 {
	if tc == nil || text == "" {
		return 0
	}
	m.Lock()
	defer m.Unlock()
	sf := tc.ScalableFontParent()
	hbFont, err := m.font(sf)
	if err != nil {
		tracer().Errorf("cannot shape with %s: %v", sf.Fontname, err)
		return 0
	}
	upem := float64(sf.SFNT.UnitsPerEm())
	if upem == 0 {
		return 0
	}
	runes := []rune(text)
	buf := hb.NewBuffer()
	buf.Props.Direction = hb.LeftToRight
	buf.AddRunes(runes, 0, len(runes))
	buf.Shape(hbFont, nil)
	advance := 0.0
	for i := range buf.Pos {
		advance += float64(buf.Pos[i].XAdvance)
	}
	return advance / upem * tc.PtSize() * tc.DPI() / 72
}

func (m *Measurer) font(sf *font.ScalableFont) (*hb.Font, error) {
	if f, ok := m.fonts[sf]; ok {
		return f, nil
	}
	face, err := hbtt.Parse(bytes.NewReader(sf.Binary), true)
	if err != nil {
		return nil, err
	}
	f := hb.NewFont(face)
	m.fonts[sf] = f
	return f, nil
}
