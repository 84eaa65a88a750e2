package monospace

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/text/width"
)

// Measurer counts digit cells. Calls to a Measurer are serialized.
type Measurer struct {
	sync.Mutex
	graphemeSplitter *segment.Segmenter
	context          *uax11.Context
	ambiguous        int // cells of an East Asian ambiguous cluster in context
}

// New creates a measurer for a width context. If context is nil, the
// Latin context is used, where ambiguous characters are narrow.
func New(context *uax11.Context) *Measurer {
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	onGraphemes := grapheme.NewBreaker(1)
	return &Measurer{
		graphemeSplitter: segment.NewSegmenter(onGraphemes),
		context:          context,
		ambiguous:        uax11.Width([]byte("±"), context), // U+00B1 is ambiguous
	}
}

// Cells returns the number of digit cells text occupies.
func (m *Measurer) Cells(text string) int {
	if text == "" {
		return 0
	}
	m.Lock()
	defer m.Unlock()
	m.graphemeSplitter.Init(strings.NewReader(text))
	cells := 0
	for m.graphemeSplitter.Next() {
		cells += m.clusterCells(m.graphemeSplitter.Bytes())
	}
	tracer().Debugf("%q occupies %d cells", text, cells)
	return cells
}

// clusterCells classifies a grapheme cluster by the East Asian width of its
// first rune. uax11.Width cannot be used directly for this: it counts every
// rune with an emoji class as wide, and this includes the ASCII digits.
func (m *Measurer) clusterCells(cluster []byte) int {
	r, _ := utf8.DecodeRune(cluster)
	if r == utf8.RuneError {
		return 1
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		return m.ambiguous
	}
	return 1
}

// MeasureGlyphRun returns the extent of text set as if every cell were as
// wide as the digit zero of tc.
func (m *Measurer) MeasureGlyphRun(text string, tc *font.TypeCase) float64 {
	if tc == nil || tc.Face() == nil {
		return 0
	}
	adv, ok := tc.Face().GlyphAdvance('0')
	if !ok {
		return 0
	}
	return float64(m.Cells(text)) * float64(adv) / 64
}
