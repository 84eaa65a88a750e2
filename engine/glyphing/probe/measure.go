package probe

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/engine/glyphing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ExtentMeasurer measures the advance width of a run of glyphs, as a text
// layout engine would.
type ExtentMeasurer struct{}

var _ glyphing.GlyphRunMeasurer = ExtentMeasurer{}

// MeasureGlyphRun returns the advance of text in pixels, kerning included.
func (ExtentMeasurer) MeasureGlyphRun(text string, tc *font.TypeCase) float64 {
	if tc == nil || tc.Face() == nil {
		return 0
	}
	return fixedToFloat(xfont.MeasureString(tc.Face(), text))
}

// Raster dimensions and the darkness threshold of the raster scan.
const (
	CanvasSize = 64
	Threshold  = 610 // sum of R, G and B below which a pixel counts as ink
)

// RasterMeasurer draws a run of glyphs onto an offscreen canvas and measures
// the columns containing ink. A RasterMeasurer is not safe for concurrent use.
type RasterMeasurer struct {
	canvas *image.RGBA
	origin fixed.Point26_6
}

var _ glyphing.GlyphRunMeasurer = (*RasterMeasurer)(nil)

// NewRasterMeasurer allocates a white canvas of CanvasSize × CanvasSize pixels.
func NewRasterMeasurer() *RasterMeasurer {
	return &RasterMeasurer{
		canvas: image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize)),
		origin: fixed.P(CanvasSize/8, CanvasSize*3/4),
	}
}

// MeasureGlyphRun draws text in black and returns end − start + 2, where start
// and end are the leftmost and rightmost pixel columns containing ink. Ink
// outside of the canvas is not seen.
func (rm *RasterMeasurer) MeasureGlyphRun(text string, tc *font.TypeCase) float64 {
	if tc == nil || tc.Face() == nil {
		return 0
	}
	draw.Draw(rm.canvas, rm.canvas.Bounds(), image.White, image.Point{}, draw.Src)
	d := xfont.Drawer{
		Dst:  rm.canvas,
		Src:  image.NewUniform(color.Black),
		Face: tc.Face(),
		Dot:  rm.origin,
	}
	d.DrawString(text)
	start, end := -1, -1
	for x := 0; x < CanvasSize && start < 0; x++ {
		if rm.hasInk(x) {
			start = x
		}
	}
	for x := CanvasSize - 1; x >= 0 && end < 0; x-- {
		if rm.hasInk(x) {
			end = x
		}
	}
	if start < 0 {
		return 0
	}
	return float64(end - start + 2)
}

func (rm *RasterMeasurer) hasInk(x int) bool {
	for y := 0; y < CanvasSize; y++ {
		c := rm.canvas.RGBAAt(x, y)
		if int(c.R)+int(c.G)+int(c.B) < Threshold {
			return true
		}
	}
	return false
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
