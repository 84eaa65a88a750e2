package xlsx

import (
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/core/theme"
	"github.com/npillmayer/sheetmetrics/engine/sizing"
	"github.com/xuri/excelize/v2"
)

// ThemeFromWorkbook reads the colour scheme and the latin typefaces of the
// theme excelize decoded for f. Workbooks without a theme yield empty elements.
func ThemeFromWorkbook(f *excelize.File) theme.Elements {
	var el theme.Elements
	if f == nil || f.Theme == nil {
		tracer().Debugf("workbook has no theme")
		return el
	}
	el.Name = f.Theme.Name
	fs := f.Theme.ThemeElements.FontScheme
	if fs.MajorFont.Latin != nil {
		el.MajorLatin = fs.MajorFont.Latin.Typeface
	}
	if fs.MinorFont.Latin != nil {
		el.MinorLatin = fs.MinorFont.Latin.Typeface
	}
	cs := f.Theme.ThemeElements.ClrScheme
	// in slot order
	colors := inOrder(cs.Dk1, cs.Lt1, cs.Dk2, cs.Lt2, cs.Accent1, cs.Accent2, cs.Accent3,
		cs.Accent4, cs.Accent5, cs.Accent6, cs.Hlink, cs.FolHlink)
	for i, c := range colors {
		ce := &theme.ColorElement{}
		if c.SrgbClr != nil && c.SrgbClr.Val != nil {
			ce.SrgbVal = *c.SrgbClr.Val
		}
		if c.SysClr != nil {
			ce.SysVal, ce.SysLastClr = c.SysClr.Val, c.SysClr.LastClr
		}
		if *ce == (theme.ColorElement{}) {
			tracer().Debugf("theme colour %s has no srgb or system value", theme.Slot(i))
			continue
		}
		el.Colors[theme.Slot(i)] = ce
	}
	return el
}

// inOrder collects colour elements, whose type excelize does not export.
func inOrder[C any](c ...C) []C {
	return c
}

// WorkbookTheme resolves the theme of f, starting from the built-in theme
// which uses the same body typeface.
func WorkbookTheme(f *excelize.File) theme.Theme {
	el := ThemeFromWorkbook(f)
	return theme.Load(theme.ForMinorFont(el.MinorLatin), &el)
}

// NormalFont returns the typeface, size and variant of the Normal style of f.
func NormalFont(f *excelize.File) (string, float64, font.Variant, error) {
	name, err := f.GetDefaultFont()
	if err != nil {
		return "", 0, font.Regular, core.WrapError(err, core.EMISSING, "workbook has no default font")
	}
	size, v := 0.0, font.Regular
	if f.Styles != nil && f.Styles.Fonts != nil && len(f.Styles.Fonts.Font) > 0 {
		normal := f.Styles.Fonts.Font[0]
		if normal.Sz != nil && normal.Sz.Val != nil {
			size = *normal.Sz.Val
		}
		bold := normal.B != nil && (normal.B.Val == nil || *normal.B.Val)
		italic := normal.I != nil && (normal.I.Val == nil || *normal.I.Val)
		v = font.VariantOf(bold, italic)
	}
	return name, size, v, nil
}

// ApplyDefaults writes the default column width and row height of r into the
// sheet format properties of sheet.
func ApplyDefaults(f *excelize.File, sheet string, r sizing.Result) error {
	base := uint8(r.BaseColWidth())
	width := r.DefaultColWidth()
	height := r.Row.Points
	err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{
		BaseColWidth:     &base,
		DefaultColWidth:  &width,
		DefaultRowHeight: &height,
	})
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot set defaults of sheet %q", sheet)
	}
	tracer().Debugf("sheet %q: column width %.4f, row height %.2f", sheet, width, height)
	return nil
}

// SizeWorkbook measures the body typeface of f and applies the derived
// defaults to every sheet. The body typeface is the minor font of the
// theme, or the font of the Normal style if the theme names none.
func SizeWorkbook(f *excelize.File, sizer *sizing.Sizer) (sizing.Result, error) {
	typeface, size, v, err := NormalFont(f)
	if err != nil {
		tracer().Infof("%v", err)
	}
	if minor := ThemeFromWorkbook(f).MinorLatin; minor != "" {
		typeface = minor
	}
	r := sizer.Size(typeface, size, v)
	tracer().Infof("workbook typeface %q at %gpt: max digit width %d px",
		r.Metrics.Typeface, r.Metrics.Size, r.Metrics.MaxDigitWidth)
	for _, sheet := range f.GetSheetList() {
		if err := ApplyDefaults(f, sheet, r); err != nil {
			return r, err
		}
	}
	return r, nil
}
