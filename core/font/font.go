package font

import (
	"errors"
	"fmt"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Variant is one of the four variants of a typeface spreadsheet styles know of.
type Variant struct {
	Style  xfont.Style
	Weight xfont.Weight
}

// The variants of a typeface.
var (
	Regular    = Variant{xfont.StyleNormal, xfont.WeightNormal}
	Bold       = Variant{xfont.StyleNormal, xfont.WeightBold}
	Italic     = Variant{xfont.StyleItalic, xfont.WeightNormal}
	BoldItalic = Variant{xfont.StyleItalic, xfont.WeightBold}
)

// VariantOf returns the variant for the bold and italic flags of a cell style.
func VariantOf(bold, italic bool) Variant {
	v := Regular
	if bold {
		v.Weight = xfont.WeightBold
	}
	if italic {
		v.Style = xfont.StyleItalic
	}
	return v
}

// IsBold is true for semi-bold and heavier weights.
func (v Variant) IsBold() bool {
	return v.Weight >= xfont.WeightSemiBold
}

// IsItalic is true for italic and oblique styles.
func (v Variant) IsItalic() bool {
	return v.Style != xfont.StyleNormal
}

func (v Variant) String() string {
	switch {
	case v.IsBold() && v.IsItalic():
		return "bold italic"
	case v.IsBold():
		return "bold"
	case v.IsItalic():
		return "italic"
	}
	return "regular"
}

// ScalableFont is a parsed font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, or "internal" for embedded fonts
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a font scaled to a size at a display resolution. Clients must
// call Close when done with it.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
	dpi                float64
}

// LoadOpenTypeFont loads and parses a TrueType or OpenType font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the bytes of a font file.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// Family returns the font's family name as stored in the font file.
func (sf *ScalableFont) Family() string {
	if sf.SFNT == nil {
		return ""
	}
	family, err := sf.SFNT.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return family
}

// PrepareCase scales the font to fontsize points at a resolution of dpi.
// Sizes outside of 1pt…409pt are set to 11pt.
func (sf *ScalableFont) PrepareCase(fontsize, dpi float64) (*TypeCase, error) {
	if sf == nil || sf.SFNT == nil {
		return nil, errors.New("cannot prepare a typecase from a null font")
	}
	if fontsize < 1.0 || fontsize > 409.0 {
		tracer().Infof("font size must be 1pt ≤ size ≤ 409pt, is %g (set to 11pt)", fontsize)
		fontsize = 11.0
	}
	if dpi <= 0 {
		dpi = 96
	}
	face, err := opentype.NewFace(sf.SFNT, &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &TypeCase{
		scalableFontParent: sf,
		face:               face,
		size:               fontsize,
		dpi:                dpi,
	}, nil
}

// ScalableFontParent returns the font tc has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the scaled face for measuring and drawing.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// PtSize returns the size of tc in points.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// DPI returns the display resolution tc has been scaled for.
func (tc *TypeCase) DPI() float64 {
	return tc.dpi
}

// Close releases the face of tc.
func (tc *TypeCase) Close() error {
	if tc == nil || tc.face == nil {
		return nil
	}
	err := tc.face.Close()
	tc.face = nil
	return err
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. We use the Go fonts, which are sans-serif and come in all
// four variants.
func FallbackFont(v Variant) *ScalableFont {
	name, ttf := "Go Regular", goregular.TTF
	switch {
	case v.IsBold() && v.IsItalic():
		name, ttf = "Go Bold Italic", gobolditalic.TTF
	case v.IsBold():
		name, ttf = "Go Bold", gobold.TTF
	case v.IsItalic():
		name, ttf = "Go Italic", goitalic.TTF
	}
	f, err := ParseOpenTypeFont(ttf)
	if err != nil {
		panic("cannot load fallback font") // this cannot happen
	}
	f.Fontname = name
	f.Filepath = "internal"
	return f
}
