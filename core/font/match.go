package font

import (
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
)

// Descriptor describes a font file found on the host.
type Descriptor struct {
	Family  string // family key, see FamilyKey
	Path    string
	Variant Variant
}

// DescriptorFromPath guesses family and variant of a font from its file name.
func DescriptorFromPath(fontfile string) Descriptor {
	v := GuessVariant(fontfile)
	return Descriptor{
		Family:  FamilyKey(stripStyleWords(baseName(fontfile))),
		Path:    fontfile,
		Variant: v,
	}
}

// FamilyKey normalizes a typeface name for comparison: lower case, without
// blanks, hyphens and underscores.
func FamilyKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, name)
}

// NormalizeFontname creates a key for a typeface variant.
func NormalizeFontname(fname string, v Variant) string {
	key := FamilyKey(fname)
	if v.IsItalic() {
		key += "-italic"
	}
	if v.IsBold() {
		key += "-bold"
	}
	return key
}

// GuessVariant tries to guess a font's style and weight from the font's file name.
func GuessVariant(fontfilename string) Variant {
	base := baseName(fontfilename)
	s := strings.Split(base, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "normal", "medium", "regular", "r", "light", "xlight":
			return Regular
		case "bold", "b", "xbold", "black":
			return Bold
		}
	}
	v := Regular
	if strings.Contains(base, "italic") || strings.Contains(base, "oblique") {
		v.Style = xfont.StyleItalic
	}
	if strings.Contains(base, "bold") {
		v.Weight = xfont.WeightBold
	}
	return v
}

// Matches returns true if a font's file name belongs to typeface family and
// indicates variant v. Abbreviated file names in the style of 'arialbd.ttf' are
// recognized as well.
func Matches(fontfilename, family string, v Variant) bool {
	d := DescriptorFromPath(fontfilename)
	want := FamilyKey(family)
	if d.Family == want {
		return d.Variant == v
	}
	if !strings.HasPrefix(d.Family, want) {
		return false
	}
	abbr, ok := abbreviations[d.Family[len(want):]]
	return ok && abbr == v
}

var abbreviations = map[string]Variant{
	"b":  Bold,
	"bd": Bold,
	"i":  Italic,
	"it": Italic,
	"bi": BoldItalic,
	"z":  BoldItalic,
}

var styleWords = []string{"bolditalic", "boldoblique", "semibold", "bold", "italic", "oblique", "regular"}

func stripStyleWords(base string) string {
	for _, w := range styleWords {
		base = strings.ReplaceAll(base, w, "")
	}
	return strings.Trim(base, " -_")
}

func baseName(fontfile string) string {
	base := filepath.Base(fontfile)
	base = base[:len(base)-len(filepath.Ext(base))]
	return strings.ToLower(base)
}
