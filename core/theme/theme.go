/*
Package theme resolves the symbolic colour slots and typefaces of a workbook theme.

Every theme assigns concrete colours to twelve slots and names a major (headings)
and a minor (body) latin typeface. Resolution always starts from one of the
built-in themes; colour and font elements read from a workbook then replace the
built-in values one field at a time. Missing or unreadable elements keep their
built-in value, so every slot resolves to some colour.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sheetmetrics/core/color"
)

// tracer traces with key 'sheetmetrics.theme'.
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.theme")
}

// Slot is one of the twelve colour roles of a theme.
type Slot int

// Colour slots, in the order of a theme's colour scheme.
const (
	Dark1 Slot = iota
	Light1
	Dark2
	Light2
	Accent1
	Accent2
	Accent3
	Accent4
	Accent5
	Accent6
	Hyperlink
	FollowedHyperlink
	SlotCount
)

var slotNames = [SlotCount]string{
	"dk1", "lt1", "dk2", "lt2", "accent1", "accent2", "accent3",
	"accent4", "accent5", "accent6", "hlink", "folHlink",
}

func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return "<invalid slot>"
	}
	return slotNames[s]
}

// SlotForIndex maps a theme colour index, as used by the theme attribute of
// colours in styles, to a slot. The first two pairs are swapped there: index 0
// is Light1 and index 1 is Dark1, index 2 is Light2 and index 3 is Dark2.
func SlotForIndex(index int) (Slot, bool) {
	switch index {
	case 0:
		return Light1, true
	case 1:
		return Dark1, true
	case 2:
		return Light2, true
	case 3:
		return Dark2, true
	}
	if index < 0 || index >= int(SlotCount) {
		return 0, false
	}
	return Slot(index), true
}

// Theme is a set of resolved theme colours and typefaces.
type Theme struct {
	Name      string
	Colors    [SlotCount]color.ARGB
	MajorFont string // latin typeface for headings
	MinorFont string // latin typeface for body text, the default cell font
}

// Resolve returns the colour of a slot. Invalid slots resolve to black.
func (t Theme) Resolve(slot Slot) color.ARGB {
	if slot < 0 || slot >= SlotCount {
		return color.Black
	}
	return t.Colors[slot]
}

// ResolveTinted returns the colour of a slot with a tint applied.
func (t Theme) ResolveTinted(slot Slot, tint float64) color.ARGB {
	return color.ApplyTint(t.Resolve(slot), tint)
}

// ColorElement is a colour definition as found in a theme's colour scheme.
// A colour is given either as an explicit RGB value or as a system colour,
// optionally with the last value the system colour had when the file was saved.
type ColorElement struct {
	SrgbVal    string
	SysVal     string
	SysLastClr string
}

// Elements is the theme data read from a workbook. Nil colour entries and
// empty typeface names denote missing elements.
type Elements struct {
	Name       string
	Colors     [SlotCount]*ColorElement
	MajorLatin string
	MinorLatin string
}

// Load creates a theme from the built-in theme base, overlaid with the elements
// found in el. el may be nil.
func Load(base ID, el *Elements) Theme {
	t := Builtin(base)
	if el == nil {
		return t
	}
	if el.Name != "" {
		t.Name = el.Name
	}
	for slot, ce := range el.Colors {
		if c, ok := ce.resolve(); ok {
			t.Colors[slot] = c
		} else if ce != nil {
			tracer().Debugf("theme colour %s unresolvable, keeping %s", Slot(slot), t.Colors[slot])
		}
	}
	if el.MajorLatin != "" {
		t.MajorFont = el.MajorLatin
	}
	if el.MinorLatin != "" {
		t.MinorFont = el.MinorLatin
	}
	return t
}

func (ce *ColorElement) resolve() (color.ARGB, bool) {
	if ce == nil {
		return color.ARGB{}, false
	}
	if ce.SrgbVal != "" {
		return color.ParseHexColor(ce.SrgbVal), true
	}
	if ce.SysLastClr != "" {
		return color.ParseHexColor(ce.SysLastClr), true
	}
	if hex, ok := systemColors[strings.ToLower(ce.SysVal)]; ok {
		return color.ParseHexColor(hex), true
	}
	return color.ARGB{}, false
}

// systemColors holds the usual values of the system colours referenced by themes,
// keyed by lower-case name.
var systemColors = map[string]string{
	"windowtext":      "000000",
	"window":          "FFFFFF",
	"menutext":        "000000",
	"menu":            "F0F0F0",
	"btntext":         "000000",
	"btnface":         "F0F0F0",
	"btnshadow":       "A0A0A0",
	"btnhighlight":    "FFFFFF",
	"highlight":       "0078D7",
	"highlighttext":   "FFFFFF",
	"graytext":        "6D6D6D",
	"captiontext":     "000000",
	"infotext":        "000000",
	"infobk":          "FFFFE1",
	"windowframe":     "646464",
	"activecaption":   "99B4D1",
	"inactivecaption": "BFCDDB",
	"hotlight":        "0066CC",
	"3ddkshadow":      "696969",
	"3dlight":         "E3E3E3",
	"appworkspace":    "ABABAB",
	"background":      "000000",
	"scrollbar":       "C8C8C8",
	"menubar":         "F0F0F0",
	"menuhighlight":   "3399FF",
	"activeborder":    "B4B4B4",
	"inactiveborder":  "F4F7FC",
}
