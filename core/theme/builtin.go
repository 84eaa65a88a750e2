package theme

import (
	"github.com/npillmayer/sheetmetrics/core/color"
)

// ID identifies a built-in theme.
type ID int

// Built-in themes. Each release generation of the common office suites changed
// the default theme.
const (
	Office2007 ID = iota // Office 2007–2010
	Office2013           // Office 2013–2022
	Office2023           // Office 2023 and later
)

// DefaultID is the theme assumed for workbooks which carry no theme part.
const DefaultID = Office2013

type builtinTheme struct {
	name   string
	colors [SlotCount]string
	major  string
	minor  string
}

var builtins = map[ID]builtinTheme{
	Office2007: {
		name: "Office Theme 2007",
		colors: [SlotCount]string{
			"000000", "FFFFFF", "1F497D", "EEECE1",
			"4F81BD", "C0504D", "9BBB59", "8064A2", "4BACC6", "F79646",
			"0000FF", "800080",
		},
		major: "Cambria",
		minor: "Calibri",
	},
	Office2013: {
		name: "Office Theme",
		colors: [SlotCount]string{
			"000000", "FFFFFF", "44546A", "E7E6E6",
			"5B9BD5", "ED7D31", "A5A5A5", "FFC000", "4472C4", "70AD47",
			"0563C1", "954F72",
		},
		major: "Calibri Light",
		minor: "Calibri",
	},
	Office2023: {
		name: "Office Theme 2023",
		colors: [SlotCount]string{
			"000000", "FFFFFF", "0E2841", "E8E8E8",
			"156082", "E97132", "196B24", "0F9ED5", "A02B93", "4EA72E",
			"467886", "96607D",
		},
		major: "Aptos Display",
		minor: "Aptos Narrow",
	},
}

// Builtin returns a built-in theme. Unknown IDs return the DefaultID theme.
func Builtin(id ID) Theme {
	b, ok := builtins[id]
	if !ok {
		b = builtins[DefaultID]
	}
	t := Theme{Name: b.name, MajorFont: b.major, MinorFont: b.minor}
	for i, hex := range b.colors {
		t.Colors[i] = color.ParseHexColor(hex)
	}
	return t
}

// ForMinorFont guesses the built-in theme a workbook was created with from its
// body typeface. Unrecognized typefaces return DefaultID.
func ForMinorFont(typeface string) ID {
	if builtins[DefaultID].minor == typeface {
		return DefaultID
	}
	for _, id := range []ID{Office2023, Office2007} {
		if builtins[id].minor == typeface {
			return id
		}
	}
	return DefaultID
}
