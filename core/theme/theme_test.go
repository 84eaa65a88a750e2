package theme

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheetmetrics/core/color"
	"github.com/stretchr/testify/assert"
)

func TestBuiltinThemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.theme")
	defer teardown()
	//
	th := Builtin(Office2013)
	assert.Equal(t, "Calibri", th.MinorFont)
	assert.Equal(t, "Calibri Light", th.MajorFont)
	assert.Equal(t, color.Black, th.Resolve(Dark1))
	assert.Equal(t, color.White, th.Resolve(Light1))
	assert.Equal(t, "5B9BD5", th.Resolve(Accent1).RGBHex())
	assert.Equal(t, "954F72", th.Resolve(FollowedHyperlink).RGBHex())
	//
	th = Builtin(Office2007)
	assert.Equal(t, "1F497D", th.Resolve(Dark2).RGBHex())
	assert.Equal(t, "Cambria", th.MajorFont)
	//
	th = Builtin(Office2023)
	assert.Equal(t, "Aptos Narrow", th.MinorFont)
	assert.Equal(t, "467886", th.Resolve(Hyperlink).RGBHex())
	//
	assert.Equal(t, Builtin(DefaultID), Builtin(ID(99)))
	assert.Equal(t, color.Black, th.Resolve(SlotCount))
}

func TestLoadOverlaysFieldByField(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.theme")
	defer teardown()
	//
	el := &Elements{MinorLatin: "Verdana"}
	el.Colors[Dark1] = &ColorElement{SysVal: "windowText", SysLastClr: "111111"}
	el.Colors[Light1] = &ColorElement{SysVal: "window"}
	el.Colors[Accent1] = &ColorElement{SrgbVal: "FF0000"}
	el.Colors[Accent2] = &ColorElement{SysVal: "noSuchColour"}
	th := Load(Office2013, el)
	//
	assert.Equal(t, "111111", th.Resolve(Dark1).RGBHex())
	assert.Equal(t, color.White, th.Resolve(Light1))
	assert.Equal(t, "FF0000", th.Resolve(Accent1).RGBHex())
	assert.Equal(t, "ED7D31", th.Resolve(Accent2).RGBHex()) // unresolvable, kept
	assert.Equal(t, "A5A5A5", th.Resolve(Accent3).RGBHex()) // missing, kept
	assert.Equal(t, "Verdana", th.MinorFont)
	assert.Equal(t, "Calibri Light", th.MajorFont)
	//
	assert.Equal(t, Builtin(Office2007), Load(Office2007, nil))
}

func TestSlotForIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.theme")
	defer teardown()
	//
	for index, slot := range map[int]Slot{
		0: Light1, 1: Dark1, 2: Light2, 3: Dark2, 4: Accent1, 9: Accent6,
		10: Hyperlink, 11: FollowedHyperlink,
	} {
		s, ok := SlotForIndex(index)
		assert.True(t, ok)
		assert.Equal(t, slot, s, "index %d", index)
	}
	_, ok := SlotForIndex(12)
	assert.False(t, ok)
	_, ok = SlotForIndex(-1)
	assert.False(t, ok)
	assert.Equal(t, "folHlink", FollowedHyperlink.String())
}

func TestResolveTinted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.theme")
	defer teardown()
	//
	th := Builtin(Office2013)
	assert.Equal(t, color.White, th.ResolveTinted(Accent1, 1))
	assert.Equal(t, color.Black, th.ResolveTinted(Accent1, -1))
	assert.Equal(t, Office2023, ForMinorFont("Aptos Narrow"))
	assert.Equal(t, Office2013, ForMinorFont("Calibri"))
	assert.Equal(t, DefaultID, ForMinorFont("Comic Sans MS"))
}
