package xlsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/color"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/core/theme"
	"github.com/npillmayer/sheetmetrics/engine/sizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func TestThemeFromWorkbook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.xlsx")
	defer teardown()
	//
	f := excelize.NewFile()
	defer f.Close()
	el := ThemeFromWorkbook(f)
	assert.Equal(t, "Office Theme", el.Name)
	assert.Equal(t, "Calibri", el.MinorLatin)
	assert.Equal(t, "Calibri Light", el.MajorLatin)
	require.NotNil(t, el.Colors[theme.Dark1])
	assert.Equal(t, "windowText", el.Colors[theme.Dark1].SysVal)
	assert.Equal(t, "000000", el.Colors[theme.Dark1].SysLastClr)
	require.NotNil(t, el.Colors[theme.Accent1])
	assert.Equal(t, "5B9BD5", el.Colors[theme.Accent1].SrgbVal)
	for s := theme.Slot(0); s < theme.SlotCount; s++ {
		assert.NotNil(t, el.Colors[s], "slot %s", s)
	}
	//
	th := WorkbookTheme(f)
	assert.Equal(t, color.ParseHexColor("954F72"), th.Resolve(theme.FollowedHyperlink))
	assert.Equal(t, color.ParseHexColor("FFFFFF"), th.Resolve(theme.Light1))
}

func TestThemeOverlaysBuiltin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.xlsx")
	defer teardown()
	//
	f := excelize.NewFile()
	defer f.Close()
	require.NotNil(t, f.Theme)
	accent := "123456"
	f.Theme.ThemeElements.ClrScheme.Accent2.SrgbClr.Val = &accent
	f.Theme.ThemeElements.ClrScheme.Hlink.SrgbClr = nil
	el := ThemeFromWorkbook(f)
	require.NotNil(t, el.Colors[theme.Accent2])
	assert.Equal(t, "123456", el.Colors[theme.Accent2].SrgbVal)
	assert.Nil(t, el.Colors[theme.Hyperlink])
	//
	th := WorkbookTheme(f)
	builtin := theme.Builtin(theme.ForMinorFont("Calibri"))
	assert.Equal(t, color.ParseHexColor("123456"), th.Resolve(theme.Accent2))
	assert.Equal(t, builtin.Resolve(theme.Hyperlink), th.Resolve(theme.Hyperlink))
}

func TestWorkbookWithoutTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.xlsx")
	defer teardown()
	//
	f := excelize.NewFile()
	defer f.Close()
	f.Theme = nil
	el := ThemeFromWorkbook(f)
	assert.Empty(t, el.MinorLatin)
	assert.Nil(t, el.Colors[theme.Accent1])
	th := WorkbookTheme(f)
	assert.Equal(t, theme.Builtin(theme.DefaultID), th)
}

func TestNormalFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.xlsx")
	defer teardown()
	//
	f := excelize.NewFile()
	defer f.Close()
	name, size, v, err := NormalFont(f)
	require.NoError(t, err)
	assert.Equal(t, "Calibri", name)
	assert.Equal(t, 11.0, size)
	assert.Equal(t, font.Regular, v)
}

func TestApplyDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.xlsx")
	defer teardown()
	//
	f := excelize.NewFile()
	defer f.Close()
	sizer := sizing.NewSizer(testconfig.Conf{"system-fonts": "false"})
	r := sizer.Size("Verdana", 10, font.Regular)
	require.NoError(t, ApplyDefaults(f, "Sheet1", r))
	props, err := f.GetSheetProps("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, uint8(8), *props.BaseColWidth)
	assert.Equal(t, r.DefaultColWidth(), *props.DefaultColWidth)
	assert.Equal(t, 12.75, *props.DefaultRowHeight)
	//
	err = ApplyDefaults(f, "NoSuchSheet", r)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestSizeWorkbook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.xlsx")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Calibri.ttf"), goregular.TTF, 0644))
	sizer := sizing.NewSizer(testconfig.Conf{"fontpath": dir, "system-fonts": "false"})
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	r, err := SizeWorkbook(f, sizer)
	require.NoError(t, err)
	assert.Equal(t, "Calibri", r.Metrics.Typeface)
	assert.Equal(t, 11.0, r.Metrics.Size)
	assert.Equal(t, 15.0, r.Row.Points)
	for _, sheet := range []string{"Sheet1", "Second"} {
		props, err := f.GetSheetProps(sheet)
		require.NoError(t, err)
		assert.Equal(t, r.DefaultColWidth(), *props.DefaultColWidth, "sheet %s", sheet)
		assert.Equal(t, 15.0, *props.DefaultRowHeight, "sheet %s", sheet)
	}
}
