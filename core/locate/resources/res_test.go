package resources

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontDir creates a font directory holding the Go fonts under a made-up
// typeface name.
func fontDir(t *testing.T, typeface string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, typeface+"-Regular.ttf"), goregular.TTF, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, typeface+"-Bold.ttf"), gobold.TTF, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("no font"), 0644))
	return dir
}

func testResolver(t *testing.T, conf testconfig.Conf) *Resolver {
	r := NewResolver(conf)
	r.system = nil // do not depend on the fonts of the test host
	return r
}

func TestResolveFromFontpath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.resources")
	defer teardown()
	//
	r := testResolver(t, testconfig.Conf{"fontpath": fontDir(t, "Testface")})
	assert.Len(t, r.Descriptors(), 2)
	tc, err := r.ResolveTypeCase("Testface", font.Bold, 11, 96)
	require.NoError(t, err)
	require.NotNil(t, tc)
	defer tc.Close()
	assert.True(t, strings.HasSuffix(tc.ScalableFontParent().Filepath, "Testface-Bold.ttf"))
}

func TestResolveStyleFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.resources")
	defer teardown()
	//
	r := testResolver(t, testconfig.Conf{"fontpath": fontDir(t, "Otherface")})
	tc, err := r.ResolveTypeCase("Otherface", font.BoldItalic, 11, 96)
	require.NotNil(t, tc)
	defer tc.Close()
	assert.Equal(t, core.EFALLBACK, core.Code(err))
	assert.True(t, strings.HasSuffix(tc.ScalableFontParent().Filepath, "Otherface-Regular.ttf"))
}

func TestResolveMissingTypeface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.resources")
	defer teardown()
	//
	r := testResolver(t, nil)
	tc, err := r.ResolveTypeCase("No Such Typeface", font.Italic, 11, 96)
	require.NotNil(t, tc)
	defer tc.Close()
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, "Go Italic", tc.ScalableFontParent().Fontname)
	assert.Contains(t, core.UserMessage(err), "No Such Typeface")
}

func TestParseFontConfigList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.resources")
	defer teardown()
	//
	list := `/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold
/usr/share/fonts/truetype/dejavu/DejaVuSans-Oblique.ttf: DejaVu Sans:style=Oblique
/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc: Noto Sans CJK JP,Noto Sans CJK KR:style=Regular
/usr/share/fonts/truetype/msttcorefonts/Arial.ttf: Arial,Arial:style=Regular,Normal

`
	descs, err := parseFontConfigList(strings.NewReader(list))
	require.NoError(t, err)
	require.Len(t, descs, 3)
	assert.Equal(t, "dejavusans", descs[0].Family)
	assert.Equal(t, font.Bold, descs[0].Variant)
	assert.Equal(t, font.Italic, descs[1].Variant)
	assert.Equal(t, "arial", descs[2].Family)
	assert.Equal(t, font.Regular, descs[2].Variant)
	assert.True(t, matches(descs[2], "Arial", font.Regular))
	assert.False(t, matches(descs[2], "Arial Narrow", font.Regular))
}

func TestFontConfigNotConfigured(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.resources")
	defer teardown()
	//
	_, ok := loadFontConfigList(testconfig.Conf{})
	assert.False(t, ok)
	_, ok = loadFontConfigList(testconfig.Conf{"fontconfig": "relative/fc-list"})
	assert.False(t, ok)
}
