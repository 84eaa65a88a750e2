package resources

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/font"
	xfont "golang.org/x/image/font"
)

func findFontConfigBinary(conf schuko.Configuration) (path string, err error) {
	path = conf.GetString("fontconfig")
	if path == "" {
		tracer().Infof("fontconfig not configured: key 'fontconfig' should point to location of 'fc-list' binary")
		err = errors.New("fontconfig not configured")
	}
	return
}

// loadFontConfigList lists the installed fonts using the fontconfig system
// (https://www.freedesktop.org/wiki/Software/fontconfig/).
// fontconfig has to be configured by setting the absolute path of the
// 'fc-list' binary as configuration key 'fontconfig'.
//
// We call the binary instead of using the C library because of possible version
// issues. If fontconfig is not configured, loadFontConfigList silently returns
// an empty list.
func loadFontConfigList(conf schuko.Configuration) ([]font.Descriptor, bool) {
	fcpath, err := findFontConfigBinary(conf)
	if err != nil {
		return nil, false
	}
	if !filepath.IsAbs(fcpath) {
		err = core.Error(core.EINVALID, "fontconfig binary fc-list must point to absolute path: %s", fcpath)
		tracer().Errorf("%s", core.UserMessage(err))
		return nil, false
	}
	if fi, err := os.Stat(fcpath); err != nil || (fi.Mode().Perm()&0100) == 0 {
		err = core.WrapError(err, core.EINVALID,
			"fontconfig configuration points to an invalid binary: %s", fcpath)
		tracer().Errorf("%s", core.UserMessage(err))
		return nil, false
	}
	var out bytes.Buffer
	fccmd := exec.Command(fcpath, ":", "file", "family", "style")
	fccmd.Stdout = &out
	if err = fccmd.Run(); err != nil {
		err = core.WrapError(err, core.EINVALID, "fontconfig binary failed: %s", fcpath)
		tracer().Errorf("%s", core.UserMessage(err))
		return nil, false
	}
	descs, err := parseFontConfigList(&out)
	if err != nil {
		tracer().Errorf("encountered a problem during reading of fontconfig font list: %v", err)
	}
	return descs, err == nil
}

// parseFontConfigList reads lines of the form
//
//	/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold
//
// Font collections (*.ttc) are skipped.
func parseFontConfigList(r io.Reader) ([]font.Descriptor, error) {
	var descs []font.Descriptor
	ttc := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fontpath, rest, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		if strings.HasSuffix(strings.ToLower(fontpath), ".ttc") {
			ttc++
			continue
		}
		family, style, _ := strings.Cut(rest, ":style=")
		family, _, _ = strings.Cut(family, ",") // first of localized names
		family = strings.TrimPrefix(strings.TrimSpace(family), ".")
		style, _, _ = strings.Cut(style, ",")
		descs = append(descs, font.Descriptor{
			Family:  font.FamilyKey(family),
			Path:    fontpath,
			Variant: variantFromStyle(style),
		})
	}
	if ttc > 0 {
		tracer().Infof("skipping %d platform fonts: TTC not supported", ttc)
	}
	return descs, scanner.Err()
}

func variantFromStyle(style string) font.Variant {
	style = strings.ToLower(style)
	v := font.Regular
	if strings.Contains(style, "italic") || strings.Contains(style, "oblique") {
		v.Style = xfont.StyleItalic
	}
	if strings.Contains(style, "bold") || strings.Contains(style, "black") || strings.Contains(style, "heavy") {
		v.Weight = xfont.WeightBold
	}
	return v
}
