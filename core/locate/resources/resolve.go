package resources

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/core/font/fontregistry"
)

// FallbackOrder is the order in which variants of a typeface are tried after
// the requested one.
var FallbackOrder = []font.Variant{font.Regular, font.Bold, font.Italic, font.BoldItalic}

// Resolver finds font files and prepares typecases from them.
type Resolver struct {
	conf     schuko.Configuration
	registry *fontregistry.Registry
	listing  sync.Once
	fonts    []font.Descriptor
	system   func() []string // lists the platform's font files
}

// NewResolver creates a resolver, configured by conf. conf may be nil.
// Setting configuration key 'system-fonts' to false restricts the resolver to
// the directories of 'fontpath' and to fontconfig.
func NewResolver(conf schuko.Configuration) *Resolver {
	r := &Resolver{
		conf:     conf,
		registry: fontregistry.GlobalRegistry(),
		system:   findfont.List,
	}
	if conf != nil && conf.IsSet("system-fonts") && !conf.GetBool("system-fonts") {
		r.system = nil
	}
	return r
}

// ResolveTypeCase resolves a typecase for typeface in variant v with a given
// size and display resolution. It never returns a nil typecase.
//
// If the variant is not installed, the variants of FallbackOrder are tried
// and an error of code core.EFALLBACK is returned along with the typecase.
// If the typeface is not installed at all, a Go font is used and the error
// has code core.EMISSING. The caller has to close the typecase.
func (r *Resolver) ResolveTypeCase(typeface string, v font.Variant, size, dpi float64) (*font.TypeCase, error) {
	tried := map[font.Variant]bool{}
	for _, cand := range append([]font.Variant{v}, FallbackOrder...) {
		if tried[cand] {
			continue
		}
		tried[cand] = true
		f, ok := r.load(typeface, cand)
		if !ok {
			continue
		}
		tc, err := f.PrepareCase(size, dpi)
		if err != nil {
			tracer().Errorf("cannot scale font %s: %v", f.Fontname, err)
			continue
		}
		if cand != v {
			err = core.Error(core.EFALLBACK, "%s %s not installed, using %s", typeface, v, cand)
			tracer().Infof("%v", err)
			return tc, err
		}
		tracer().Debugf("resolved %s %s to %s", typeface, v, f.Filepath)
		return tc, nil
	}
	tc, err := r.registry.TypeCase(font.NormalizeFontname("fallback", v), v, size, dpi)
	if tc == nil {
		// cannot happen for the embedded Go fonts
		panic(core.WrapError(err, core.EINTERNAL, "fallback font unusable"))
	}
	err = core.Error(core.EMISSING, "typeface %s not installed, using %s",
		typeface, tc.ScalableFontParent().Fontname)
	tracer().Infof("%v", err)
	return tc, err
}

// load returns the font for typeface in variant v, from the registry if it
// has been loaded before.
func (r *Resolver) load(typeface string, v font.Variant) (*font.ScalableFont, bool) {
	key := font.NormalizeFontname(typeface, v)
	if f, ok := r.registry.Font(key); ok {
		return f, true
	}
	for _, d := range r.Descriptors() {
		if !matches(d, typeface, v) {
			continue
		}
		f, err := font.LoadOpenTypeFont(d.Path)
		if err != nil {
			tracer().Debugf("skipping font file %s: %v", d.Path, err)
			continue
		}
		r.registry.StoreFont(key, f)
		return f, true
	}
	return nil, false
}

func matches(d font.Descriptor, typeface string, v font.Variant) bool {
	if d.Family == font.FamilyKey(typeface) {
		return d.Variant == v
	}
	return font.Matches(d.Path, typeface, v)
}

// Descriptors lists the font files the resolver knows of. The list is
// collected once per resolver.
func (r *Resolver) Descriptors() []font.Descriptor {
	r.listing.Do(func() {
		for _, dir := range r.fontpath() {
			r.fonts = append(r.fonts, walkFontDir(dir)...)
		}
		if r.conf != nil {
			if fc, ok := loadFontConfigList(r.conf); ok {
				r.fonts = append(r.fonts, fc...)
			}
		}
		if r.system != nil {
			for _, p := range r.system() {
				r.fonts = append(r.fonts, font.DescriptorFromPath(p))
			}
		}
		tracer().Debugf("resolver knows %d font files", len(r.fonts))
	})
	return r.fonts
}

func (r *Resolver) fontpath() []string {
	if r.conf == nil || r.conf.GetString("fontpath") == "" {
		return nil
	}
	return filepath.SplitList(r.conf.GetString("fontpath"))
}

func walkFontDir(dir string) []font.Descriptor {
	var descs []font.Descriptor
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
			descs = append(descs, font.DescriptorFromPath(path))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("cannot read font directory %s: %v", dir, err)
	}
	return descs
}
