package color

// Palette is a list of legacy indexed colours.
type Palette []ARGB

// System colour indices of the legacy palette.
const (
	SystemForeground = 64
	SystemBackground = 65
)

// defaultPalette is the legacy palette used when a workbook does not carry its own.
var defaultPalette = Palette{
	// 0–7: fixed colours
	Opaque(0x00, 0x00, 0x00), Opaque(0xFF, 0xFF, 0xFF), Opaque(0xFF, 0x00, 0x00), Opaque(0x00, 0xFF, 0x00),
	Opaque(0x00, 0x00, 0xFF), Opaque(0xFF, 0xFF, 0x00), Opaque(0xFF, 0x00, 0xFF), Opaque(0x00, 0xFF, 0xFF),
	// 8–63: user-modifiable colours
	Opaque(0x00, 0x00, 0x00), Opaque(0xFF, 0xFF, 0xFF), Opaque(0xFF, 0x00, 0x00), Opaque(0x00, 0xFF, 0x00),
	Opaque(0x00, 0x00, 0xFF), Opaque(0xFF, 0xFF, 0x00), Opaque(0xFF, 0x00, 0xFF), Opaque(0x00, 0xFF, 0xFF),
	Opaque(0x80, 0x00, 0x00), Opaque(0x00, 0x80, 0x00), Opaque(0x00, 0x00, 0x80), Opaque(0x80, 0x80, 0x00),
	Opaque(0x80, 0x00, 0x80), Opaque(0x00, 0x80, 0x80), Opaque(0xC0, 0xC0, 0xC0), Opaque(0x80, 0x80, 0x80),
	Opaque(0x99, 0x99, 0xFF), Opaque(0x99, 0x33, 0x66), Opaque(0xFF, 0xFF, 0xCC), Opaque(0xCC, 0xFF, 0xFF),
	Opaque(0x66, 0x00, 0x66), Opaque(0xFF, 0x80, 0x80), Opaque(0x00, 0x66, 0xCC), Opaque(0xCC, 0xCC, 0xFF),
	Opaque(0x00, 0x00, 0x80), Opaque(0xFF, 0x00, 0xFF), Opaque(0xFF, 0xFF, 0x00), Opaque(0x00, 0xFF, 0xFF),
	Opaque(0x80, 0x00, 0x80), Opaque(0x80, 0x00, 0x00), Opaque(0x00, 0x80, 0x80), Opaque(0x00, 0x00, 0xFF),
	Opaque(0x00, 0xCC, 0xFF), Opaque(0xCC, 0xFF, 0xFF), Opaque(0xCC, 0xFF, 0xCC), Opaque(0xFF, 0xFF, 0x99),
	Opaque(0x99, 0xCC, 0xFF), Opaque(0xFF, 0x99, 0xCC), Opaque(0xCC, 0x99, 0xFF), Opaque(0xFF, 0xCC, 0x99),
	Opaque(0x33, 0x66, 0xFF), Opaque(0x33, 0xCC, 0xCC), Opaque(0x99, 0xCC, 0x00), Opaque(0xFF, 0xCC, 0x00),
	Opaque(0xFF, 0x99, 0x00), Opaque(0xFF, 0x66, 0x00), Opaque(0x66, 0x66, 0x99), Opaque(0x96, 0x96, 0x96),
	Opaque(0x00, 0x33, 0x66), Opaque(0x33, 0x99, 0x66), Opaque(0x00, 0x33, 0x00), Opaque(0x33, 0x33, 0x00),
	Opaque(0x99, 0x33, 0x00), Opaque(0x99, 0x33, 0x66), Opaque(0x33, 0x33, 0x99), Opaque(0x33, 0x33, 0x33),
	// 64, 65: system foreground and background
	Black, White,
}

// DefaultPalette returns a copy of the 66-entry legacy default palette.
func DefaultPalette() Palette {
	p := make(Palette, len(defaultPalette))
	copy(p, defaultPalette)
	return p
}

// NewPalette creates a palette from colours read from a workbook.
// If colours is empty, the default palette is used.
func NewPalette(colours []ARGB) Palette {
	if len(colours) == 0 {
		return DefaultPalette()
	}
	p := make(Palette, len(colours))
	copy(p, colours)
	return p
}

// Lookup returns the colour for a palette index. Indices 64 and 65 always denote
// the system foreground (black) and background (white). Indices not covered by p
// are looked up in the default palette.
func (p Palette) Lookup(index int) (ARGB, bool) {
	switch {
	case index == SystemForeground:
		return Black, true
	case index == SystemBackground:
		return White, true
	case index < 0:
		return ARGB{}, false
	case index < len(p):
		return p[index], true
	case index < len(defaultPalette):
		return defaultPalette[index], true
	}
	return ARGB{}, false
}
