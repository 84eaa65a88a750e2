package color

import "math"

// RGBFromHSL converts hue (degrees), saturation and luminance (both in [0,1])
// to an opaque colour. Channels are truncated, not rounded.
func RGBFromHSL(hue, saturation, luminance float64) ARGB {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	c := (1 - math.Abs(2*luminance-1)) * saturation
	h := hue / 60
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := luminance - c/2
	return Opaque(channel(r+m), channel(g+m), channel(b+m))
}

func channel(v float64) uint8 {
	n := math.Trunc(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// HSLFromRGB converts the colour channels of c to hue (degrees), saturation
// and luminance. Alpha is ignored.
func HSLFromRGB(c ARGB) (hue, saturation, luminance float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	luminance = (max + min) / 2
	d := max - min
	if d == 0 {
		return 0, 0, luminance
	}
	saturation = d / (1 - math.Abs(2*luminance-1))
	switch max {
	case r:
		hue = 60 * math.Mod((g-b)/d, 6)
	case g:
		hue = 60 * ((b-r)/d + 2)
	default:
		hue = 60 * ((r-g)/d + 4)
	}
	if hue < 0 {
		hue += 360
	}
	return hue, saturation, luminance
}

// ApplyTint lightens (tint > 0) or darkens (tint < 0) c by changing its luminance.
// Tint is clamped to [-1,1]. Hue, saturation and alpha are kept.
func ApplyTint(c ARGB, tint float64) ARGB {
	tint = math.Max(-1, math.Min(1, tint))
	h, s, l := HSLFromRGB(c)
	if tint < 0 {
		l = l * (1 + tint)
	} else {
		l = l*(1-tint) + tint
	}
	t := RGBFromHSL(h, s, l)
	t.A = c.A
	return t
}
