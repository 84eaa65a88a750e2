package numfmt

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// picture is the parsed form of a number picture such as "#,##0.00%".
type picture struct {
	intZeros  int // '0' placeholders before the decimal point
	intSpaces int // '?' placeholders before the decimal point
	fracMin   int // '0' placeholders after the decimal point
	fracMax   int // all placeholders after the decimal point
	fracQ     int // '?' placeholders after the decimal point
	decimal   bool
	grouping  bool
	scale     int // trailing commas, each divides by 1000
	percent   int
	exponent  bool
	expPlus   bool // "E+" shows the sign of positive exponents
	expDigits int
}

func isPlaceholder(c byte) bool {
	return c == '0' || c == '#' || c == '?'
}

func parsePicture(pic string) picture {
	var p picture
	inFrac, inExp := false, false
	for i := 0; i < len(pic); i++ {
		c := pic[i]
		switch {
		case inExp:
			if c == '0' || c == '#' {
				p.expDigits++
			}
		case c == 'E' || c == 'e':
			p.exponent, inExp = true, true
			if i+1 < len(pic) && pic[i+1] == '+' {
				p.expPlus = true
			}
			i++
		case c == '.':
			if !inFrac {
				p.decimal, inFrac = true, true
			}
		case c == ',':
			if !inFrac && i+1 < len(pic) && isPlaceholder(pic[i+1]) {
				p.grouping = true
			} else {
				p.scale++
			}
		case c == '%':
			p.percent++
		case inFrac && isPlaceholder(c):
			p.fracMax++
			if c == '0' {
				p.fracMin++
			} else if c == '?' {
				p.fracQ++
			}
		case c == '0':
			p.intZeros++
		case c == '?':
			p.intSpaces++
		}
	}
	return p
}

// format renders a non-negative value. It reports false for values it cannot render.
func (p picture) format(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	v *= math.Pow(100, float64(p.percent))
	v /= math.Pow(1000, float64(p.scale))
	if p.exponent {
		return p.formatExponent(v) + strings.Repeat("%", p.percent), true
	}
	v = roundHalfAway(v, p.fracMax)
	if v >= 1e21 { // beyond the precision of fixed-point rendering
		return "", false
	}
	opts := []number.Option{
		number.MinIntegerDigits(max(p.intZeros, 1)),
		number.MinFractionDigits(p.fracMin),
		number.MaxFractionDigits(p.fracMax),
	}
	if !p.grouping {
		opts = append(opts, number.NoSeparator())
	}
	s := message.NewPrinter(language.English).Sprint(number.Decimal(v, opts...))
	if p.intZeros == 0 && (s == "0" || strings.HasPrefix(s, "0.")) {
		s = s[1:]
	}
	if p.decimal && !strings.Contains(s, ".") {
		s += "."
	}
	if p.fracQ > 0 {
		shown := 0
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			shown = len(s) - dot - 1
		}
		if pad := min(p.fracMax-shown, p.fracQ); pad > 0 {
			if shown == 0 && !strings.Contains(s, ".") {
				s += "."
			}
			s += strings.Repeat(" ", pad)
		}
	}
	if p.intSpaces > 0 {
		digits := len(s)
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			digits = dot
		}
		if pad := p.intZeros + p.intSpaces - digits; pad > 0 {
			s = strings.Repeat(" ", pad) + s
		}
	}
	return s + strings.Repeat("%", p.percent), true
}

func (p picture) formatExponent(v float64) string {
	s := strconv.FormatFloat(v, 'E', p.fracMax, 64)
	mant, exp, _ := strings.Cut(s, "E")
	e, _ := strconv.Atoi(exp)
	sign := ""
	if e < 0 {
		sign, e = "-", -e
	} else if p.expPlus {
		sign = "+"
	}
	es := strconv.Itoa(e)
	if len(es) < p.expDigits {
		es = strings.Repeat("0", p.expDigits-len(es)) + es
	}
	return mant + "E" + sign + es
}

// integerDigits renders the rounded integer part of v, padded to the number of
// '0' placeholders.
func (p picture) integerDigits(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= 1e21 {
		return "", false
	}
	s := strconv.FormatFloat(roundHalfAway(v, 0), 'f', 0, 64)
	if s == "0" && p.intZeros == 0 {
		s = ""
	}
	if len(s) < p.intZeros {
		s = strings.Repeat("0", p.intZeros-len(s)) + s
	}
	return s, true
}

// distributable is true for pictures whose integer digits may be spread over
// several number pieces, such as "000-0000".
func (p picture) distributable() bool {
	return !p.decimal && !p.grouping && !p.exponent && p.percent == 0 && p.scale == 0
}

func roundHalfAway(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	r := math.Round(v*pow) / pow
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}
