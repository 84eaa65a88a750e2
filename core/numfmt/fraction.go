package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// fraction is the layout of a fraction picture such as "# ??/??" or "# ?/8".
type fraction struct {
	whole      int // index of the whole number picture, -1 if none
	numerator  int
	slash      int
	denom      int    // index of the denominator picture, -1 for a fixed denominator
	fixedDenom int    // denominator given as digits
	rest       string // literal text following a fixed denominator
}

// fractionOf finds a fraction in the pieces of sec: a '/' literal after a
// numerator picture, followed by a denominator picture or by digits.
func fractionOf(sec *Section) (fraction, bool) {
	ps := sec.Pieces
	for i := 1; i < len(ps); i++ {
		p := ps[i]
		if p.Kind != Literal || p.Quoted || p.Escaped || !strings.HasPrefix(p.Text, "/") ||
			ps[i-1].Kind != Number || strings.ContainsAny(ps[i-1].Text, ".,%Ee") {
			continue
		}
		fr := fraction{whole: -1, numerator: i - 1, slash: i, denom: -1}
		if p.Text == "/" {
			if i+1 >= len(ps) || ps[i+1].Kind != Number || strings.ContainsAny(ps[i+1].Text, ".,%Ee") {
				continue
			}
			fr.denom = i + 1
		} else {
			n := 1
			for n < len(p.Text) && p.Text[n] >= '0' && p.Text[n] <= '9' {
				n++
			}
			d, err := strconv.Atoi(p.Text[1:n])
			if err != nil || d == 0 {
				continue
			}
			fr.fixedDenom, fr.rest = d, p.Text[n:]
		}
		for j := i - 2; j >= 0; j-- {
			if ps[j].Kind == Number {
				fr.whole = j
				break
			}
		}
		return fr, true
	}
	return fraction{}, false
}

// renderFraction renders a non-negative value as a whole number and a fraction.
// Without a whole number picture, the fraction may be improper.
func renderFraction(sec *Section, fr fraction, v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= 1e15 {
		return "", false
	}
	ps := sec.Pieces
	whole, frac := 0.0, v
	if fr.whole >= 0 {
		whole = math.Floor(v)
		frac = v - whole
	}
	num, den := fr.approximate(ps, frac)
	if fr.whole >= 0 && num == den {
		whole, num = whole+1, 0
	}
	numPic := ps[fr.numerator].Text
	blank := num == 0 && fr.whole >= 0
	denominator := func(pic string, pad bool) string {
		ds := strconv.Itoa(den)
		if pad {
			ds = padDigits(ds, pic, false)
		}
		if blank {
			ds = strings.Repeat(" ", len(ds))
		}
		return ds
	}
	var b strings.Builder
	for i, p := range ps {
		switch {
		case i == fr.whole:
			b.WriteString(wholeDigits(whole, p.Text, num == 0))
		case i == fr.numerator:
			if blank {
				b.WriteString(strings.Repeat(" ", placeholders(numPic)))
			} else {
				b.WriteString(padDigits(strconv.Itoa(num), numPic, true))
			}
		case i == fr.slash:
			if blank {
				b.WriteByte(' ')
			} else {
				b.WriteByte('/')
			}
			if fr.denom < 0 {
				b.WriteString(denominator("", false) + fr.rest)
			}
		case i == fr.denom:
			b.WriteString(denominator(p.Text, true))
		case p.Kind == Number:
			// further pictures have nothing to show
		case p.Kind == General:
			b.WriteString(genericNumber(v))
		case p.Kind == Literal:
			b.WriteString(p.Text)
		}
	}
	return b.String(), true
}

// approximate finds the fraction closest to x, with either the fixed
// denominator or a denominator of at most as many digits as its picture has.
func (fr fraction) approximate(ps []Piece, x float64) (int, int) {
	if fr.denom < 0 {
		return int(math.Round(x * float64(fr.fixedDenom))), fr.fixedDenom
	}
	digits := min(max(placeholders(ps[fr.denom].Text), 1), 3)
	maxDen := int(math.Pow10(digits)) - 1
	bestNum, bestDen, bestErr := int(math.Round(x)), 1, math.Inf(1)
	for den := 1; den <= maxDen; den++ {
		num := int(math.Round(x * float64(den)))
		if e := math.Abs(x - float64(num)/float64(den)); e < bestErr-1e-12 {
			bestNum, bestDen, bestErr = num, den, e
		}
	}
	return bestNum, bestDen
}

// wholeDigits renders the whole number part. A zero whole number is shown
// only for '0' placeholders or if there is no fraction to show.
func wholeDigits(whole float64, pic string, noFraction bool) string {
	if whole == 0 && !strings.Contains(pic, "0") && !noFraction {
		return ""
	}
	return padDigits(strconv.FormatFloat(whole, 'f', 0, 64), pic, true)
}

// padDigits pads digits to the number of placeholders of pic: '0' with zeros,
// '?' with blanks. Numerators and whole numbers pad left, denominators right.
func padDigits(digits, pic string, left bool) string {
	n := strings.Count(pic, "0") + strings.Count(pic, "?")
	if len(digits) >= n {
		return digits
	}
	pad := " "
	if strings.Contains(pic, "0") {
		pad = "0"
	}
	if left {
		return strings.Repeat(pad, n-len(digits)) + digits
	}
	return digits + strings.Repeat(" ", n-len(digits))
}
