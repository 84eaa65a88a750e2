package numfmt

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/sheetmetrics/core/serialdate"
)

// GenericDateLayout is used for dates whose format code cannot be rendered.
const GenericDateLayout = "2006-01-02 15:04:05"

// Formatter renders sample values. The zero value uses the 1900 date system.
type Formatter struct {
	Date1904 bool // serial dates count from 1 Jan 1904
}

// RenderSample renders value under a format code, using the 1900 date system.
func RenderSample(value float64, code string) string {
	return Formatter{}.Render(value, code)
}

// RenderTextSample renders a text value under a format code.
func RenderTextSample(text, code string) string {
	return Formatter{}.RenderText(text, code)
}

// Render renders value under a format code. Values the format cannot show are
// rendered generically.
func (fm Formatter) Render(value float64, code string) (s string) {
	hf := Translate(code)
	date := false
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("rendering %v with %q failed: %v", value, code, r)
			if date {
				s = GenericDate(serialdate.ToTime(value, fm.Date1904))
			} else {
				s = genericNumber(value)
			}
		}
	}()
	sec, v, sign := hf.selectSection(value)
	if sec == nil {
		return genericNumber(value)
	}
	if date = sec.IsDate(); date {
		if value < 0 {
			return genericNumber(value)
		}
		return fm.renderDate(sec, value)
	}
	out, ok := renderNumber(sec, v)
	if !ok {
		return genericNumber(value)
	}
	return sign + out
}

// RenderText renders a text value under the first text section of a format code.
// Format codes without a text section show the text as is.
func (fm Formatter) RenderText(text, code string) string {
	hf := Translate(code)
	for _, sec := range hf.Sections {
		if !sec.IsText() {
			continue
		}
		var b strings.Builder
		for _, p := range sec.Pieces {
			if p.Kind == TextValue {
				b.WriteString(text)
			} else if p.Kind == Literal {
				b.WriteString(p.Text)
			}
		}
		return b.String()
	}
	return text
}

// selectSection finds the section for value. It returns the value to render,
// which is made positive if the section implies the sign, and a sign prefix.
func (f HostFormat) selectSection(value float64) (*Section, float64, string) {
	var numeric []*Section
	conditional := false
	for i := range f.Sections {
		if f.Sections[i].IsText() {
			continue
		}
		numeric = append(numeric, &f.Sections[i])
		if f.Sections[i].Condition != "" {
			conditional = true
		}
	}
	if len(numeric) == 0 {
		return nil, value, ""
	}
	abs, sign := value, ""
	if value < 0 {
		abs = -value
	}
	if conditional {
		for i, s := range numeric {
			if s.Condition != "" && conditionHolds(s.Condition, value) {
				if i == 0 && value < 0 {
					sign = "-"
				}
				return s, abs, sign
			}
		}
		for _, s := range numeric {
			if s.Condition == "" {
				return s, value, ""
			}
		}
		return numeric[len(numeric)-1], value, ""
	}
	switch {
	case len(numeric) >= 3 && value == 0:
		return numeric[2], value, ""
	case len(numeric) >= 2 && value < 0:
		return numeric[1], abs, ""
	case value < 0:
		sign = "-"
	}
	return numeric[0], abs, sign
}

func (fm Formatter) renderDate(sec *Section, serial float64) string {
	fraction := false
	for _, p := range sec.Pieces {
		if p.Kind == Layout && strings.HasPrefix(p.Text, ".") {
			fraction = true
		}
	}
	if !fraction {
		serial = math.Round(serial*86400) / 86400
	}
	t := serialdate.ToTime(serial, fm.Date1904)
	if !fraction {
		t = t.Round(time.Second)
	}
	var b strings.Builder
	for _, p := range sec.Pieces {
		switch p.Kind {
		case Layout:
			b.WriteString(t.Format(p.Text))
		case Elapsed:
			b.WriteString(elapsed(serial, p.Unit, p.Width))
		case Hour24:
			b.WriteString(strconv.Itoa(t.Hour()))
		case MonthInitial:
			b.WriteString(t.Month().String()[:1])
		case Meridiem:
			b.WriteString(meridiem(t, p))
		case General:
			b.WriteString(genericNumber(serial))
		default:
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// elapsed renders the total number of hours, minutes or seconds of a serial
// duration, with at least width digits.
func elapsed(serial float64, unit byte, width int) string {
	var total float64
	switch unit {
	case 'h':
		total = serial * 24
	case 'm':
		total = serial * 1440
	default:
		total = serial * 86400
	}
	s := strconv.FormatFloat(math.Floor(total+1e-9), 'f', 0, 64)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

func meridiem(t time.Time, p Piece) string {
	m := "AM"
	if t.Hour() >= 12 {
		m = "PM"
	}
	if p.Text == "pm" {
		m = strings.ToLower(m)
	}
	if p.Initial {
		m = m[:1]
	}
	return m
}

// renderNumber renders a non-negative value. Fractions are rendered on their
// own. Otherwise all number pictures of a section are combined into one.
// Pictures made of integer digits only, such as "000-0000", have their digits
// distributed over the pieces.
func renderNumber(sec *Section, v float64) (string, bool) {
	if fr, ok := fractionOf(sec); ok {
		return renderFraction(sec, fr, v)
	}
	var pics []int
	var combined strings.Builder
	for i, p := range sec.Pieces {
		if p.Kind == Number {
			pics = append(pics, i)
			combined.WriteString(p.Text)
		}
	}
	pic := parsePicture(combined.String())
	rendered := make(map[int]string, len(pics))
	if len(pics) > 1 && pic.distributable() {
		digits, ok := pic.integerDigits(v)
		if !ok {
			return "", false
		}
		for k := len(pics) - 1; k > 0; k-- {
			n := placeholders(sec.Pieces[pics[k]].Text)
			take := min(n, len(digits))
			rendered[pics[k]] = digits[len(digits)-take:]
			digits = digits[:len(digits)-take]
		}
		rendered[pics[0]] = digits
	} else if len(pics) > 0 {
		s, ok := pic.format(v)
		if !ok {
			return "", false
		}
		rendered[pics[0]] = s
	}
	var b strings.Builder
	for i, p := range sec.Pieces {
		switch p.Kind {
		case Number:
			b.WriteString(rendered[i])
		case General:
			b.WriteString(genericNumber(v))
		case Literal:
			b.WriteString(p.Text)
		}
	}
	return b.String(), true
}

func placeholders(pic string) int {
	n := 0
	for i := 0; i < len(pic); i++ {
		if isPlaceholder(pic[i]) {
			n++
		}
	}
	return n
}

// genericNumber renders v with up to 10 significant digits.
func genericNumber(v float64) string {
	return strconv.FormatFloat(v, 'G', 10, 64)
}

// GenericDate renders t in the fallback layout.
func GenericDate(t time.Time) string {
	return t.Format(GenericDateLayout)
}
