package numfmt

import (
	"strings"

	"github.com/xuri/nfp"
)

// clause is one section of a format code during translation.
type clause struct {
	toks      []token
	color     string
	condition string
}

// rule rewrites the tokens of a clause.
type rule struct {
	name  string
	apply func(cl *clause)
}

// rules are applied in order to every clause.
var rules = []rule{
	{"general", ruleGeneral},
	{"alignment", ruleAlignment},
	{"fill", ruleFill},
	{"directives", ruleDirectives},
	{"month-initial", ruleMonthInitial},
	{"elapsed", ruleElapsed},
	{"month-minute", ruleMonthMinute},
	{"clock", ruleClock},
	{"date-punctuation", ruleDatePunctuation},
	{"layout", ruleLayout},
}

// ruleGeneral keeps the general keyword as a token of its own. It is replaced by
// a generic number rendering and never shown as literal text.
func ruleGeneral(cl *clause) {
	for i, t := range cl.toks {
		if t.kind == tkGeneral {
			cl.toks[i].text = "General"
		}
	}
}

// ruleAlignment turns _x into x. The space x would take is approximated by x itself.
func ruleAlignment(cl *clause) {
	for i, t := range cl.toks {
		if t.kind == tkAlign {
			cl.toks[i].kind = tkLiteral
		}
	}
}

// ruleFill drops *x fill directives.
func ruleFill(cl *clause) {
	for i, t := range cl.toks {
		if t.kind == tkFill {
			cl.toks[i].kind = tkDropped
		}
	}
}

// ruleDirectives removes colour, condition and locale directives. Conditions
// and colours are kept with the clause for section selection. Currency symbols
// of locale directives remain as literal text. Elapsed-time brackets are left
// for ruleElapsed.
func ruleDirectives(cl *clause) {
	for i, t := range cl.toks {
		if t.kind != tkBracket || isElapsedBracket(t.text) {
			continue
		}
		cl.toks[i].kind = tkDropped
		if isNumberedColor(t.text) {
			cl.color = t.text
			continue
		}
		ps := nfp.NumberFormatParser()
		sections := ps.Parse("[" + t.text + "]")
		if len(sections) == 0 || len(sections[0].Items) == 0 {
			continue
		}
		item := sections[0].Items[0]
		switch item.TType {
		case nfp.TokenTypeColor:
			cl.color = item.TValue
		case nfp.TokenTypeCondition:
			if len(item.Parts) == 2 {
				cl.condition = item.Parts[0].Token.TValue + item.Parts[1].Token.TValue
			}
		case nfp.TokenTypeCurrencyLanguage:
			for _, part := range item.Parts {
				if part.Token.TType == nfp.TokenSubTypeCurrencyString && part.Token.TValue != "" {
					cl.toks[i] = token{kind: tkLiteral, text: part.Token.TValue}
				}
			}
		default:
			tracer().Debugf("format directive [%s] ignored", t.text)
		}
	}
}

// ruleMonthInitial marks "mmmmm", the first letter of the month's name.
func ruleMonthInitial(cl *clause) {
	for i, t := range cl.toks {
		if t.kind == tkDate && t.unit == 'm' && t.count == 5 {
			cl.toks[i].kind = tkMonthInitial
		}
	}
}

// ruleElapsed resolves [h], [mm] and [ss]. They count elapsed time only when no
// date or time token precedes them in the clause. Otherwise the brackets are
// dropped and the token is an ordinary clock component.
func ruleElapsed(cl *clause) {
	seenDate := false
	for i, t := range cl.toks {
		if t.kind == tkBracket && isElapsedBracket(t.text) {
			unit := byte(strings.ToLower(t.text)[0])
			if seenDate {
				cl.toks[i] = token{kind: tkDate, text: t.text, unit: unit, count: len(t.text)}
			} else {
				cl.toks[i] = token{kind: tkElapsed, text: t.text, unit: unit, count: len(t.text)}
			}
		}
		if cl.toks[i].isDateLike() || cl.toks[i].kind == tkMonthInitial {
			seenDate = true
		}
	}
}

// ruleMonthMinute decides between month and minute for "m" and "mm". The token is
// a minute if the closest date token before it is an hour, or the closest date
// token after it is a second. Otherwise it is a month.
func ruleMonthMinute(cl *clause) {
	for i, t := range cl.toks {
		if t.kind != tkDate || t.unit != 'm' || t.count > 2 {
			continue
		}
		if prev := cl.closestDate(i, -1); prev != nil && prev.unit == 'h' {
			cl.toks[i].unit = 'n'
		} else if next := cl.closestDate(i, +1); next != nil && next.unit == 's' {
			cl.toks[i].unit = 'n'
		}
	}
}

func (cl *clause) closestDate(at, dir int) *token {
	for j := at + dir; j >= 0 && j < len(cl.toks); j += dir {
		if cl.toks[j].isDateLike() || cl.toks[j].kind == tkMonthInitial {
			return &cl.toks[j]
		}
	}
	return nil
}

// ruleClock selects the 12-hour clock if the clause contains AM/PM or A/P, and the
// 24-hour clock otherwise.
func ruleClock(cl *clause) {
	twelve := false
	for _, t := range cl.toks {
		if t.kind == tkAmPm {
			twelve = true
		}
	}
	for i, t := range cl.toks {
		switch {
		case t.kind == tkAmPm:
			cl.toks[i].kind = tkMeridiem
			if t.short && t.text == "a/p" || !t.short && t.text == "am/pm" {
				cl.toks[i].text = "pm"
			} else {
				cl.toks[i].text = "PM"
			}
		case t.kind == tkDate && t.unit == 'h' && twelve:
			cl.toks[i].text = pick(t.count, "3", "03")
		case t.kind == tkDate && t.unit == 'h' && t.count == 1:
			cl.toks[i].kind = tkHour24
		case t.kind == tkDate && t.unit == 'h':
			cl.toks[i].text = "15"
		}
	}
}

// ruleDatePunctuation handles number picture characters in clauses containing
// dates or times. A decimal point with zeros after a seconds token denotes
// fractions of a second, everything else is literal punctuation.
func ruleDatePunctuation(cl *clause) {
	isDate := false
	for _, t := range cl.toks {
		if t.isDateLike() || t.kind == tkMonthInitial || t.kind == tkHour24 || t.kind == tkMeridiem {
			isDate = true
		}
	}
	if !isDate {
		return
	}
	for i, t := range cl.toks {
		if t.kind != tkNumber {
			continue
		}
		if i > 0 && cl.toks[i-1].kind == tkDate && cl.toks[i-1].unit == 's' && isFraction(t.text) {
			cl.toks[i].kind = tkLayout
			continue
		}
		cl.toks[i].kind = tkLiteral
	}
}

// ruleLayout maps the remaining date tokens to reference-time layouts.
func ruleLayout(cl *clause) {
	for i, t := range cl.toks {
		if t.kind != tkDate {
			continue
		}
		cl.toks[i].kind = tkLayout
		switch t.unit {
		case 'y':
			cl.toks[i].text = pick(min(t.count, 3), "06", "06", "2006")
		case 'm':
			cl.toks[i].text = pick(min(t.count, 4), "1", "01", "Jan", "January")
		case 'n':
			cl.toks[i].text = pick(t.count, "4", "04")
		case 'd':
			cl.toks[i].text = pick(min(t.count, 4), "2", "02", "Mon", "Monday")
		case 's':
			cl.toks[i].text = pick(t.count, "5", "05")
		case 'h': // ruleClock has already chosen the layout
		}
	}
}

// pick selects the layout for a run of n letters. Longer runs use the last one.
func pick(n int, layouts ...string) string {
	if n < 1 {
		n = 1
	}
	if n > len(layouts) {
		n = len(layouts)
	}
	return layouts[n-1]
}

func isElapsedBracket(s string) bool {
	if s == "" {
		return false
	}
	first := strings.ToLower(s)[0]
	if first != 'h' && first != 'm' && first != 's' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if strings.ToLower(s[i:i+1])[0] != first {
			return false
		}
	}
	return true
}

func isNumberedColor(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "color") {
		return false
	}
	n := strings.TrimSpace(s[len("color"):])
	if n == "" {
		return false
	}
	for _, c := range n {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isFraction(s string) bool {
	return len(s) > 1 && s[0] == '.' && strings.Trim(s[1:], "0") == ""
}
