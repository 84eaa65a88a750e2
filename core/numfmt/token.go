package numfmt

import (
	"strings"
	"unicode"
)

type tokenKind int8

const (
	tkLiteral   tokenKind = iota // plain character
	tkQuoted                     // text within double quotes
	tkEscaped                    // backslash-escaped character
	tkAlign                      // _x: width of x
	tkFill                       // *x: repeat x to fill the cell
	tkBracket                    // [...] directive, still unclassified
	tkSection                    // ;
	tkGeneral                    // general number format
	tkDate                       // run of y, m, d, h, s
	tkAmPm                       // AM/PM or A/P
	tkNumber                     // run of number picture characters
	tkText                       // @
	// kinds produced by rewrite rules
	tkDropped
	tkElapsed
	tkMonthInitial
	tkLayout
	tkHour24
	tkMeridiem
)

// token is a lexical unit of a format code. Rewrite rules change tokens in place.
type token struct {
	kind  tokenKind
	text  string // characters as found in the format code, or rewritten text
	unit  byte   // date tokens: y, m, d, h, s; 'n' for minutes after disambiguation
	count int    // date tokens: run length
	short bool   // A/P instead of AM/PM
}

func (t token) isDateLike() bool {
	return t.kind == tkDate || t.kind == tkElapsed
}

const pictureChars = "0#?.,%"

// tokenize splits a format code into tokens. It never fails; characters without
// a meaning of their own become literals.
func tokenize(code string) []token {
	rs := []rune(code)
	var toks []token
	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case c == '"':
			j := i + 1
			for j < len(rs) && rs[j] != '"' {
				j++
			}
			toks = append(toks, token{kind: tkQuoted, text: string(rs[i+1 : j])})
			i = j + 1
		case c == '\\' || c == '_' || c == '*':
			if i+1 >= len(rs) {
				i++
				continue
			}
			kind := tkEscaped
			if c == '_' {
				kind = tkAlign
			} else if c == '*' {
				kind = tkFill
			}
			toks = append(toks, token{kind: kind, text: string(rs[i+1])})
			i += 2
		case c == '[':
			j := i + 1
			for j < len(rs) && rs[j] != ']' {
				j++
			}
			if j == len(rs) { // unterminated
				toks = append(toks, token{kind: tkLiteral, text: "["})
				i++
				continue
			}
			toks = append(toks, token{kind: tkBracket, text: string(rs[i+1 : j])})
			i = j + 1
		case c == ';':
			toks = append(toks, token{kind: tkSection, text: ";"})
			i++
		case c == '@':
			toks = append(toks, token{kind: tkText, text: "@"})
			i++
		case hasPrefixFold(rs[i:], "general"):
			toks = append(toks, token{kind: tkGeneral, text: string(rs[i : i+7])})
			i += 7
		case hasPrefixFold(rs[i:], "am/pm"):
			toks = append(toks, token{kind: tkAmPm, text: string(rs[i : i+5])})
			i += 5
		case hasPrefixFold(rs[i:], "a/p"):
			toks = append(toks, token{kind: tkAmPm, text: string(rs[i : i+3]), short: true})
			i += 3
		case isDateLetter(c):
			j := i + 1
			for j < len(rs) && unicode.ToLower(rs[j]) == unicode.ToLower(c) {
				j++
			}
			toks = append(toks, token{
				kind:  tkDate,
				text:  string(rs[i:j]),
				unit:  byte(unicode.ToLower(c)),
				count: j - i,
			})
			i = j
		case strings.ContainsRune(pictureChars, c) || isExponent(rs[i:]):
			j := i
			for j < len(rs) {
				if strings.ContainsRune(pictureChars, rs[j]) {
					j++
				} else if isExponent(rs[j:]) {
					j += 2
				} else {
					break
				}
			}
			toks = append(toks, token{kind: tkNumber, text: string(rs[i:j])})
			i = j
		default:
			toks = append(toks, token{kind: tkLiteral, text: string(c)})
			i++
		}
	}
	return toks
}

// splitSections splits a token stream at section separators.
func splitSections(toks []token) [][]token {
	sections := [][]token{{}}
	for _, t := range toks {
		if t.kind == tkSection {
			sections = append(sections, []token{})
			continue
		}
		sections[len(sections)-1] = append(sections[len(sections)-1], t)
	}
	return sections
}

func isDateLetter(c rune) bool {
	switch unicode.ToLower(c) {
	case 'y', 'm', 'd', 'h', 's':
		return true
	}
	return false
}

// isExponent is true for "E+", "E-", "e+" and "e-".
func isExponent(rs []rune) bool {
	return len(rs) >= 2 && (rs[0] == 'E' || rs[0] == 'e') && (rs[1] == '+' || rs[1] == '-')
}

func hasPrefixFold(rs []rune, prefix string) bool {
	if len(rs) < len(prefix) {
		return false
	}
	return strings.EqualFold(string(rs[:len(prefix)]), prefix)
}
