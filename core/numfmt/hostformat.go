package numfmt

import (
	"strings"
)

// PieceKind classifies the pieces of a host format.
type PieceKind int8

// Kinds of pieces.
const (
	Literal      PieceKind = iota // text, shown as is
	Layout                        // reference-time layout for time.Time.Format
	Number                        // number picture, e.g. "#,##0.00"
	General                       // generic number rendering
	TextValue                     // the cell's text
	Elapsed                       // total hours, minutes or seconds
	MonthInitial                  // first letter of the month name
	Hour24                        // hour of a 24-hour clock, without padding
	Meridiem                      // AM/PM designator
)

// Piece is a unit of a host format.
type Piece struct {
	Kind    PieceKind
	Text    string // literal text, layout, picture or designator
	Quoted  bool   // literal was quoted in the format code
	Escaped bool   // literal was escaped with a backslash
	Unit    byte   // elapsed pieces: 'h', 'm' or 's'
	Width   int    // elapsed pieces: minimum number of digits
	Initial bool   // meridiem pieces: A/P instead of AM/PM
}

// Section is a format for one class of values: positive, negative, zero or text,
// or the values satisfying a condition.
type Section struct {
	Pieces    []Piece
	Color     string // colour directive, informational only
	Condition string // condition as operator and operand, e.g. ">=100"
}

// IsDate is true if the section formats dates or times.
func (s Section) IsDate() bool {
	for _, p := range s.Pieces {
		switch p.Kind {
		case Layout, Elapsed, MonthInitial, Hour24, Meridiem:
			return true
		}
	}
	return false
}

// IsText is true if the section formats text values.
func (s Section) IsText() bool {
	for _, p := range s.Pieces {
		if p.Kind == TextValue {
			return true
		}
	}
	return false
}

// HostFormat is a translated format code.
type HostFormat struct {
	Code     string // format code as given
	Sections []Section
}

// IsDate is true if any section of f formats dates or times.
func (f HostFormat) IsDate() bool {
	for _, s := range f.Sections {
		if s.IsDate() {
			return true
		}
	}
	return false
}

// String renders f in a readable form: layouts and pictures as they are, elapsed
// time in brackets, quoted literals re-quoted, sections separated by ';'.
func (f HostFormat) String() string {
	var b strings.Builder
	for i, s := range f.Sections {
		if i > 0 {
			b.WriteByte(';')
		}
		for _, p := range s.Pieces {
			b.WriteString(p.String())
		}
	}
	return b.String()
}

func (p Piece) String() string {
	switch p.Kind {
	case Literal:
		if p.Quoted {
			return `"` + p.Text + `"`
		}
		if p.Escaped {
			return `\` + p.Text
		}
		return p.Text
	case Elapsed:
		return "[" + strings.Repeat(string(p.Unit), p.Width) + "]"
	case MonthInitial:
		return "M"
	case Hour24:
		return "15"
	case TextValue:
		return "@"
	}
	return p.Text
}

// Translate rewrites a format code into a host format. It never fails; tokens
// without a meaning of their own are kept as literal text.
func Translate(code string) HostFormat {
	f := HostFormat{Code: code}
	for _, toks := range splitSections(tokenize(code)) {
		cl := &clause{toks: toks}
		for _, r := range rules {
			r.apply(cl)
		}
		f.Sections = append(f.Sections, cl.section())
	}
	tracer().Debugf("format code %q translated to %q", code, f.String())
	return f
}

func (cl *clause) section() Section {
	s := Section{Color: cl.color, Condition: cl.condition}
	for _, t := range cl.toks {
		var p Piece
		switch t.kind {
		case tkDropped, tkBracket, tkFill:
			continue
		case tkQuoted:
			p = Piece{Kind: Literal, Text: t.text, Quoted: true}
		case tkEscaped:
			p = Piece{Kind: Literal, Text: t.text, Escaped: true}
		case tkNumber:
			p = Piece{Kind: Number, Text: t.text}
		case tkGeneral:
			p = Piece{Kind: General, Text: t.text}
		case tkText:
			p = Piece{Kind: TextValue, Text: t.text}
		case tkLayout:
			p = Piece{Kind: Layout, Text: t.text}
		case tkElapsed:
			p = Piece{Kind: Elapsed, Text: t.text, Unit: t.unit, Width: t.count}
		case tkMonthInitial:
			p = Piece{Kind: MonthInitial, Text: t.text}
		case tkHour24:
			p = Piece{Kind: Hour24, Text: t.text}
		case tkMeridiem:
			p = Piece{Kind: Meridiem, Text: t.text, Initial: t.short}
		default:
			p = Piece{Kind: Literal, Text: t.text}
		}
		if n := len(s.Pieces); n > 0 && p.Kind == Literal && !p.Quoted && !p.Escaped {
			if last := &s.Pieces[n-1]; last.Kind == Literal && !last.Quoted && !last.Escaped {
				last.Text += p.Text
				continue
			}
		}
		s.Pieces = append(s.Pieces, p)
	}
	return s
}
