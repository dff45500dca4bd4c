package ledgerfmt

import (
	"regexp"
	"strings"
)

// LineKind is the syntactic class of a single line of a ledger document.
type LineKind int

const (
	// OtherLine is anything that is neither a header nor a posting: blank
	// lines, comments, directives and malformed content.
	OtherLine LineKind = iota
	// HeaderLine starts a transaction with a date.
	HeaderLine
	// PostingLine is an indented line, either a posting or a note.
	PostingLine
)

func (k LineKind) String() string {
	switch k {
	case HeaderLine:
		return "header"
	case PostingLine:
		return "posting"
	default:
		return "other"
	}
}

// Line is a classified line of text. Only the parts matching Kind are set.
type Line struct {
	Kind    LineKind
	Text    string
	Header  HeaderParts
	Posting PostingParts
}

// HeaderParts is the decomposition of a transaction header line:
//
//	2024/01/05=2024/01/07 * (42) Payee  ; note
//	|---------- prefix ---| |----- tail -------|
type HeaderParts struct {
	Date      string // "2024/01/05" as written
	Effective string // "2024/01/07" or ""
	Marker    Marker
	Code      string // text between the parentheses, if any
	Payee     string // the rest, trimmed

	prefix string // date and effective date, as written
	tail   string // everything after the marker and its spacing
}

// PostingParts is the decomposition of an indented line.
type PostingParts struct {
	Indent  string
	Marker  Marker
	Note    bool   // the line is a "; note" attached to the transaction
	Body    string // text after the indentation and the marker
	Account string // Body up to the first two-space or tab separator
	Amount  string // Body after that separator, trimmed. Includes any trailing comment.
}

// datePattern is the calendar date accepted at the start of a header.
const datePattern = `\d{4}[/.\-]\d{1,2}[/.\-]\d{1,2}`

var headerRegexp = regexp.MustCompile(`^(` + datePattern + `)(?:=(` + datePattern + `))?(?:[ \t]+(.*))?$`)

// separatorRegexp splits an account from its amount: two spaces or a tab.
var separatorRegexp = regexp.MustCompile(`(?:  |\t)[ \t]*`)

// Classify returns the class of a single line. It never fails: anything it
// cannot recognize is an OtherLine.
func Classify(text string) Line {
	if m := headerRegexp.FindStringSubmatch(text); m != nil {
		return Line{Kind: HeaderLine, Text: text, Header: parseHeader(m)}
	}
	if isBlank(text) || (text[0] != ' ' && text[0] != '\t') {
		return Line{Kind: OtherLine, Text: text}
	}
	return Line{Kind: PostingLine, Text: text, Posting: parsePosting(text)}
}

// isBlank reports whether a line has no content but whitespace.
func isBlank(text string) bool { return strings.TrimSpace(text) == "" }

func parseHeader(m []string) HeaderParts {
	h := HeaderParts{
		Date:      m[1],
		Effective: m[2],
		prefix:    m[1],
	}
	if m[2] != "" {
		h.prefix += "=" + m[2]
	}
	rest := m[3]
	if rest != "" {
		if mk, ok := markerOf(rest[0]); ok {
			h.Marker = mk
			rest = strings.TrimLeft(rest[1:], " \t")
		}
	}
	h.tail = rest
	if strings.HasPrefix(rest, "(") {
		if end := strings.IndexByte(rest, ')'); end > 0 {
			h.Code = rest[1:end]
			rest = rest[end+1:]
		}
	}
	h.Payee = strings.TrimSpace(rest)
	return h
}

// line renders the header with the given marker. The tail is kept as written.
func (h HeaderParts) line(m Marker) string {
	var b strings.Builder
	b.WriteString(h.prefix)
	if m != None {
		b.WriteByte(' ')
		b.WriteString(m.Symbol())
	}
	if h.tail != "" {
		b.WriteByte(' ')
		b.WriteString(h.tail)
	}
	return b.String()
}

func parsePosting(text string) PostingParts {
	body := strings.TrimLeft(text, " \t")
	p := PostingParts{Indent: text[:len(text)-len(body)]}
	if mk, ok := markerOf(body[0]); ok {
		p.Marker = mk
		body = strings.TrimLeft(body[1:], " \t")
	}
	p.Body = body
	if p.Marker == None && strings.HasPrefix(body, ";") {
		p.Note = true
		return p
	}
	p.Account = body
	if loc := separatorRegexp.FindStringIndex(body); loc != nil {
		p.Account = strings.TrimRight(body[:loc[0]], " \t")
		p.Amount = strings.TrimSpace(body[loc[1]:])
	} else {
		p.Account = strings.TrimRight(body, " \t")
	}
	return p
}

// markable reports whether the posting can carry a marker. Notes cannot.
func (p PostingParts) markable() bool { return !p.Note && p.Account != "" }

// line renders the posting with the given marker, keeping its indentation.
func (p PostingParts) line(m Marker) string {
	if m == None {
		return p.Indent + p.Body
	}
	return p.Indent + m.Symbol() + " " + p.Body
}
