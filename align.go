package ledgerfmt

import (
	"strings"
	"unicode/utf8"
)

// DefaultColumn is the column, counted from 0, where the decimal point of
// every amount is aligned.
const DefaultColumn = 62

// minSpacing is the smallest gap between an account and its amount.
const minSpacing = 2

// Align returns a copy of t with normalized markers and aligned postings.
//
// Every posting is re-indented with a single space and its amount is padded
// so that its decimal point (or its first character when it has none) lands
// on column. Postings too long to be aligned keep a two spaces gap. The
// header and the notes are not re-aligned.
func Align(t *Transaction, column int) *Transaction {
	if column <= 0 {
		column = DefaultColumn
	}
	lines := NormalizeMarkers(t.Lines)
	for i := 1; i < len(lines); i++ {
		lines[i] = alignPosting(lines[i], column)
	}
	return t.withLines(lines)
}

func alignPosting(line string, column int) string {
	if isBlank(line) {
		return line
	}
	l := Classify(line)
	if l.Kind != PostingLine || !l.Posting.markable() {
		return line
	}
	p := l.Posting

	var b strings.Builder
	b.WriteByte(' ')
	if p.Marker != None {
		b.WriteString(p.Marker.Symbol())
		b.WriteByte(' ')
	}
	b.WriteString(p.Account)
	if p.Amount == "" {
		return b.String()
	}

	spaces := column - decimalIndex(p.Amount) - utf8.RuneCountInString(b.String())
	if spaces < minSpacing {
		spaces = minSpacing
	}
	b.WriteString(strings.Repeat(" ", spaces))
	b.WriteString(p.Amount)
	return b.String()
}

// decimalIndex returns the position, in runes, of the decimal point of an
// amount, or 0 if it has none. A point in a trailing comment does not count.
func decimalIndex(amount string) int {
	if i := strings.IndexByte(amount, ';'); i >= 0 {
		amount = amount[:i]
	}
	i := strings.IndexByte(amount, '.')
	if i < 0 {
		return 0
	}
	return utf8.RuneCountInString(amount[:i])
}
