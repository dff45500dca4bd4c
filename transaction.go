package ledgerfmt

import (
	"slices"

	"github.com/etnz/ledgerfmt/date"
)

// Transaction is a dated block of lines: a header followed by its postings.
type Transaction struct {
	Date date.Date
	// Lines holds the header first, then the postings and notes. Blank
	// lines found inside the block are not kept.
	Lines []string
	// Comments are the lines found between the previous transaction and this one.
	Comments []string
	// Start and End are the 0-based line numbers of the header and of the
	// last line of the block in the source document.
	Start, End int
}

// Header returns the classified header line.
func (t *Transaction) Header() Line { return Classify(t.Lines[0]) }

// Postings returns the classified lines following the header.
func (t *Transaction) Postings() []Line {
	postings := make([]Line, 0, len(t.Lines)-1)
	for _, l := range t.Lines[1:] {
		postings = append(postings, Classify(l))
	}
	return postings
}

// EffectiveMarker returns the status that applies to the i-th line of the
// transaction: the posting marker if it has one, the header marker otherwise.
func (t *Transaction) EffectiveMarker(i int) Marker {
	h := t.Header().Header.Marker
	if i == 0 {
		return h
	}
	l := Classify(t.Lines[i])
	if l.Kind == PostingLine && l.Posting.Marker != None {
		return l.Posting.Marker
	}
	return h
}

// withLines returns a copy of t using lines as its content.
func (t *Transaction) withLines(lines []string) *Transaction {
	nt := *t
	nt.Lines = lines
	nt.Comments = slices.Clone(t.Comments)
	return &nt
}
