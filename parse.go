package ledgerfmt

import (
	"strings"

	"github.com/etnz/ledgerfmt/date"
)

// Document is a parsed ledger file.
type Document struct {
	Transactions []*Transaction
	// Trailing holds the comment lines that follow the last transaction, or
	// every line of a document without transactions.
	Trailing []string
}

// SplitLines splits text into lines. A final newline does not produce an
// extra empty line and a carriage return before a newline is dropped.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Parse groups the lines of text into transactions and comment blocks.
//
// A transaction is a header line followed by every posting line, blank lines
// inside the block being tolerated and discarded. Any other line is a comment
// attached to the next transaction, or a trailing comment at the end of the
// document. Parse never fails: what it does not recognize is kept verbatim as
// a comment.
func Parse(text string) *Document {
	lines := SplitLines(text)
	doc := &Document{}
	if len(lines) == 1 && lines[0] == "" {
		return doc
	}

	var comments []string
	for i := 0; i < len(lines); {
		l := Classify(lines[i])
		if l.Kind != HeaderLine {
			comments = append(comments, lines[i])
			i++
			continue
		}

		// the header pattern only matches dates that Parse accepts.
		on, _ := date.Parse(l.Header.Date)
		tx := &Transaction{
			Date:     on,
			Lines:    []string{lines[i]},
			Comments: comments,
			Start:    i,
			End:      i,
		}
		comments = nil
		for i++; i < len(lines); i++ {
			if isBlank(lines[i]) {
				continue
			}
			if Classify(lines[i]).Kind != PostingLine {
				break
			}
			tx.Lines = append(tx.Lines, lines[i])
			tx.End = i
		}
		doc.Transactions = append(doc.Transactions, tx)
	}
	doc.Trailing = comments
	return doc
}
