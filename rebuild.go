package ledgerfmt

import "strings"

// Rebuild serializes a document.
//
// Transactions are separated by one blank line. Comments preceding a
// transaction come right before its header, after one blank line unless they
// start the document. Blank lines leading a comment block are only kept at the
// start of the document, sorting can move such a block anywhere else.
// Trailing comments come last, after one blank line.
// An empty document gives an empty string, anything else ends with a newline.
func Rebuild(doc *Document) string {
	var lines []string
	separate := func() {
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
	}

	for i, tx := range doc.Transactions {
		if comments := leadingBlankTrimmed(lines, tx.Comments); len(comments) > 0 {
			separate()
			lines = append(lines, comments...)
		}
		lines = append(lines, tx.Lines...)
		if i < len(doc.Transactions)-1 {
			lines = append(lines, "")
		}
	}
	if trailing := leadingBlankTrimmed(lines, doc.Trailing); len(trailing) > 0 {
		separate()
		lines = append(lines, trailing...)
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// leadingBlankTrimmed returns comments without their leading blank lines,
// unless nothing has been written yet.
func leadingBlankTrimmed(written, comments []string) []string {
	if len(written) == 0 {
		return comments
	}
	for len(comments) > 0 && isBlank(comments[0]) {
		comments = comments[1:]
	}
	return comments
}
