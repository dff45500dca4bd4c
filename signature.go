package ledgerfmt

import (
	"errors"
	"fmt"
	"slices"
	"unicode"
)

// ErrContentChanged reports that a reorganization altered more than the
// whitespace and the markers of a document. It always denotes a bug in the
// formatter, never bad input, and the reorganized text must be discarded.
var ErrContentChanged = errors.New("ledger content changed during formatting")

// ContentError details an ErrContentChanged.
type ContentError struct {
	Before, After string // the two signatures
	Offset        int    // index of the first differing rune in the signatures
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("%v: signatures of %d and %d runes differ at rune %d", ErrContentChanged, len([]rune(e.Before)), len([]rune(e.After)), e.Offset)
}

func (e *ContentError) Unwrap() error { return ErrContentChanged }

// Signature returns the sorted runes of text once whitespace and markers are
// removed. Two documents with the same signature differ only by whitespace,
// marker placement and line order.
func Signature(text string) string {
	runes := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) || r == '*' || r == '!' {
			continue
		}
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return string(runes)
}

// CheckPreserved returns a *ContentError if transformed does not have the
// same signature as original.
func CheckPreserved(original, transformed string) error {
	before, after := Signature(original), Signature(transformed)
	if before == after {
		return nil
	}
	b, a := []rune(before), []rune(after)
	offset := 0
	for offset < len(b) && offset < len(a) && b[offset] == a[offset] {
		offset++
	}
	return &ContentError{Before: before, After: after, Offset: offset}
}
