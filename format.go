package ledgerfmt

// Options controls Format.
type Options struct {
	// Sort orders transactions by date, keeping the order of same day transactions.
	Sort bool
	// Column is the decimal alignment column, DefaultColumn if not positive.
	Column int
}

// Format reorganizes a ledger document: markers are normalized, postings
// aligned and, optionally, transactions sorted by date.
//
// It returns the formatted text and whether it differs from text. If the
// result does not preserve the content of text Format returns an error
// wrapping ErrContentChanged and no text at all.
func Format(text string, opts Options) (string, bool, error) {
	doc := Parse(text)
	formatted := &Document{Trailing: doc.Trailing}
	for _, tx := range doc.Transactions {
		formatted.Transactions = append(formatted.Transactions, Align(tx, opts.Column))
	}
	formatted.Transactions = SortTransactions(formatted.Transactions, opts.Sort)

	out := Rebuild(formatted)
	if err := CheckPreserved(text, out); err != nil {
		return "", false, err
	}
	return out, out != text, nil
}
