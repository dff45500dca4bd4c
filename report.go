package ledgerfmt

import (
	"slices"
	"strings"

	"github.com/etnz/ledgerfmt/date"
)

// UnclearedPosting is a posting whose effective marker is not Cleared.
type UnclearedPosting struct {
	Date    date.Date
	Payee   string
	Account string
	Marker  Marker // effective marker, None or Pending
	Amount  string // as written, "" when elided
	Line    int    // 1-based line of the transaction header
}

// Report lists the postings still to be reconciled.
type Report struct {
	Postings []UnclearedPosting
	// Totals sums the parsable amounts of Postings per commodity, sorted by
	// commodity. Elided and unparsable amounts are not counted.
	Totals []Amount
	// Skipped counts the amounts that could not be parsed.
	Skipped int
}

// Uncleared returns the postings of doc that are not cleared, either
// explicitly or through their transaction header.
func Uncleared(doc *Document) *Report {
	r := &Report{}
	totals := make(map[string]Amount)
	for _, tx := range doc.Transactions {
		header := tx.Header().Header
		for i, l := range tx.Postings() {
			if l.Kind != PostingLine || !l.Posting.markable() {
				continue
			}
			m := tx.EffectiveMarker(i + 1)
			if m == Cleared {
				continue
			}
			r.Postings = append(r.Postings, UnclearedPosting{
				Date:    tx.Date,
				Payee:   header.Payee,
				Account: l.Posting.Account,
				Marker:  m,
				Amount:  l.Posting.Amount,
				Line:    tx.Start + 1,
			})
			if l.Posting.Amount == "" {
				continue
			}
			a, err := ParseAmount(l.Posting.Amount)
			if err != nil {
				r.Skipped++
				continue
			}
			if t, ok := totals[a.Commodity]; ok {
				a = t.Add(a)
			}
			totals[a.Commodity] = a
		}
	}
	for _, a := range totals {
		r.Totals = append(r.Totals, a)
	}
	slices.SortFunc(r.Totals, func(a, b Amount) int { return strings.Compare(a.Commodity, b.Commodity) })
	return r
}
