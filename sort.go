package ledgerfmt

import (
	"slices"
	"sort"
)

// SortTransactions returns the transactions in chronological order when
// enabled, and unchanged otherwise. The sort is stable: transactions on the
// same day keep their relative order.
func SortTransactions(txs []*Transaction, enabled bool) []*Transaction {
	if !enabled {
		return txs
	}
	sorted := slices.Clone(txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
