// Package ledgerfmt reorganizes plain text ledger files, the format of
// ledger-cli and hledger, without ever changing their content.
//
// A ledger document is a sequence of transactions: a dated header line,
// with an optional reconciliation marker ("!" pending, "*" cleared) and a
// payee, followed by indented postings. Anything else, comments, directives
// or malformed lines, is kept verbatim.
//
// The package provides:
//   - Format: normalizes markers, aligns amounts on their decimal point and
//     optionally sorts transactions by date. Every call checks that only
//     whitespace and markers moved, see Signature.
//   - Toggle: the interactive toggle of a reconciliation marker, returned as
//     line edits limited to the owning transaction.
//   - NormalizeMarkers and ToggleMarker: the marker state machine for a
//     single transaction.
//   - Uncleared: a report of the postings that are not reconciled yet.
//
// All functions are pure: they take a snapshot of the text and return new
// text or edits. Memoization is left to the caller, see Cache.
//
// This package is the engine behind the `lfmt` command-line tool.
package ledgerfmt
