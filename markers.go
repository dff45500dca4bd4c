package ledgerfmt

import "slices"

// A transaction's markers are in one of two canonical forms:
//
//   - the header carries a marker and no posting does, the header marker
//     applies to every posting;
//   - the header carries no marker and each posting marker, possibly absent,
//     applies to that posting alone.
//
// NormalizeMarkers brings a transaction into one of these forms and
// ToggleMarker edits a single marker while keeping the transaction canonical.

// NormalizeMarkers returns the lines of a transaction in canonical marker form.
//
// When every posting carries the same explicit marker and the header has
// none, the marker is hoisted to the header. When the header has a marker,
// posting markers are stripped: the header wins. Otherwise the lines are left
// unchanged. Lines whose marker does not change are returned as is, and
// NormalizeMarkers is idempotent.
func NormalizeMarkers(lines []string) []string {
	out := normalizeOnce(lines)
	// a stripped posting may reveal another marker symbol, as in "* * Account".
	for {
		next := normalizeOnce(out)
		if slices.Equal(next, out) {
			return out
		}
		out = next
	}
}

func normalizeOnce(lines []string) []string {
	out := slices.Clone(lines)
	if len(out) == 0 {
		return out
	}
	header := Classify(out[0])
	if header.Kind != HeaderLine {
		return out
	}

	postings := make(map[int]PostingParts)
	seen := make(map[Marker]bool)
	for i := 1; i < len(out); i++ {
		l := Classify(out[i])
		if l.Kind != PostingLine || !l.Posting.markable() {
			continue
		}
		postings[i] = l.Posting
		seen[l.Posting.Marker] = true
	}

	hm := header.Header.Marker
	if hm == None && len(seen) == 1 && !seen[None] {
		for m := range seen {
			hm = m
		}
		out[0] = header.Header.line(hm)
	}
	if hm == None {
		return out
	}
	for i, p := range postings {
		if p.Marker != None {
			out[i] = p.line(None)
		}
	}
	return out
}

// ToggleMarker toggles the marker of the line at index target of a
// transaction (0 being the header) and returns the normalized lines.
//
// Toggling cycles None to Cleared and Cleared or Pending to None.
//
// Toggling the header cycles its own marker. Toggling a posting of a
// transaction whose header carries the marker decomposes the transaction:
// the header marker is removed, every other posting receives it explicitly
// and the target posting receives the toggled value. Toggling a posting of a
// transaction without header marker only cycles that posting.
//
// Targets that are out of range or cannot carry a marker leave the lines
// unchanged.
func ToggleMarker(lines []string, target int) []string {
	out := slices.Clone(lines)
	if target < 0 || target >= len(out) {
		return out
	}
	header := Classify(out[0])
	if header.Kind != HeaderLine {
		return out
	}
	if target == 0 {
		out[0] = header.Header.line(header.Header.Marker.toggled())
		return NormalizeMarkers(out)
	}

	tl := Classify(out[target])
	if tl.Kind != PostingLine || !tl.Posting.markable() {
		return out
	}
	hm := header.Header.Marker
	if hm == None {
		out[target] = tl.Posting.line(tl.Posting.Marker.toggled())
		return NormalizeMarkers(out)
	}

	out[0] = header.Header.line(None)
	for i := 1; i < len(out); i++ {
		l := Classify(out[i])
		if l.Kind != PostingLine || !l.Posting.markable() {
			continue
		}
		m := hm
		if i == target {
			m = hm.toggled()
		}
		if m != l.Posting.Marker {
			out[i] = l.Posting.line(m)
		}
	}
	return NormalizeMarkers(out)
}
