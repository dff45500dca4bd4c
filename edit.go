package ledgerfmt

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrLineOutOfRange is returned when a line index is not in the document.
var ErrLineOutOfRange = errors.New("line out of range")

// ErrOverlappingEdits is returned by ApplyEdits for edits sharing lines.
var ErrOverlappingEdits = errors.New("overlapping edits")

// LineRange is a range of 0-based line numbers, End excluded.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Edit replaces the lines of Range with Text. Text holds one or more lines
// separated by newlines, with no final newline.
type Edit struct {
	Range LineRange `json:"range"`
	Text  string    `json:"text"`
}

// Toggle toggles the marker of the given 0-based line of a document and
// returns the edits to apply, restricted to the owning transaction.
//
// The owner of a posting is found by walking back to the nearest header. A
// blank line or a comment met first means there is no owner and Toggle
// returns no edits. Lines that are neither headers nor postings give no
// edits either.
func Toggle(text string, line int) ([]Edit, error) {
	lines := SplitLines(text)
	if line < 0 || line >= len(lines) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrLineOutOfRange, line, len(lines))
	}

	start := -1
	switch Classify(lines[line]).Kind {
	case HeaderLine:
		start = line
	case PostingLine:
		for i := line - 1; i >= 0; i-- {
			k := Classify(lines[i]).Kind
			if k == HeaderLine {
				start = i
				break
			}
			if k == OtherLine {
				break
			}
		}
	}
	if start < 0 {
		return nil, nil
	}

	end := start + 1
	for end < len(lines) && Classify(lines[end]).Kind == PostingLine {
		end++
	}
	block := lines[start:end]
	toggled := ToggleMarker(block, line-start)

	var edits []Edit
	for i := range block {
		if block[i] != toggled[i] {
			edits = append(edits, Edit{Range: LineRange{start + i, start + i + 1}, Text: toggled[i]})
		}
	}
	return edits, nil
}

// ApplyEdits applies all edits to text, or none if any of them is out of
// range or overlaps another one. Lines outside the edits keep their line
// ending, replaced lines take the ending of the first line they replace.
func ApplyEdits(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}
	// unlike SplitLines, carriage returns stay on the lines.
	var lines []string
	if text != "" {
		lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	}
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int { return a.Range.Start - b.Range.Start })

	prev := 0
	for _, e := range sorted {
		if e.Range.Start < 0 || e.Range.End < e.Range.Start || e.Range.End > len(lines) {
			return text, fmt.Errorf("%w: edit [%d, %d) on %d lines", ErrLineOutOfRange, e.Range.Start, e.Range.End, len(lines))
		}
		if e.Range.Start < prev {
			return text, fmt.Errorf("%w: edit [%d, %d)", ErrOverlappingEdits, e.Range.Start, e.Range.End)
		}
		prev = e.Range.End
	}

	out := make([]string, 0, len(lines))
	cur := 0
	for _, e := range sorted {
		out = append(out, lines[cur:e.Range.Start]...)
		cr := carriageReturn(lines, e.Range.Start)
		for _, l := range strings.Split(e.Text, "\n") {
			out = append(out, strings.TrimSuffix(l, "\r")+cr)
		}
		cur = e.Range.End
	}
	out = append(out, lines[cur:]...)

	result := strings.Join(out, "\n")
	if strings.HasSuffix(text, "\n") || text == "" {
		result += "\n"
	}
	return result, nil
}

// carriageReturn returns "\r" if the line at i, or the last line when i is
// past the end, ends with one.
func carriageReturn(lines []string, i int) string {
	if i >= len(lines) {
		i = len(lines) - 1
	}
	if i >= 0 && strings.HasSuffix(lines[i], "\r") {
		return "\r"
	}
	return ""
}
