package ledgerfmt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const toggleLedger = `; comment
2024/01/05 * Shop
    Expenses:Food  $10.00
    Assets:Cash

2024/01/06 Other
    Expenses:Misc  1
`

func TestToggle(t *testing.T) {
	tests := []struct {
		name string
		line int
		want []Edit
	}{
		{
			name: "header",
			line: 1,
			want: []Edit{{Range: LineRange{1, 2}, Text: "2024/01/05 Shop"}},
		},
		{
			name: "posting of a cleared transaction",
			line: 3,
			want: []Edit{
				{Range: LineRange{1, 2}, Text: "2024/01/05 Shop"},
				{Range: LineRange{2, 3}, Text: "    * Expenses:Food  $10.00"},
			},
		},
		{
			name: "single posting is hoisted",
			line: 6,
			want: []Edit{
				{Range: LineRange{5, 6}, Text: "2024/01/06 * Other"},
			},
		},
		{name: "comment", line: 0},
		{name: "blank line", line: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Toggle(toggleLedger, tt.line)
			if err != nil {
				t.Fatalf("Toggle(%d) unexpected error: %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Toggle(%d) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestToggleNoOwner(t *testing.T) {
	for _, text := range []string{
		"    Assets:Cash  $1\n",
		"2024/01/05 Shop\n\n    Assets:Cash  $1\n",
		"2024/01/05 Shop\n; comment\n    Assets:Cash  $1\n",
	} {
		lines := SplitLines(text)
		edits, err := Toggle(text, len(lines)-1)
		if err != nil {
			t.Fatalf("Toggle(%q) unexpected error: %v", text, err)
		}
		if len(edits) != 0 {
			t.Errorf("Toggle(%q) = %v, want no edits", text, edits)
		}
	}
}

func TestToggleOutOfRange(t *testing.T) {
	for _, line := range []int{-1, 7, 100} {
		if _, err := Toggle(toggleLedger, line); !errors.Is(err, ErrLineOutOfRange) {
			t.Errorf("Toggle(%d) error = %v, want %v", line, err, ErrLineOutOfRange)
		}
	}
}

func TestToggleApply(t *testing.T) {
	edits, err := Toggle(toggleLedger, 3)
	if err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}
	got, err := ApplyEdits(toggleLedger, edits)
	if err != nil {
		t.Fatalf("ApplyEdits() unexpected error: %v", err)
	}
	want := `; comment
2024/01/05 Shop
    * Expenses:Food  $10.00
    Assets:Cash

2024/01/06 Other
    Expenses:Misc  1
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ApplyEdits() mismatch (-want +got):\n%s", diff)
	}

	// toggling the same posting again restores the document.
	edits, err = Toggle(got, 3)
	if err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}
	got, err = ApplyEdits(got, edits)
	if err != nil {
		t.Fatalf("ApplyEdits() unexpected error: %v", err)
	}
	if diff := cmp.Diff(toggleLedger, got); diff != "" {
		t.Errorf("second toggle mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEdits(t *testing.T) {
	text := "a\nb\nc\n"
	tests := []struct {
		name    string
		edits   []Edit
		want    string
		wantErr error
	}{
		{"none", nil, text, nil},
		{"replace", []Edit{{Range: LineRange{1, 2}, Text: "B"}}, "a\nB\nc\n", nil},
		{"unordered", []Edit{{Range: LineRange{2, 3}, Text: "C"}, {Range: LineRange{0, 1}, Text: "A"}}, "A\nb\nC\n", nil},
		{"expand", []Edit{{Range: LineRange{1, 2}, Text: "b1\nb2"}}, "a\nb1\nb2\nc\n", nil},
		{"insert", []Edit{{Range: LineRange{3, 3}, Text: "d"}}, "a\nb\nc\nd\n", nil},
		{"out of range", []Edit{{Range: LineRange{0, 1}, Text: "A"}, {Range: LineRange{2, 4}, Text: "x"}}, text, ErrLineOutOfRange},
		{"overlap", []Edit{{Range: LineRange{0, 2}, Text: "x"}, {Range: LineRange{1, 2}, Text: "y"}}, text, ErrOverlappingEdits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyEdits(text, tt.edits)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ApplyEdits() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ApplyEdits() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyEditsLineEndings(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		edits []Edit
		want  string
	}{
		{"crlf", "a\r\nb\r\nc\r\n", []Edit{{Range: LineRange{1, 2}, Text: "B1\nB2"}}, "a\r\nB1\r\nB2\r\nc\r\n"},
		{"crlf insert at end", "a\r\n", []Edit{{Range: LineRange{1, 1}, Text: "b"}}, "a\r\nb\r\n"},
		{"mixed", "a\r\nb\nc\r\n", []Edit{{Range: LineRange{1, 2}, Text: "B"}}, "a\r\nB\nc\r\n"},
		{"no final newline", "a\r\nb", []Edit{{Range: LineRange{0, 1}, Text: "A"}}, "A\r\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyEdits(tt.text, tt.edits)
			if err != nil {
				t.Fatalf("ApplyEdits() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ApplyEdits() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToggleCRLF(t *testing.T) {
	text := "; comment\r\n2024/01/05 Shop\r\n    Expenses:Food  $10.00\r\n    Assets:Cash\r\n\r\n2024/01/06 Other\r\n    Expenses:Misc  1\r\n"
	edits, err := Toggle(text, 2)
	if err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}
	got, err := ApplyEdits(text, edits)
	if err != nil {
		t.Fatalf("ApplyEdits() unexpected error: %v", err)
	}
	want := "; comment\r\n2024/01/05 Shop\r\n    * Expenses:Food  $10.00\r\n    Assets:Cash\r\n\r\n2024/01/06 Other\r\n    Expenses:Misc  1\r\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ApplyEdits() mismatch (-want +got):\n%s", diff)
	}
}
