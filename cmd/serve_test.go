package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ledgerfmt"
)

// serveLines sends requests to a new server and returns the decoded responses.
func serveLines(t *testing.T, s *server, requests ...any) []any {
	t.Helper()
	var in bytes.Buffer
	for _, r := range requests {
		if line, ok := r.(string); ok {
			in.WriteString(line + "\n")
			continue
		}
		if err := json.NewEncoder(&in).Encode(r); err != nil {
			t.Fatalf("Failed to encode request: %v", err)
		}
	}

	var out bytes.Buffer
	if err := s.serve(context.Background(), &in, &out); err != nil {
		t.Fatalf("serve() unexpected error: %v", err)
	}

	var responses []any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var v any
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			t.Fatalf("invalid response %q: %v", line, err)
		}
		responses = append(responses, v)
	}
	if len(responses) != len(requests) {
		t.Fatalf("got %d responses for %d requests", len(responses), len(requests))
	}
	return responses
}

// get returns the value at path in v.
func get(t *testing.T, v any, path string) any {
	t.Helper()
	got, err := jsonpath.Get(path, v)
	if err != nil {
		t.Fatalf("jsonpath %q: %v", path, err)
	}
	return got
}

func TestServe(t *testing.T) {
	const text = "2024/01/05 Shop\n    * A  $1.00\n    * B\n"
	s := &server{cache: ledgerfmt.NewCache(0), defaults: ledgerfmt.Options{Column: 10}}

	responses := serveLines(t, s,
		request{ID: 1, Method: "format", Text: text},
		request{ID: 2, Method: "toggle", Text: "2024/01/05 * Shop\n A  $1.00\n B\n", Line: 2},
		request{ID: 3, Method: "toggle", Text: text, Line: 10},
		request{ID: 4, Method: "rename"},
		"{",
	)

	format := responses[0]
	if got := get(t, format, "$.id"); got != 1.0 {
		t.Errorf("$.id = %v, want 1", got)
	}
	if got, want := get(t, format, "$.text"), "2024/01/05 * Shop\n A      $1.00\n B\n"; got != want {
		t.Errorf("$.text = %q, want %q", got, want)
	}
	if got := get(t, format, "$.changed"); got != true {
		t.Errorf("$.changed = %v, want true", got)
	}

	toggle := responses[1]
	if got := get(t, toggle, "$.edits[0].range.start"); got != 0.0 {
		t.Errorf("$.edits[0].range.start = %v, want 0", got)
	}
	if got, want := get(t, toggle, "$.edits[0].text"), "2024/01/05 Shop"; got != want {
		t.Errorf("$.edits[0].text = %q, want %q", got, want)
	}
	if got, want := get(t, toggle, "$.edits[1].text"), " * A  $1.00"; got != want {
		t.Errorf("$.edits[1].text = %q, want %q", got, want)
	}

	for i, want := range []string{"line out of range", "unknown method", "invalid request"} {
		got, _ := get(t, responses[2+i], "$.error").(string)
		if !strings.Contains(got, want) {
			t.Errorf("response %d error = %q, want it to contain %q", 2+i, got, want)
		}
	}
}

func TestServeCache(t *testing.T) {
	const text = "2024/01/05 Shop\n    A  $1.00\n"
	s := &server{cache: ledgerfmt.NewCache(0)}

	serveLines(t, s,
		request{ID: 1, Method: "format", Text: text},
		request{ID: 2, Method: "format", Text: text},
	)
	if got := s.cache.Len(); got != 1 {
		t.Errorf("cache Len() = %d, want 1", got)
	}

	sorted := true
	serveLines(t, s, request{ID: 3, Method: "format", Text: text, Sort: &sorted})
	if got := s.cache.Len(); got != 2 {
		t.Errorf("cache Len() = %d, want 2", got)
	}

	serveLines(t, s, request{ID: 4, Method: "invalidate", Text: text})
	if got := s.cache.Len(); got != 0 {
		t.Errorf("cache Len() after invalidate = %d, want 0", got)
	}

	serveLines(t, s, request{ID: 5, Method: "format", Text: text}, request{ID: 6, Method: "flush"})
	if got := s.cache.Len(); got != 0 {
		t.Errorf("cache Len() after flush = %d, want 0", got)
	}
}
