package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/ledgerfmt"
	"github.com/google/subcommands"
)

type serveCmd struct {
	ttl time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serves formatting requests on stdin for editors" }
func (*serveCmd) Usage() string {
	return `lfmt serve [-ttl <duration>]

  Reads JSON requests from stdin, one per line, and writes one JSON response
  per line to stdout. Formatting results are memoized by content.

  Requests:
    {"id": 1, "method": "format", "text": "...", "sort": true, "column": 62}
    {"id": 2, "method": "toggle", "text": "...", "line": 3}
    {"id": 3, "method": "invalidate", "text": "..."}
    {"id": 4, "method": "flush"}

  Responses carry the request id and either "text" and "changed" (format),
  "edits" (toggle, 0-based line ranges) or "error".

`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.ttl, "ttl", 10*time.Minute, "Expiration of memoized results, 0 to keep them forever")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := &server{cache: ledgerfmt.NewCache(c.ttl), defaults: options()}
	if err := s.serve(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type request struct {
	ID     int    `json:"id"`
	Method string `json:"method"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Sort   *bool  `json:"sort,omitempty"`
	Column int    `json:"column,omitempty"`
}

type response struct {
	ID      int              `json:"id"`
	Text    *string          `json:"text,omitempty"`
	Changed bool             `json:"changed,omitempty"`
	Edits   []ledgerfmt.Edit `json:"edits,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// maxRequestSize bounds a single request line.
const maxRequestSize = 64 << 20

type server struct {
	cache    *ledgerfmt.Cache
	defaults ledgerfmt.Options
}

// serve answers the requests read from r until r is exhausted or ctx is done.
func (s *server) serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req request
		var resp response
		if err := json.Unmarshal(line, &req); err != nil {
			resp.Error = fmt.Sprintf("invalid request: %v", err)
		} else {
			resp = s.handle(req)
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("could not write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read requests: %w", err)
	}
	return nil
}

func (s *server) handle(req request) response {
	resp := response{ID: req.ID}
	logger.Debug("request", "id", req.ID, "method", req.Method)

	switch req.Method {
	case "format":
		opts := s.defaults
		if req.Sort != nil {
			opts.Sort = *req.Sort
		}
		if req.Column > 0 {
			opts.Column = req.Column
		}
		out, changed, err := s.cache.Format(req.Text, opts)
		if err != nil {
			resp.Error = err.Error()
			return resp
		}
		resp.Text, resp.Changed = &out, changed
	case "toggle":
		edits, err := ledgerfmt.Toggle(req.Text, req.Line)
		if err != nil {
			resp.Error = err.Error()
			return resp
		}
		resp.Edits = edits
		// the editor replaces req.Text with the edited text.
		s.cache.Invalidate(req.Text)
	case "invalidate":
		s.cache.Invalidate(req.Text)
	case "flush":
		s.cache.Flush()
	default:
		resp.Error = fmt.Sprintf("unknown method %q", req.Method)
	}
	return resp
}
