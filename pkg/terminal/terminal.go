package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Reader yields one line of user input per Listen call. Scanning runs on its
// own goroutine because bufio.Scanner cannot abandon a blocked read; Listen
// selects between the next line and context cancellation.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer

	once  sync.Once
	lines chan scanResult
}

type scanResult struct {
	text string
	err  error
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan scanResult),
	}
}

func (r *Reader) Listen(ctx context.Context) (string, error) {
	r.once.Do(func() { go r.scan() })

	fmt.Fprint(r.out, "> ")
	select {
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (r *Reader) scan() {
	defer close(r.lines)
	for r.scanner.Scan() {
		r.lines <- scanResult{text: strings.TrimSpace(r.scanner.Text())}
	}
	if err := r.scanner.Err(); err != nil {
		r.lines <- scanResult{err: fmt.Errorf("reading input: %w", err)}
	}
}
