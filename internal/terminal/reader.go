package terminal

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type lineResult struct {
	line string
	err  error
}

// LineReader reads player input line by line. A background goroutine scans
// the input so that ReadLine can return early when ctx is canceled.
type LineReader struct {
	lines <-chan lineResult
}

func NewLineReader(in io.Reader) *LineReader {
	lines := make(chan lineResult)
	go scanLines(bufio.NewReader(in), lines)
	return &LineReader{lines: lines}
}

func scanLines(reader *bufio.Reader, lines chan<- lineResult) {
	defer close(lines)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
		}
		if err != nil {
			lines <- lineResult{err: err}
			return
		}
	}
}

// ReadLine returns the next line without its line ending, or io.EOF.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}
