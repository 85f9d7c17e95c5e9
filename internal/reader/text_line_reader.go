package reader

import (
	"bufio"
	"context"
	"io"
)

// maxLineBytes bounds a single line; prose sources stay far below this.
const maxLineBytes = 1024 * 1024

// TextLineReader reads a line-oriented text source sequentially.
type TextLineReader struct {
	reader io.Reader
}

func NewTextLineReader(r io.Reader) *TextLineReader {
	return &TextLineReader{
		reader: r,
	}
}

// ReadLines scans the source line by line. The channel closes after the last
// line; a scan failure is delivered as the final result before closing.
func (tr *TextLineReader) ReadLines(ctx context.Context) (<-chan LineResult, error) {
	scanner := bufio.NewScanner(tr.reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	results := make(chan LineResult)
	go func() {
		defer close(results)

		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case results <- LineResult{Line: scanner.Text()}:
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case <-ctx.Done():
			case results <- LineResult{Err: err}:
			}
		}
	}()

	return results, nil
}
