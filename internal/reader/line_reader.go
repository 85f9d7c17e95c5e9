package reader

import "context"

// LineResult carries one line read from a source, or the error that ended
// the stream.
type LineResult struct {
	Line string
	Err  error
}

// LineReader streams the lines of a text source in input order. The stream
// is a single forward pass and cannot be restarted.
type LineReader interface {
	ReadLines(ctx context.Context) (<-chan LineResult, error)
}
