package storage

import (
	"context"
	"fmt"
)

// Sink receives transformed lines in order. Flush must succeed before the
// sink's output counts as complete; Close releases the backing storage on
// every exit path, success or failure.
type Sink interface {
	WriteLine(ctx context.Context, line string) error
	Flush() error
	Close() error
}

type Type string

const (
	File  Type = "file"
	InMem Type = "in_mem"
)

type SinkError string

const (
	ErrUnsupportedSink SinkError = "unsupported sink type: %s"
)

func (e SinkError) Error() string {
	return string(e)
}

// NewSink creates a sink of the given type. The path is ignored for the
// in-memory type.
func NewSink(t Type, path string) (Sink, error) {
	switch t {
	case File:
		return NewFileSink(path)
	case InMem:
		return NewMemorySink(), nil
	default:
		return nil, fmt.Errorf(string(ErrUnsupportedSink), t)
	}
}
