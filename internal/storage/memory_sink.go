package storage

import (
	"context"
	"strings"
)

// MemorySink buffers lines in memory. The drift check uses it to recompute a
// conversion without touching the destination; tests use it as a cheap sink.
type MemorySink struct {
	builder strings.Builder
	lines   int
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) WriteLine(_ context.Context, line string) error {
	s.builder.WriteString(line)
	s.builder.WriteByte('\n')
	s.lines++
	return nil
}

func (s *MemorySink) Flush() error {
	return nil
}

func (s *MemorySink) Close() error {
	return nil
}

// String returns everything written so far, one terminated line per write.
func (s *MemorySink) String() string {
	return s.builder.String()
}

// Lines returns the number of lines written.
func (s *MemorySink) Lines() int {
	return s.lines
}
